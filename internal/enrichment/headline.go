package enrichment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	upHeadlines = []string{
		"%s surges %s%% as crypto market gains momentum",
		"%s breaks resistance level with %s%% gain in 24 hours",
		"Institutional interest drives %s up %s%% today",
	}
	downHeadlines = []string{
		"%s drops %s%% amid market uncertainty",
		"%s faces selling pressure, down %s%% in 24 hours",
		"%s declines %s%% as bears take control",
	}
)

// CryptoHeadline builds a placeholder headline for an asset that has no real
// news. The template is picked by idx modulo the template set for the
// direction of percentChange, and the absolute change is shown with two decimals.
func CryptoHeadline(name string, percentChange float64, idx int) string {
	templates := upHeadlines
	if percentChange < 0 {
		templates = downHeadlines
	}
	if idx < 0 {
		idx = -idx
	}
	abs := strconv.FormatFloat(math.Abs(percentChange), 'f', 2, 64)
	return fmt.Sprintf(templates[idx%len(templates)], name, abs)
}

// CryptoSummary describes an asset's rank, price and 24h change.
func CryptoSummary(name string, rank int, price, percentChange float64) string {
	sign := ""
	if percentChange >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s is currently ranked #%d by market cap, trading at $%s with a %s%.2f%% change in the last 24 hours.",
		name, rank, formatUSD(price), sign, percentChange)
}

// formatUSD renders price with English thousands separators and two decimals.
// Sub-dollar assets keep up to six significant decimals.
func formatUSD(price float64) string {
	p := message.NewPrinter(language.English)
	if math.Abs(price) >= 1 {
		return p.Sprintf("%.2f", price)
	}
	s := p.Sprintf("%.6f", price)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
