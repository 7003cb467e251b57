// Package universe holds the immutable lookup tables the feed is built from:
// tracked equity symbols, display names, popular symbols, crypto tickers and
// category keyword rules.
package universe

import (
	"strings"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// TrackedSymbol is an equity ticker with its display name.
type TrackedSymbol struct {
	Symbol string
	Name   string
}

// CategoryRule maps any of its keywords to a category. Keywords are lower-case.
type CategoryRule struct {
	Category models.Category
	Keywords []string
}

// Registry is read-only after construction and safe to share across requests.
type Registry struct {
	symbols         []TrackedSymbol
	names           map[string]string
	popular         []string
	crypto          map[string]struct{}
	rules           []CategoryRule
	defaultCategory models.Category
}

// Config describes the tables a Registry is built from.
type Config struct {
	Symbols         []TrackedSymbol
	Popular         []string
	CryptoSymbols   []string
	Rules           []CategoryRule
	DefaultCategory models.Category
}

// New builds a Registry from cfg. Inputs are copied; symbols are upper-cased
// and keywords lower-cased.
func New(cfg Config) *Registry {
	r := &Registry{
		symbols:         make([]TrackedSymbol, 0, len(cfg.Symbols)),
		names:           make(map[string]string, len(cfg.Symbols)),
		crypto:          make(map[string]struct{}, len(cfg.CryptoSymbols)),
		defaultCategory: cfg.DefaultCategory,
	}
	if r.defaultCategory == "" {
		r.defaultCategory = models.CategoryTechnology
	}

	for _, s := range cfg.Symbols {
		sym := strings.ToUpper(strings.TrimSpace(s.Symbol))
		if sym == "" {
			continue
		}
		if _, dup := r.names[sym]; dup {
			continue
		}
		r.symbols = append(r.symbols, TrackedSymbol{Symbol: sym, Name: s.Name})
		r.names[sym] = s.Name
	}
	for _, p := range cfg.Popular {
		r.popular = append(r.popular, strings.ToUpper(strings.TrimSpace(p)))
	}
	for _, c := range cfg.CryptoSymbols {
		r.crypto[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	for _, rule := range cfg.Rules {
		kw := make([]string, 0, len(rule.Keywords))
		for _, k := range rule.Keywords {
			kw = append(kw, strings.ToLower(k))
		}
		r.rules = append(r.rules, CategoryRule{Category: rule.Category, Keywords: kw})
	}

	return r
}

// Default returns the registry used in production.
func Default() *Registry {
	return New(Config{
		Symbols: []TrackedSymbol{
			{"AAPL", "Apple Inc."},
			{"TSLA", "Tesla Inc."},
			{"NVDA", "NVIDIA Corp."},
			{"MSFT", "Microsoft"},
			{"META", "Meta Platforms"},
			{"GOOGL", "Alphabet"},
			{"AMZN", "Amazon"},
			{"JPM", "JPMorgan Chase"},
			{"GS", "Goldman Sachs"},
			{"XOM", "Exxon Mobil"},
			{"PLTR", "Palantir"},
			{"AMD", "AMD"},
			{"INTC", "Intel"},
			{"NFLX", "Netflix"},
			{"DIS", "Disney"},
		},
		Popular:       []string{"AAPL", "TSLA", "NVDA", "MSFT", "META", "GOOGL", "AMZN"},
		CryptoSymbols: []string{"BTC", "ETH", "SOL", "BNB", "XRP"},
		// order matters: first matching rule wins
		Rules: []CategoryRule{
			{Category: models.CategoryHealthcare, Keywords: []string{"health", "pharma", "biotech"}},
			{Category: models.CategoryEnergy, Keywords: []string{"oil", "energy", "xom"}},
			{Category: models.CategoryFinance, Keywords: []string{"bank", "financ", "jpm"}},
		},
		DefaultCategory: models.CategoryTechnology,
	})
}

// Symbols returns the tracked universe in registration order.
func (r *Registry) Symbols() []TrackedSymbol {
	out := make([]TrackedSymbol, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Len is the size of the tracked universe.
func (r *Registry) Len() int { return len(r.symbols) }

// At returns the i-th tracked symbol, wrapping around the universe.
func (r *Registry) At(i int) TrackedSymbol {
	if len(r.symbols) == 0 {
		return TrackedSymbol{}
	}
	i %= len(r.symbols)
	if i < 0 {
		i += len(r.symbols)
	}
	return r.symbols[i]
}

// IsTracked reports whether symbol belongs to the tracked universe.
func (r *Registry) IsTracked(symbol string) bool {
	_, ok := r.names[strings.ToUpper(symbol)]
	return ok
}

// Name returns the display name of symbol, or the symbol itself when unknown.
func (r *Registry) Name(symbol string) string {
	if n, ok := r.names[strings.ToUpper(symbol)]; ok {
		return n
	}
	return symbol
}

// Popular returns the padding list used when news mentions too few symbols.
func (r *Registry) Popular() []string {
	out := make([]string, len(r.popular))
	copy(out, r.popular)
	return out
}

// IsCrypto reports whether symbol is a known crypto ticker.
func (r *Registry) IsCrypto(symbol string) bool {
	_, ok := r.crypto[strings.ToUpper(symbol)]
	return ok
}

// CategoryRules returns the ordered keyword rules.
func (r *Registry) CategoryRules() []CategoryRule {
	return r.rules
}

// DefaultCategory is used when no rule matches.
func (r *Registry) DefaultCategory() models.Category {
	return r.defaultCategory
}

// TrackedRelated splits a comma-delimited related-symbols string and keeps,
// in order, the symbols that belong to the tracked universe.
func (r *Registry) TrackedRelated(related string) []string {
	if related == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(related, ",") {
		sym := strings.ToUpper(strings.TrimSpace(part))
		if r.IsTracked(sym) {
			out = append(out, sym)
		}
	}
	return out
}

// PrimarySymbol picks the symbol a news article is attributed to: the first
// tracked related symbol, else the universe entry at idx (modulo its size).
func (r *Registry) PrimarySymbol(related string, idx int) string {
	if rel := r.TrackedRelated(related); len(rel) > 0 {
		return rel[0]
	}
	return r.At(idx).Symbol
}
