package enrichment

import (
	"math"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// SparklinePoints is how many trailing points a sparkline keeps.
const SparklinePoints = 10

// placeholderSparkline stands in for missing price history. It is a fixed
// marker, not an estimate.
var placeholderSparkline = []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109}

// PlaceholderSparkline returns a fresh copy of the placeholder series.
func PlaceholderSparkline() []float64 {
	out := make([]float64, len(placeholderSparkline))
	copy(out, placeholderSparkline)
	return out
}

// Sparkline keeps the last SparklinePoints finite values of series, falling
// back to the placeholder when fewer than two remain.
func Sparkline(series []float64) []float64 {
	if len(series) > SparklinePoints {
		series = series[len(series)-SparklinePoints:]
	}
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	if len(out) < 2 {
		return PlaceholderSparkline()
	}
	return out
}

// CandleSparkline turns a candle series into a sparkline of closes. Missing,
// no_data or too-short series yield the placeholder.
func CandleSparkline(c *models.RawCandleSeries) []float64 {
	if c == nil || c.Status != models.CandleStatusOK {
		return PlaceholderSparkline()
	}
	return Sparkline(c.Close)
}
