package enrichment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/finpulse/internal/domain/models"
)

func TestSparkline(t *testing.T) {
	long := make([]float64, 168)
	for i := range long {
		long[i] = float64(i)
	}

	assert.Equal(t, []float64{158, 159, 160, 161, 162, 163, 164, 165, 166, 167}, Sparkline(long))
	assert.Equal(t, []float64{1, 2}, Sparkline([]float64{1, 2}))
	assert.Equal(t, PlaceholderSparkline(), Sparkline(nil))
	assert.Equal(t, PlaceholderSparkline(), Sparkline([]float64{5}))
	assert.Equal(t, PlaceholderSparkline(), Sparkline([]float64{math.NaN(), 3}))
}

func TestPlaceholderSparkline_IsAscendingAndIndependent(t *testing.T) {
	a := PlaceholderSparkline()
	assert.GreaterOrEqual(t, len(a), 2)
	for i := 1; i < len(a); i++ {
		assert.Greater(t, a[i], a[i-1])
	}
	a[0] = -1
	assert.Equal(t, 100.0, PlaceholderSparkline()[0])
}

func TestCandleSparkline(t *testing.T) {
	ok := &models.RawCandleSeries{Status: models.CandleStatusOK, Close: []float64{10, 11, 12}}
	noData := &models.RawCandleSeries{Status: models.CandleStatusNoData}
	short := &models.RawCandleSeries{Status: models.CandleStatusOK, Close: []float64{10}}

	assert.Equal(t, []float64{10, 11, 12}, CandleSparkline(ok))
	assert.Equal(t, PlaceholderSparkline(), CandleSparkline(noData))
	assert.Equal(t, PlaceholderSparkline(), CandleSparkline(short))
	assert.Equal(t, PlaceholderSparkline(), CandleSparkline(nil))
}
