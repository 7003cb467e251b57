package enrichment

import (
	"math"

	"github.com/guttosm/finpulse/internal/domain/models"
)

const (
	// sentimentMargin is how far one side must lead to leave neutral.
	sentimentMargin   = 0.1
	maxFallbackScore  = 0.95
	baseFallbackScore = 0.5

	// EquityChangeScale and CryptoChangeScale divide |percent change| when
	// deriving a fallback score; crypto moves more, so it scales slower.
	EquityChangeScale = 10.0
	CryptoChangeScale = 20.0
)

// ResolveSentiment classifies a news item. A sentiment payload with coverage
// wins; otherwise the sign of percentChange decides.
func ResolveSentiment(s *models.RawSentiment, percentChange float64) (models.Sentiment, float64) {
	if s != nil && s.Valid() {
		return PayloadSentiment(s.Sentiment.BullishPercent, s.Sentiment.BearishPercent)
	}
	return PriceChangeSentiment(percentChange, EquityChangeScale)
}

// PayloadSentiment is bullish when bullish leads bearish by more than the
// margin, bearish in the reverse case, else neutral. The score is the larger
// of the two percentages, clamped to [0,1].
func PayloadSentiment(bullish, bearish float64) (models.Sentiment, float64) {
	score := clamp01(math.Max(bullish, bearish))
	switch {
	case bullish > bearish+sentimentMargin:
		return models.SentimentBullish, score
	case bearish > bullish+sentimentMargin:
		return models.SentimentBearish, score
	default:
		return models.SentimentNeutral, score
	}
}

// PriceChangeSentiment derives sentiment from a percent change alone:
// non-negative is bullish, negative bearish. The score is
// min(0.95, 0.5 + |change|/scale), non-decreasing in |change|.
func PriceChangeSentiment(percentChange, scale float64) (models.Sentiment, float64) {
	if math.IsNaN(percentChange) {
		percentChange = 0
	}
	if scale <= 0 {
		scale = EquityChangeScale
	}
	sentiment := models.SentimentBullish
	if percentChange < 0 {
		sentiment = models.SentimentBearish
	}
	score := math.Min(maxFallbackScore, baseFallbackScore+math.Abs(percentChange)/scale)
	return sentiment, score
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
