package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/enrichment"
	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/metrics"
)

const (
	cryptoSource  = "CoinGecko"
	coinURLPrefix = "https://www.coingecko.com/en/coins/"
	// synthetic crypto items are spaced this many minutes apart
	cryptoMinuteStep = 5
)

// cryptoTier fetches the top coins once and derives both the crypto ticker
// slice and the synthetic crypto headlines from it. Any failure yields an
// empty, non-live result.
func (s *feedService) cryptoTier(ctx context.Context) tierResult {
	log := logger.FromContext(ctx)
	perPage := max(s.opts.MaxCryptoTickers, s.opts.CryptoNewsLimit)
	if s.crypto == nil || perPage <= 0 {
		metrics.ObserveTier(tierCrypto, resultSkipped)
		return tierResult{}
	}

	coins, err := s.crypto.Markets(ctx, perPage, true)
	if err != nil {
		log.Warn().Err(err).Str("tier", tierCrypto).Msg("crypto provider unavailable")
		metrics.ObserveTier(tierCrypto, resultUnavailable)
		return tierResult{}
	}
	if len(coins) == 0 {
		log.Warn().Str("tier", tierCrypto).Msg("crypto provider returned no coins")
		metrics.ObserveTier(tierCrypto, resultUnavailable)
		return tierResult{}
	}

	out := tierResult{live: true}
	for _, coin := range coins[:min(len(coins), s.opts.MaxCryptoTickers)] {
		out.tickers = append(out.tickers, models.TickerItem{
			Symbol:        strings.ToUpper(coin.Symbol),
			Name:          coin.Name,
			Price:         max(coin.CurrentPrice, 0),
			Change:        coin.PriceChange24h,
			ChangePercent: coin.PriceChangePercentage24h,
		})
	}
	for idx, coin := range coins[:min(len(coins), s.opts.CryptoNewsLimit)] {
		out.news = append(out.news, cryptoNewsItem(coin, idx))
	}

	metrics.ObserveTier(tierCrypto, resultLive)
	log.Debug().Int("coins", len(coins)).Str("tier", tierCrypto).Msg("crypto tier live")
	return out
}

// cryptoNewsItem synthesizes a headline-style item from one coin's 24h move.
func cryptoNewsItem(coin models.RawCoin, idx int) models.NewsItem {
	pct := coin.PriceChangePercentage24h
	sentiment, score := enrichment.PriceChangeSentiment(pct, enrichment.CryptoChangeScale)
	return models.NewsItem{
		ID:             fmt.Sprintf("crypto-%s-%d", coin.ID, idx),
		Ticker:         strings.ToUpper(coin.Symbol),
		CompanyName:    coin.Name,
		Title:          enrichment.CryptoHeadline(coin.Name, pct, idx),
		Summary:        enrichment.CryptoSummary(coin.Name, coin.MarketCapRank, coin.CurrentPrice, pct),
		Source:         cryptoSource,
		Time:           fmt.Sprintf("%d min ago", (idx+1)*cryptoMinuteStep),
		URL:            coinURLPrefix + coin.ID,
		Sentiment:      sentiment,
		SentimentScore: score,
		PriceChange:    pct,
		CurrentPrice:   coin.CurrentPrice,
		SparklineData:  enrichment.Sparkline(coin.SparklinePrices()),
		Category:       models.CategoryTechnology,
		Provenance:     models.ProvenanceSynthetic,
	}
}
