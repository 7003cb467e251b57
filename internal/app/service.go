package app

import (
	"github.com/guttosm/finpulse/config"
	"github.com/guttosm/finpulse/internal/cache"
	"github.com/guttosm/finpulse/internal/fixtures"
	"github.com/guttosm/finpulse/internal/provider/coingecko"
	"github.com/guttosm/finpulse/internal/provider/finnhub"
	"github.com/guttosm/finpulse/internal/service"
	"github.com/guttosm/finpulse/internal/universe"
)

// BuildFeedService wires both provider clients, the symbol registry and the
// fixture dataset into a FeedService. Both clients share c for response caching.
//
// A missing FINNHUB_API_KEY is not an error: the equity client then reports
// itself unconfigured and the feed serves equity fixtures.
func BuildFeedService(cfg config.Config, c cache.Cache) service.FeedService {
	equity := finnhub.New(finnhub.Options{
		APIKey:   cfg.Finnhub.APIKey,
		BaseURL:  cfg.Finnhub.BaseURL,
		Timeout:  cfg.Provider.Timeout,
		Cache:    c,
		CacheTTL: cfg.Cache.TTL,
	})
	crypto := coingecko.New(coingecko.Options{
		APIKey:   cfg.CoinGecko.APIKey,
		BaseURL:  cfg.CoinGecko.BaseURL,
		Timeout:  cfg.Provider.Timeout,
		Cache:    c,
		CacheTTL: cfg.Cache.TTL,
	})

	return service.NewFeedService(equity, crypto, universe.Default(), fixtures.Default(), feedOptions(cfg.Feed))
}

func feedOptions(f config.FeedConfig) service.Options {
	return service.Options{
		MaxTickers:       f.MaxTickers,
		MaxCryptoTickers: f.MaxCryptoTickers,
		NewsLimit:        f.NewsLimit,
		CryptoNewsLimit:  f.CryptoNewsLimit,
		MaxSymbols:       f.MaxSymbols,
		MinSymbols:       f.MinSymbols,
		EnrichSentiment:  f.EnrichSentiment,
		EnrichCandles:    f.EnrichCandles,
		CandleResolution: f.CandleResolution,
	}
}
