package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/provider"
)

var errBoom = errors.New("boom")

type fakeEquity struct {
	configured  bool
	news        []models.RawNewsArticle
	newsErr     error
	companyNews []models.RawNewsArticle
	companyErr  error
	quotes      map[string]*models.RawQuote
	sentiments  map[string]*models.RawSentiment
	candles     map[string]*models.RawCandleSeries
	panicOnNews bool

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeEquity) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeEquity) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeEquity) Configured() bool { return f.configured }

func (f *fakeEquity) MarketNews(_ context.Context, _ string) ([]models.RawNewsArticle, error) {
	f.record("news")
	if f.panicOnNews {
		panic("unexpected payload")
	}
	if !f.configured {
		return nil, provider.ErrNotConfigured
	}
	return f.news, f.newsErr
}

func (f *fakeEquity) CompanyNews(_ context.Context, _ string, _, _ time.Time) ([]models.RawNewsArticle, error) {
	f.record("company")
	return f.companyNews, f.companyErr
}

func (f *fakeEquity) Quote(_ context.Context, symbol string) (*models.RawQuote, error) {
	f.record("quote")
	if q, ok := f.quotes[symbol]; ok {
		return q, nil
	}
	return nil, provider.ErrUnavailable
}

func (f *fakeEquity) NewsSentiment(_ context.Context, symbol string) (*models.RawSentiment, error) {
	f.record("sentiment")
	if s, ok := f.sentiments[symbol]; ok {
		return s, nil
	}
	return nil, provider.ErrUnavailable
}

func (f *fakeEquity) Candles(_ context.Context, symbol, _ string, _, _ time.Time) (*models.RawCandleSeries, error) {
	f.record("candles")
	if c, ok := f.candles[symbol]; ok {
		return c, nil
	}
	return nil, provider.ErrUnavailable
}

type fakeCrypto struct {
	coins []models.RawCoin
	err   error
}

func (f *fakeCrypto) Markets(_ context.Context, perPage int, _ bool) ([]models.RawCoin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.coins[:min(perPage, len(f.coins))], nil
}

var fixedNow = time.Date(2025, 9, 18, 14, 0, 0, 0, time.UTC)

func testOptions(seed uint64) Options {
	r := rand.New(rand.NewPCG(seed, seed))
	return Options{
		MaxTickers:       40,
		MaxCryptoTickers: 30,
		NewsLimit:        10,
		CryptoNewsLimit:  10,
		MaxSymbols:       8,
		MinSymbols:       3,
		EnrichSentiment:  true,
		EnrichCandles:    true,
		CandleResolution: "60",
		Now:              func() time.Time { return fixedNow },
		Shuffle:          r.Shuffle,
	}
}

func quote(price, pct float64) *models.RawQuote {
	return &models.RawQuote{Current: price, Change: price * pct / 100, PercentChange: pct}
}

func threeCoins() []models.RawCoin {
	return []models.RawCoin{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 67000, PriceChange24h: 1200, PriceChangePercentage24h: 1.8, MarketCapRank: 1},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3400, PriceChange24h: -40, PriceChangePercentage24h: -1.2, MarketCapRank: 2},
		{ID: "solana", Symbol: "sol", Name: "Solana", CurrentPrice: 150, PriceChange24h: 7, PriceChangePercentage24h: 4.9, MarketCapRank: 5},
	}
}
