// Package service assembles the news feed: it queries the providers,
// normalizes their payloads and walks the fallback ladder so that callers
// always receive a complete response.
package service

import (
	"context"
	"math/rand/v2"
	"runtime/debug"
	"strings"
	"time"

	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/fixtures"
	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/metrics"
	"github.com/guttosm/finpulse/internal/universe"
)

// Tier names used in logs and metrics.
const (
	tierCrypto = "crypto"
	tierEquity = "equity"
	tierSymbol = "symbol"
)

// Tier results.
const (
	resultLive        = "live"
	resultFixture     = "fixture"
	resultUnavailable = "unavailable"
	resultSkipped     = "skipped"
)

// symbolFallbackItems is how many feed items the per-symbol view shows when
// none of them mention the symbol.
const symbolFallbackItems = 6

// EquityProvider is the credentialed equity data source.
type EquityProvider interface {
	Configured() bool
	MarketNews(ctx context.Context, category string) ([]models.RawNewsArticle, error)
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]models.RawNewsArticle, error)
	Quote(ctx context.Context, symbol string) (*models.RawQuote, error)
	NewsSentiment(ctx context.Context, symbol string) (*models.RawSentiment, error)
	Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (*models.RawCandleSeries, error)
}

// CryptoProvider is the public crypto pricing source.
type CryptoProvider interface {
	Markets(ctx context.Context, perPage int, sparkline bool) ([]models.RawCoin, error)
}

// FeedService builds feed responses. Neither method fails: any error is
// absorbed by the fallback ladder.
type FeedService interface {
	GetFeed(ctx context.Context) dto.FeedResponse
	GetSymbolFeed(ctx context.Context, symbol string) dto.FeedResponse
}

// Options shapes the feed. Now and Shuffle default to the wall clock and
// math/rand/v2 when nil.
type Options struct {
	MaxTickers       int
	MaxCryptoTickers int
	NewsLimit        int
	CryptoNewsLimit  int
	MaxSymbols       int
	MinSymbols       int
	EnrichSentiment  bool
	EnrichCandles    bool
	CandleResolution string

	Now     func() time.Time
	Shuffle func(n int, swap func(i, j int))
}

type feedService struct {
	equity   EquityProvider
	crypto   CryptoProvider
	registry *universe.Registry
	fixtures *fixtures.Dataset
	opts     Options
}

// NewFeedService wires the orchestrator. equity and crypto may be nil, in
// which case the corresponding tier is skipped.
func NewFeedService(equity EquityProvider, crypto CryptoProvider, registry *universe.Registry, data *fixtures.Dataset, opts Options) FeedService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Shuffle == nil {
		opts.Shuffle = rand.Shuffle
	}
	if registry == nil {
		registry = universe.Default()
	}
	if data == nil {
		data = fixtures.Default()
	}
	return &feedService{
		equity:   equity,
		crypto:   crypto,
		registry: registry,
		fixtures: data,
		opts:     opts,
	}
}

// tierResult is what one tier contributes to the merged response.
type tierResult struct {
	news    []models.NewsItem
	tickers []models.TickerItem
	live    bool
}

// GetFeed runs the crypto and equity tiers concurrently and merges them.
// isLive is true iff at least one attempted tier returned provider data.
func (s *feedService) GetFeed(ctx context.Context) (resp dto.FeedResponse) {
	defer s.recoverToMock(ctx, &resp)

	var crypto, equity tierResult
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx).Error().Interface("panic", r).Str("tier", tierCrypto).Msg("crypto tier panicked")
				crypto = tierResult{}
			}
		}()
		crypto = s.cryptoTier(ctx)
	}()
	equity = s.equityTier(ctx)
	<-done

	resp = s.merge(crypto, equity)
	metrics.ObserveFeed(resp.IsLive)
	return resp
}

func (s *feedService) merge(crypto, equity tierResult) dto.FeedResponse {
	news := make([]models.NewsItem, 0, len(crypto.news)+len(equity.news))
	news = append(news, crypto.news...)
	news = append(news, equity.news...)
	s.opts.Shuffle(len(news), func(i, j int) { news[i], news[j] = news[j], news[i] })
	if len(news) == 0 {
		news = s.fixtures.AllNews()
	}

	tickers := make([]models.TickerItem, 0, len(crypto.tickers)+len(equity.tickers))
	tickers = append(tickers, crypto.tickers...)
	tickers = append(tickers, equity.tickers...)
	if len(tickers) == 0 {
		tickers = s.fixtures.AllTickers()
	}
	if s.opts.MaxTickers > 0 && len(tickers) > s.opts.MaxTickers {
		tickers = tickers[:s.opts.MaxTickers]
	}

	return dto.NewFeedResponse(news, tickers, crypto.live || equity.live, s.opts.Now())
}

// recoverToMock replaces *resp with the full fixture response when the
// pipeline panics.
func (s *feedService) recoverToMock(ctx context.Context, resp *dto.FeedResponse) {
	r := recover()
	if r == nil {
		return
	}
	logger.FromContext(ctx).Error().
		Interface("panic", r).
		Bytes("stack", debug.Stack()).
		Msg("feed assembly panicked, serving fixtures")
	*resp = s.mockResponse()
	metrics.ObserveFeed(false)
}

func (s *feedService) mockResponse() dto.FeedResponse {
	return dto.NewFeedResponse(s.fixtures.AllNews(), s.fixtures.AllTickers(), false, s.opts.Now())
}

// GetSymbolFeed returns news about one symbol. Company news is used when the
// equity provider is configured and the symbol is tracked; otherwise the main
// feed is filtered by ticker, falling back to its first few items.
func (s *feedService) GetSymbolFeed(ctx context.Context, symbol string) (resp dto.FeedResponse) {
	defer s.recoverToMock(ctx, &resp)

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if r, ok := s.companyTier(ctx, symbol); ok {
		return dto.NewFeedResponse(r.news, r.tickers, true, s.opts.Now())
	}

	feed := s.GetFeed(ctx)
	var news []models.NewsItem
	for _, n := range feed.News {
		if strings.EqualFold(n.Ticker, symbol) {
			news = append(news, n)
		}
	}
	if len(news) == 0 {
		news = feed.News[:min(symbolFallbackItems, len(feed.News))]
	}
	var tickers []models.TickerItem
	for _, t := range feed.Tickers {
		if strings.EqualFold(t.Symbol, symbol) {
			tickers = append(tickers, t)
		}
	}
	return dto.NewFeedResponse(news, tickers, feed.IsLive, s.opts.Now())
}
