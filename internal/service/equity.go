package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/enrichment"
	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/metrics"
	"github.com/guttosm/finpulse/internal/provider"
)

const (
	marketNewsCategory = "general"
	// both company news and candles look back one week
	lookback = 7 * 24 * time.Hour
)

// symbolData is everything fetched for one symbol. Nil fields mean the
// corresponding call failed or was disabled.
type symbolData struct {
	quote     *models.RawQuote
	sentiment *models.RawSentiment
	candles   *models.RawCandleSeries
}

// equityTier serves live equity news and quotes when the provider is
// configured and the market news call succeeds, and the equity fixtures
// otherwise.
func (s *feedService) equityTier(ctx context.Context) tierResult {
	log := logger.FromContext(ctx)
	if s.equity == nil || !s.equity.Configured() {
		log.Info().Str("tier", tierEquity).Msg("equity provider not configured, serving fixtures")
		metrics.ObserveTier(tierEquity, resultFixture)
		return s.equityFixtures()
	}

	articles, err := s.equity.MarketNews(ctx, marketNewsCategory)
	if err != nil {
		log.Warn().Err(err).Str("tier", tierEquity).Msg("market news unavailable, serving fixtures")
		metrics.ObserveTier(tierEquity, resultFixture)
		return s.equityFixtures()
	}
	articles = uniqueArticles(articles)
	articles = articles[:min(len(articles), s.opts.NewsLimit)]

	symbols := s.candidateSymbols(articles)
	data := s.fetchSymbols(ctx, symbols)

	out := tierResult{live: true}
	for _, sym := range symbols {
		d := data[sym]
		if d.quote == nil {
			continue
		}
		out.tickers = append(out.tickers, models.TickerItem{
			Symbol:        sym,
			Name:          s.registry.Name(sym),
			Price:         d.quote.Current,
			Change:        d.quote.Change,
			ChangePercent: d.quote.PercentChange,
		})
	}
	for idx, a := range articles {
		primary := s.registry.PrimarySymbol(a.Related, idx)
		out.news = append(out.news, s.equityNewsItem(a, primary, data[primary]))
	}

	metrics.ObserveTier(tierEquity, resultLive)
	log.Debug().
		Int("articles", len(articles)).
		Int("symbols", len(symbols)).
		Int("tickers", len(out.tickers)).
		Str("tier", tierEquity).
		Msg("equity tier live")
	return out
}

// uniqueArticles keeps the first article for each provider ID. The news
// endpoints repeat stories that were updated after publication.
func uniqueArticles(articles []models.RawNewsArticle) []models.RawNewsArticle {
	seen := make(map[int64]bool, len(articles))
	out := make([]models.RawNewsArticle, 0, len(articles))
	for _, a := range articles {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

func (s *feedService) equityFixtures() tierResult {
	return tierResult{news: s.fixtures.EquityNews(), tickers: s.fixtures.EquityTickers()}
}

// candidateSymbols collects the tracked symbols mentioned by articles, in
// order and without repeats. Fewer than MinSymbols are padded from the
// popular list; the result never exceeds MaxSymbols.
func (s *feedService) candidateSymbols(articles []models.RawNewsArticle) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(sym string) {
		if !seen[sym] && len(out) < s.opts.MaxSymbols {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	for _, a := range articles {
		for _, sym := range s.registry.TrackedRelated(a.Related) {
			add(sym)
		}
	}
	if len(out) < s.opts.MinSymbols {
		for _, sym := range s.registry.Popular() {
			add(sym)
		}
	}
	return out
}

// fetchSymbols fans out quote, sentiment and candle calls for every symbol.
// Each call settles on its own; a failure only leaves that field nil.
func (s *feedService) fetchSymbols(ctx context.Context, symbols []string) map[string]symbolData {
	log := logger.FromContext(ctx)
	limit := s.opts.MaxSymbols
	// whole minutes keep candle requests cacheable within the TTL
	now := s.opts.Now().Truncate(time.Minute)

	var (
		quotes     []outcome[*models.RawQuote]
		sentiments []outcome[*models.RawSentiment]
		candles    []outcome[*models.RawCandleSeries]
	)
	var g errgroup.Group
	g.Go(func() error {
		quotes = settle(ctx, limit, symbols, func(ctx context.Context, sym string) (*models.RawQuote, error) {
			q, err := s.equity.Quote(ctx, sym)
			if err == nil && (q == nil || !q.Valid()) {
				err = errInvalidQuote
			}
			return q, err
		})
		return nil
	})
	if s.opts.EnrichSentiment {
		g.Go(func() error {
			sentiments = settle(ctx, limit, symbols, func(ctx context.Context, sym string) (*models.RawSentiment, error) {
				sent, err := s.equity.NewsSentiment(ctx, sym)
				if err == nil && (sent == nil || !sent.Valid()) {
					err = errEmptySentiment
				}
				return sent, err
			})
			return nil
		})
	}
	if s.opts.EnrichCandles {
		g.Go(func() error {
			candles = settle(ctx, limit, symbols, func(ctx context.Context, sym string) (*models.RawCandleSeries, error) {
				return s.equity.Candles(ctx, sym, s.opts.CandleResolution, now.Add(-lookback), now)
			})
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]symbolData, len(symbols))
	for i, sym := range symbols {
		var d symbolData
		if o := quotes[i]; o.err == nil {
			d.quote = o.val
		} else {
			log.Warn().Err(o.err).Str("symbol", sym).Msg("quote unavailable")
		}
		if sentiments != nil {
			if o := sentiments[i]; o.err == nil {
				d.sentiment = o.val
			} else {
				log.Debug().Err(o.err).Str("symbol", sym).Msg("sentiment unavailable")
			}
		}
		if candles != nil {
			if o := candles[i]; o.err == nil {
				d.candles = o.val
			} else {
				log.Debug().Err(o.err).Str("symbol", sym).Msg("candles unavailable")
			}
		}
		out[sym] = d
	}
	return out
}

var (
	errInvalidQuote   = errors.New("quote has no price")
	errEmptySentiment = errors.New("sentiment has no coverage")
)

// equityNewsItem normalizes one provider article attributed to symbol.
func (s *feedService) equityNewsItem(a models.RawNewsArticle, symbol string, d symbolData) models.NewsItem {
	var pct, price float64
	if d.quote != nil {
		pct, price = d.quote.PercentChange, d.quote.Current
	}
	sentiment, score := enrichment.ResolveSentiment(d.sentiment, pct)
	return models.NewsItem{
		ID:             strconv.FormatInt(a.ID, 10),
		Ticker:         symbol,
		CompanyName:    s.registry.Name(symbol),
		Title:          a.Headline,
		Summary:        a.Summary,
		Source:         a.Source,
		Time:           enrichment.TimeAgo(a.Datetime, s.opts.Now()),
		URL:            a.URL,
		ImageURL:       a.Image,
		Sentiment:      sentiment,
		SentimentScore: score,
		PriceChange:    pct,
		CurrentPrice:   price,
		SparklineData:  enrichment.CandleSparkline(d.candles),
		Category:       enrichment.InferCategory(a.Related, a.Source, s.registry.CategoryRules(), s.registry.DefaultCategory()),
		Provenance:     models.ProvenanceLive,
	}
}

// companyTier answers the per-symbol view from company news. ok is false
// when the provider is not configured, the symbol is not tracked, or the
// call fails or returns nothing.
func (s *feedService) companyTier(ctx context.Context, symbol string) (tierResult, bool) {
	log := logger.FromContext(ctx)
	if s.equity == nil || !s.equity.Configured() || !s.registry.IsTracked(symbol) {
		metrics.ObserveTier(tierSymbol, resultSkipped)
		return tierResult{}, false
	}

	now := s.opts.Now()
	articles, err := s.equity.CompanyNews(ctx, symbol, now.Add(-lookback), now)
	if err != nil || len(articles) == 0 {
		if err != nil && !errors.Is(err, provider.ErrNotConfigured) {
			log.Warn().Err(err).Str("symbol", symbol).Msg("company news unavailable, filtering main feed")
		}
		metrics.ObserveTier(tierSymbol, resultUnavailable)
		return tierResult{}, false
	}
	articles = uniqueArticles(articles)
	articles = articles[:min(len(articles), s.opts.NewsLimit)]

	d := s.fetchSymbols(ctx, []string{symbol})[symbol]
	out := tierResult{live: true}
	if d.quote != nil {
		out.tickers = []models.TickerItem{{
			Symbol:        symbol,
			Name:          s.registry.Name(symbol),
			Price:         d.quote.Current,
			Change:        d.quote.Change,
			ChangePercent: d.quote.PercentChange,
		}}
	}
	for _, a := range articles {
		out.news = append(out.news, s.equityNewsItem(a, symbol, d))
	}
	metrics.ObserveTier(tierSymbol, resultLive)
	return out, true
}
