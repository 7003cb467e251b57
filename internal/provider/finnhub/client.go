// Package finnhub is the equity data provider client: market news, company
// news, quotes, news sentiment and intraday candles.
package finnhub

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/finpulse/internal/cache"
	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/provider"
)

const (
	providerName = "finnhub"
	dateLayout   = "2006-01-02"
)

// Options configures a Client.
type Options struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Cache    cache.Cache
	CacheTTL time.Duration
	HTTP     *http.Client
}

// Client calls the equity provider REST API.
//
// Every method returns provider.ErrNotConfigured when no API key is set and a
// wrapped provider.ErrUnavailable for any other failure.
type Client struct {
	apiKey string
	json   *provider.JSONClient
}

// New builds a Client. An empty APIKey yields a client whose Configured()
// reports false.
func New(opts Options) *Client {
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		apiKey: opts.APIKey,
		json: &provider.JSONClient{
			Name:     providerName,
			BaseURL:  opts.BaseURL,
			HTTP:     httpClient,
			Cache:    opts.Cache,
			CacheTTL: opts.CacheTTL,
			Timeout:  opts.Timeout,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if !c.Configured() {
		return provider.ErrNotConfigured
	}
	return c.json.GetJSON(ctx, endpoint, path, params, url.Values{"token": {c.apiKey}}, out)
}

// MarketNews returns the latest general market news for category (e.g. "general").
func (c *Client) MarketNews(ctx context.Context, category string) ([]models.RawNewsArticle, error) {
	var out []models.RawNewsArticle
	if err := c.get(ctx, "news", "/news", url.Values{"category": {category}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompanyNews returns news about symbol published between from and to (dates, inclusive).
func (c *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]models.RawNewsArticle, error) {
	params := url.Values{
		"symbol": {symbol},
		"from":   {from.Format(dateLayout)},
		"to":     {to.Format(dateLayout)},
	}
	var out []models.RawNewsArticle
	if err := c.get(ctx, "company-news", "/company-news", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Quote returns the latest trading snapshot for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.RawQuote, error) {
	var out models.RawQuote
	if err := c.get(ctx, "quote", "/quote", url.Values{"symbol": {symbol}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewsSentiment returns bullish/bearish percentages and buzz metrics for symbol.
func (c *Client) NewsSentiment(ctx context.Context, symbol string) (*models.RawSentiment, error) {
	var out models.RawSentiment
	if err := c.get(ctx, "news-sentiment", "/news-sentiment", url.Values{"symbol": {symbol}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Candles returns OHLCV candles for symbol at resolution (e.g. "60") between from and to.
func (c *Client) Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (*models.RawCandleSeries, error) {
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {resolution},
		"from":       {strconv.FormatInt(from.Unix(), 10)},
		"to":         {strconv.FormatInt(to.Unix(), 10)},
	}
	var out models.RawCandleSeries
	if err := c.get(ctx, "candle", "/stock/candle", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
