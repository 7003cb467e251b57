// Package coingecko is the crypto pricing client. It needs no credential.
package coingecko

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

const providerName = "coingecko"

// Options configures a Client. APIKey is optional and sent as the demo-key header.
type Options struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Cache    cache.Cache
	CacheTTL time.Duration
	HTTP     *http.Client
}

// Client calls the public crypto markets API.
type Client struct {
	json *provider.JSONClient
}

// New builds a Client.
func New(opts Options) *Client {
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	header := http.Header{}
	if opts.APIKey != "" {
		header.Set("x-cg-demo-api-key", opts.APIKey)
	}
	return &Client{
		json: &provider.JSONClient{
			Name:     providerName,
			BaseURL:  opts.BaseURL,
			HTTP:     httpClient,
			Cache:    opts.Cache,
			CacheTTL: opts.CacheTTL,
			Timeout:  opts.Timeout,
			Header:   header,
		},
	}
}

// Markets returns the top perPage coins by market cap in USD, with 24h change
// and, when sparkline is true, the 7-day price series.
func (c *Client) Markets(ctx context.Context, perPage int, sparkline bool) ([]models.RawCoin, error) {
	params := url.Values{
		"vs_currency":             {"usd"},
		"order":                   {"market_cap_desc"},
		"per_page":                {strconv.Itoa(perPage)},
		"page":                    {"1"},
		"sparkline":               {strconv.FormatBool(sparkline)},
		"price_change_percentage": {"24h"},
	}
	var out []models.RawCoin
	if err := c.json.GetJSON(ctx, "markets", "/coins/markets", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
