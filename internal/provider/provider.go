// Package provider holds what every upstream data client shares: the uniform
// failure taxonomy and a cached JSON GET helper.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/finpulse/internal/cache"
	"github.com/guttosm/finpulse/internal/metrics"
)

var (
	// ErrUnavailable covers every way a provider call can fail: transport
	// errors, timeouts, non-2xx statuses and undecodable bodies. Callers fall
	// back instead of retrying.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrNotConfigured is returned when a call needs a credential that is not set.
	ErrNotConfigured = errors.New("provider not configured")
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 4 << 20

// JSONClient performs cached GET requests against one provider.
//
// Secret query parameters (such as API tokens) are passed separately so they
// never end up in cache keys or errors.
type JSONClient struct {
	Name     string
	BaseURL  string
	HTTP     *http.Client
	Cache    cache.Cache
	CacheTTL time.Duration
	Timeout  time.Duration
	Header   http.Header
}

// GetJSON fetches BaseURL+path with params, decoding the JSON body into out.
//
// The endpoint label is used for metrics. A cached body younger than CacheTTL
// is decoded without a network call.
func (c *JSONClient) GetJSON(ctx context.Context, endpoint, path string, params, secret url.Values, out any) error {
	publicURL := c.BaseURL + path
	if len(params) > 0 {
		publicURL += "?" + params.Encode()
	}

	if c.Cache != nil {
		if body, ok := c.Cache.Get(ctx, c.cacheKey(publicURL)); ok {
			if err := json.Unmarshal(body, out); err == nil {
				metrics.ObserveProviderCall(c.Name, endpoint, metrics.OutcomeCached, 0)
				return nil
			}
		}
	}

	start := time.Now()
	body, err := c.fetch(ctx, path, params, secret)
	if err == nil {
		if jerr := json.Unmarshal(body, out); jerr != nil {
			err = fmt.Errorf("%w: %s %s: decode: %v", ErrUnavailable, c.Name, endpoint, jerr)
		}
	}
	if err != nil {
		metrics.ObserveProviderCall(c.Name, endpoint, metrics.OutcomeUnavailable, time.Since(start).Seconds())
		return err
	}
	metrics.ObserveProviderCall(c.Name, endpoint, metrics.OutcomeOK, time.Since(start).Seconds())

	if c.Cache != nil && c.CacheTTL > 0 {
		c.Cache.Set(ctx, c.cacheKey(publicURL), body, c.CacheTTL)
	}
	return nil
}

func (c *JSONClient) fetch(ctx context.Context, path string, params, secret url.Values) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	for k, v := range secret {
		q[k] = v
	}
	target := c.BaseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: build request: %v", ErrUnavailable, c.Name, path, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.Header {
		req.Header[k] = v
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// strip the URL so secrets never reach logs
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, c.Name, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrUnavailable, c.Name, path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", ErrUnavailable, c.Name, path, err)
	}
	return body, nil
}

func (c *JSONClient) cacheKey(publicURL string) string {
	return c.Name + ":" + publicURL
}
