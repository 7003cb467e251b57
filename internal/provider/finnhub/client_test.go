package finnhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/provider"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "key" || r.URL.Query().Get("category") != "general" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"id":7311202,"category":"top news","datetime":1726660800,"headline":"Apple unveils","summary":"s","source":"Reuters","related":"AAPL,MSFT","image":"","url":"https://x/1"}]`))
	})
	mux.HandleFunc("/company-news", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("symbol") != "TSLA" || q.Get("from") != "2025-09-11" || q.Get("to") != "2025-09-18" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"datetime":1726660800,"headline":"Tesla","source":"CNBC","related":"TSLA","url":"https://x/2"}]`))
	})
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "FAIL" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"c":189.84,"d":4.09,"dp":2.2,"h":190.1,"l":185.2,"o":186,"pc":185.75,"t":1726660800}`))
	})
	mux.HandleFunc("/news-sentiment", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"NVDA","sentiment":{"bearishPercent":0.2,"bullishPercent":0.8},"buzz":{"articlesInLastWeek":40,"buzz":1.2,"weeklyAverage":33},"companyNewsScore":0.7}`))
	})
	mux.HandleFunc("/stock/candle", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("resolution") != "60" || q.Get("from") == "" || q.Get("to") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"c":[1,2,3],"h":[1,2,3],"l":[1,2,3],"o":[1,2,3],"s":"ok","t":[1,2,3],"v":[10,20,30]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, key string) *Client {
	return New(Options{APIKey: key, BaseURL: srv.URL, Timeout: 2 * time.Second, HTTP: srv.Client()})
}

func TestClient_Endpoints(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(srv, "key")
	ctx := context.Background()

	require.True(t, c.Configured())

	news, err := c.MarketNews(ctx, "general")
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, int64(7311202), news[0].ID)
	assert.Equal(t, "AAPL,MSFT", news[0].Related)

	to := time.Date(2025, 9, 18, 15, 0, 0, 0, time.UTC)
	cn, err := c.CompanyNews(ctx, "TSLA", to.AddDate(0, 0, -7), to)
	require.NoError(t, err)
	require.Len(t, cn, 1)

	q, err := c.Quote(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 189.84, q.Current)
	assert.Equal(t, 2.2, q.PercentChange)
	assert.True(t, q.Valid())

	s, err := c.NewsSentiment(ctx, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, 0.8, s.Sentiment.BullishPercent)
	assert.Equal(t, 40, s.Buzz.ArticlesInLastWeek)

	cs, err := c.Candles(ctx, "NVDA", "60", to.Add(-24*time.Hour), to)
	require.NoError(t, err)
	assert.Equal(t, models.CandleStatusOK, cs.Status)
	assert.Equal(t, []float64{1, 2, 3}, cs.Close)
}

func TestClient_FailureIsUnavailable(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(srv, "key")

	_, err := c.Quote(context.Background(), "FAIL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, provider.ErrUnavailable))
}

func TestClient_NotConfiguredSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	c := newClient(srv, "")
	assert.False(t, c.Configured())

	_, err := c.MarketNews(context.Background(), "general")
	assert.ErrorIs(t, err, provider.ErrNotConfigured)
	_, err = c.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, provider.ErrNotConfigured)
	assert.False(t, called)
}
