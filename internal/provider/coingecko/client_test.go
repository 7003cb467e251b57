package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/finpulse/internal/provider"
)

const marketsBody = `[
 {"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":67250.12,"price_change_24h":1220.5,"price_change_percentage_24h":1.85,"market_cap_rank":1,"sparkline_in_7d":{"price":[60000,61000,62000]}},
 {"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3400,"price_change_24h":-50,"price_change_percentage_24h":-1.4,"market_cap_rank":2,"sparkline_in_7d":null}
]`

func TestMarkets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/coins/markets" || q.Get("vs_currency") != "usd" || q.Get("per_page") != "50" || q.Get("sparkline") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-cg-demo-api-key") != "demo" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(marketsBody))
	}))
	defer srv.Close()

	c := New(Options{APIKey: "demo", BaseURL: srv.URL, Timeout: time.Second, HTTP: srv.Client()})
	coins, err := c.Markets(context.Background(), 50, true)
	require.NoError(t, err)
	require.Len(t, coins, 2)

	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, 1, coins[0].MarketCapRank)
	assert.Equal(t, []float64{60000, 61000, 62000}, coins[0].SparklinePrices())
	assert.Nil(t, coins[1].SparklinePrices())
	assert.Equal(t, -1.4, coins[1].PriceChangePercentage24h)
}

func TestMarkets_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Timeout: time.Second, HTTP: srv.Client()})
	_, err := c.Markets(context.Background(), 50, true)
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}
