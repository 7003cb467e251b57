package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

var feedEnvKeys = []string{
	"SERVER_PORT", "FINNHUB_API_KEY", "FINNHUB_BASE_URL", "COINGECKO_BASE_URL", "COINGECKO_API_KEY",
	"PROVIDER_TIMEOUT", "CACHE_TTL", "REDIS_ADDR", "FEED_MAX_TICKERS", "FEED_MAX_SYMBOLS", "FEED_MIN_SYMBOLS",
}

// TestLoadConfig_Defaults verifies that defaults are loaded when the environment is empty.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range feedEnvKeys {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.IsFinnhubConfigured() {
		t.Fatalf("expected finnhub to be unconfigured by default")
	}
	if AppConfig.Finnhub.BaseURL != "https://finnhub.io/api/v1" {
		t.Fatalf("unexpected finnhub base url %q", AppConfig.Finnhub.BaseURL)
	}
	if AppConfig.Provider.Timeout != 8*time.Second || AppConfig.Cache.TTL != time.Minute {
		t.Fatalf("unexpected durations: timeout=%v ttl=%v", AppConfig.Provider.Timeout, AppConfig.Cache.TTL)
	}
	f := AppConfig.Feed
	if f.MaxTickers != 40 || f.MaxCryptoTickers != 30 || f.MaxSymbols != 8 || f.MinSymbols != 3 || !f.EnrichSentiment || !f.EnrichCandles {
		t.Fatalf("unexpected feed defaults: %+v", f)
	}
	if AppConfig.Cache.RedisAddr != "" {
		t.Fatalf("expected in-process cache by default, got redis %q", AppConfig.Cache.RedisAddr)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "secret")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("FEED_MAX_SYMBOLS", "5")

	LoadConfig()

	if !AppConfig.IsFinnhubConfigured() || AppConfig.Finnhub.APIKey != "secret" {
		t.Fatalf("expected key from env, got %q", AppConfig.Finnhub.APIKey)
	}
	if AppConfig.Provider.Timeout != 3*time.Second {
		t.Fatalf("timeout=%v, want 3s", AppConfig.Provider.Timeout)
	}
	if AppConfig.Feed.MaxSymbols != 5 {
		t.Fatalf("max symbols=%d, want 5", AppConfig.Feed.MaxSymbols)
	}
}

func TestInvalidFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, want: "SERVER_PORT"},
		{name: "zero timeout", mutate: func(c *Config) { c.Provider.Timeout = 0 }, want: "PROVIDER_TIMEOUT"},
		{name: "min above max", mutate: func(c *Config) { c.Feed.MinSymbols = c.Feed.MaxSymbols + 1 }, want: "FEED_MIN_SYMBOLS"},
		{name: "no burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, want: "RATE_LIMIT_BURST"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(&c)
			got := invalidFields(c)
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("invalidFields=%v, want [%s]", got, tc.want)
			}
		})
	}

	if got := invalidFields(validConfig()); len(got) != 0 {
		t.Fatalf("valid config reported invalid: %v", got)
	}
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: "8080"},
		Finnhub:   FinnhubConfig{BaseURL: "http://finnhub"},
		CoinGecko: CoinGeckoConfig{BaseURL: "http://coingecko"},
		Provider:  ProviderConfig{Timeout: time.Second},
		Cache:     CacheConfig{TTL: time.Minute},
		Feed: FeedConfig{
			MaxTickers: 40, MaxCryptoTickers: 30, NewsLimit: 10, CryptoNewsLimit: 10,
			MaxSymbols: 8, MinSymbols: 3, CandleResolution: "60",
		},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 20},
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
