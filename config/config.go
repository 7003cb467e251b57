package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, upstream providers, caching and feed shaping.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	FINNHUB_API_KEY=ck_xxx
//	PROVIDER_TIMEOUT=8s
//	CACHE_TTL=60s
//	REDIS_ADDR=localhost:6379
//	FEED_MAX_TICKERS=40
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Finnhub   FinnhubConfig   // Equity data provider
	CoinGecko CoinGeckoConfig // Crypto pricing provider
	Provider  ProviderConfig  // Settings shared by every provider client
	Cache     CacheConfig     // Provider response cache
	Feed      FeedConfig      // Aggregation shaping
	RateLimit RateLimitConfig // Inbound per-client limiter
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// FinnhubConfig defines the equity provider endpoint and credential.
//
// An empty APIKey is a supported configuration: the feed then serves
// fixture equity data instead of calling the provider.
type FinnhubConfig struct {
	APIKey  string
	BaseURL string
}

// CoinGeckoConfig defines the crypto pricing endpoint. The API key is optional.
type CoinGeckoConfig struct {
	APIKey  string
	BaseURL string
}

// ProviderConfig holds settings applied to every outbound provider call.
type ProviderConfig struct {
	Timeout time.Duration // per-call timeout
}

// CacheConfig selects and tunes the provider response cache.
//
// Fields:
//   - TTL: revalidation window for cached provider bodies.
//   - RedisAddr: when set, responses are cached in Redis; otherwise in-process.
//   - RedisPassword / RedisDB: Redis connection details.
type CacheConfig struct {
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// FeedConfig controls how the aggregation response is shaped.
type FeedConfig struct {
	MaxTickers       int
	MaxCryptoTickers int
	NewsLimit        int
	CryptoNewsLimit  int
	MaxSymbols       int
	MinSymbols       int
	EnrichSentiment  bool
	EnrichCandles    bool
	CandleResolution string
}

// RateLimitConfig configures the inbound per-IP token bucket.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FINNHUB_API_KEY", "")
	viper.SetDefault("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")
	viper.SetDefault("COINGECKO_API_KEY", "")
	viper.SetDefault("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3")
	viper.SetDefault("PROVIDER_TIMEOUT", "8s")

	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("FEED_MAX_TICKERS", 40)
	viper.SetDefault("FEED_MAX_CRYPTO_TICKERS", 30)
	viper.SetDefault("FEED_NEWS_LIMIT", 10)
	viper.SetDefault("FEED_CRYPTO_NEWS_LIMIT", 10)
	viper.SetDefault("FEED_MAX_SYMBOLS", 8)
	viper.SetDefault("FEED_MIN_SYMBOLS", 3)
	viper.SetDefault("FEED_ENRICH_SENTIMENT", true)
	viper.SetDefault("FEED_ENRICH_CANDLES", true)
	viper.SetDefault("FEED_CANDLE_RESOLUTION", "60")

	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Finnhub: FinnhubConfig{
			APIKey:  viper.GetString("FINNHUB_API_KEY"),
			BaseURL: viper.GetString("FINNHUB_BASE_URL"),
		},
		CoinGecko: CoinGeckoConfig{
			APIKey:  viper.GetString("COINGECKO_API_KEY"),
			BaseURL: viper.GetString("COINGECKO_BASE_URL"),
		},
		Provider: ProviderConfig{
			Timeout: viper.GetDuration("PROVIDER_TIMEOUT"),
		},
		Cache: CacheConfig{
			TTL:           viper.GetDuration("CACHE_TTL"),
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
		},
		Feed: FeedConfig{
			MaxTickers:       viper.GetInt("FEED_MAX_TICKERS"),
			MaxCryptoTickers: viper.GetInt("FEED_MAX_CRYPTO_TICKERS"),
			NewsLimit:        viper.GetInt("FEED_NEWS_LIMIT"),
			CryptoNewsLimit:  viper.GetInt("FEED_CRYPTO_NEWS_LIMIT"),
			MaxSymbols:       viper.GetInt("FEED_MAX_SYMBOLS"),
			MinSymbols:       viper.GetInt("FEED_MIN_SYMBOLS"),
			EnrichSentiment:  viper.GetBool("FEED_ENRICH_SENTIMENT"),
			EnrichCandles:    viper.GetBool("FEED_ENRICH_CANDLES"),
			CandleResolution: viper.GetString("FEED_CANDLE_RESOLUTION"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	validateConfig()
}

// IsFinnhubConfigured reports whether an equity provider credential is present.
func (c Config) IsFinnhubConfigured() bool {
	return c.Finnhub.APIKey != ""
}

// invalidFields lists every setting that would make the service misbehave.
// A missing FINNHUB_API_KEY is deliberately not part of this list.
func invalidFields(c Config) []string {
	var invalid []string

	if c.Server.Port == "" {
		invalid = append(invalid, "SERVER_PORT")
	}
	if c.Finnhub.BaseURL == "" {
		invalid = append(invalid, "FINNHUB_BASE_URL")
	}
	if c.CoinGecko.BaseURL == "" {
		invalid = append(invalid, "COINGECKO_BASE_URL")
	}
	if c.Provider.Timeout <= 0 {
		invalid = append(invalid, "PROVIDER_TIMEOUT")
	}
	if c.Cache.TTL <= 0 {
		invalid = append(invalid, "CACHE_TTL")
	}
	if c.Feed.MaxTickers <= 0 {
		invalid = append(invalid, "FEED_MAX_TICKERS")
	}
	if c.Feed.MaxCryptoTickers < 0 {
		invalid = append(invalid, "FEED_MAX_CRYPTO_TICKERS")
	}
	if c.Feed.NewsLimit <= 0 {
		invalid = append(invalid, "FEED_NEWS_LIMIT")
	}
	if c.Feed.CryptoNewsLimit < 0 {
		invalid = append(invalid, "FEED_CRYPTO_NEWS_LIMIT")
	}
	if c.Feed.MaxSymbols <= 0 {
		invalid = append(invalid, "FEED_MAX_SYMBOLS")
	}
	if c.Feed.MinSymbols < 0 || c.Feed.MinSymbols > c.Feed.MaxSymbols {
		invalid = append(invalid, "FEED_MIN_SYMBOLS")
	}
	if c.Feed.CandleResolution == "" {
		invalid = append(invalid, "FEED_CANDLE_RESOLUTION")
	}
	if c.RateLimit.RPS <= 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS")
	}
	if c.RateLimit.Burst <= 0 {
		invalid = append(invalid, "RATE_LIMIT_BURST")
	}

	return invalid
}

// validateConfig terminates the application if AppConfig contains missing or invalid values.
func validateConfig() {
	if invalid := invalidFields(AppConfig); len(invalid) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", invalid)
	}
}
