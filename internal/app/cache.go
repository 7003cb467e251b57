package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/finpulse/config"
	"github.com/guttosm/finpulse/internal/cache"
	"github.com/guttosm/finpulse/internal/logger"
)

// memoryCacheEntries bounds the in-process cache; a feed touches a few dozen keys.
const memoryCacheEntries = 512

// redisConnectTimeout bounds the initial Redis ping.
const redisConnectTimeout = 3 * time.Second

// InitCache opens the provider response cache selected by the configuration.
//
// Behavior:
//   - REDIS_ADDR set: connects to Redis and pings it; a failed ping is an error.
//   - REDIS_ADDR empty: returns a bounded in-process cache.
//
// Returns:
//   - cache.Cache: the opened cache; callers must Close it on shutdown.
//   - error: if Redis was requested but is not reachable.
func InitCache(cfg config.Config) (cache.Cache, error) {
	if cfg.Cache.RedisAddr == "" {
		logger.L().Info().Int("capacity", memoryCacheEntries).Msg("using in-process provider cache")
		return cache.NewMemoryCache(memoryCacheEntries, cfg.Cache.TTL), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	c, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
	}
	logger.L().Info().Str("addr", cfg.Cache.RedisAddr).Msg("using redis provider cache")
	return c, nil
}

// cacheOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var cacheOpener = InitCache
