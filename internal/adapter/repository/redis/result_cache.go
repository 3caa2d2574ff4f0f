package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kyc-tools/companymatch/internal/domain"
)

const cacheKeyPrefix = "companymatch:result:"

// ResultCache implements the domain.ResultCache interface using Redis with
// a per-entry TTL. Entries are marshalled MatchResults keyed by the
// normalized query.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewResultCache creates a new Redis-backed ResultCache.
func NewResultCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "redis_cache"),
	}
}

// Get returns the cached result for key, or nil on a miss. A corrupt cache
// entry is deleted and treated as a miss rather than failing the lookup.
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.MatchResult, error) {
	payload, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to GET cached result: %w", err)
	}

	var result domain.MatchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.logger.Warn("dropping unreadable cache entry", "key", key, "error", err)
		c.client.Del(ctx, cacheKeyPrefix+key)
		return nil, nil
	}

	return &result, nil
}

// Set stores result under key with the configured TTL.
func (c *ResultCache) Set(ctx context.Context, key string, result domain.MatchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	if err := c.client.Set(ctx, cacheKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to SET cached result: %w", err)
	}
	return nil
}
