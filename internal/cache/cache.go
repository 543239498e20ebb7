package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shortlyhq/shortly-backend/internal/models"
)

// DefaultTTL bounds how stale a cached redirect target may be relative to an
// update that raced past its invalidation.
const DefaultTTL = time.Hour

// LinkCache is the redirect hot-path cache, keyed by access code. Redis is a
// pure optimization here; the database stays the system of record and every
// cache failure degrades to a store lookup.
type LinkCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func New(rdb *redis.Client, log zerolog.Logger) *LinkCache {
	return &LinkCache{
		rdb: rdb,
		ttl: DefaultTTL,
		log: log.With().Str("component", "link_cache").Logger(),
	}
}

func key(code string) string {
	return "url:" + code
}

// Get returns the cached record for code, or (nil, false) on miss or any
// cache error. Errors other than a plain miss are logged.
func (c *LinkCache) Get(ctx context.Context, code string) (*models.ShortLink, bool) {
	val, err := c.rdb.Get(ctx, key(code)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("code", code).Msg("cache read failed")
		}
		return nil, false
	}

	var link models.ShortLink
	if err := json.Unmarshal([]byte(val), &link); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("cache entry corrupt, dropping")
		c.rdb.Del(ctx, key(code))
		return nil, false
	}
	return &link, true
}

// Set stores the record under code with the cache TTL. Failure is logged and
// swallowed; caching is best-effort.
func (c *LinkCache) Set(ctx context.Context, code string, link *models.ShortLink) {
	payload, err := json.Marshal(link)
	if err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, key(code), payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("cache write failed")
	}
}

// Invalidate removes the entry for code. Failure is logged, never raised:
// a leftover entry expires within the TTL anyway.
func (c *LinkCache) Invalidate(ctx context.Context, code string) {
	if err := c.rdb.Del(ctx, key(code)).Err(); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("cache invalidation failed")
	}
}
