package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
)

// keyPrefix namespaces offer entries inside a shared Redis instance.
const keyPrefix = "hotelsearch:offers:"

// Redis is a Store backed by a Redis instance, for deployments where
// multiple search nodes should share one offer cache. TTL handling is
// delegated to Redis key expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis creates a Redis-backed store. A non-positive TTL falls back
// to DefaultTTL.
func NewRedis(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl, log: log}
}

// Get implements Store. Transport errors and corrupt payloads are treated
// as cache misses so a broken Redis never breaks a search.
func (r *Redis) Get(ctx context.Context, key string) ([]domain.NormalizedOffer, bool) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn().Err(err).Msg("Redis cache read failed")
		}
		return nil, false
	}

	var offers []domain.NormalizedOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("Corrupt cache entry dropped")
		r.client.Del(ctx, keyPrefix+key)
		return nil, false
	}
	return offers, true
}

// Set implements Store. Write failures are logged and swallowed: caching
// is an optimization, not a dependency.
func (r *Redis) Set(ctx context.Context, key string, offers []domain.NormalizedOffer) {
	data, err := json.Marshal(offers)
	if err != nil {
		r.log.Warn().Err(err).Msg("Failed to encode offers for cache")
		return
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Msg("Redis cache write failed")
	}
}

// Delete implements Store.
func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		r.log.Warn().Err(err).Msg("Redis cache delete failed")
	}
}

// Ensure Redis implements Store at compile time.
var _ Store = (*Redis)(nil)
