package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/ports"
)

// RedisRouteCache stores computed route results (geometry + leg durations)
// under keys derived from the rounded coordinate sequence of the stops.
// Entries expire so stale road data does not live forever.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRouteCache(rdb *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRouteCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (ports.RouteResult, bool, error) {
	if c.rdb == nil {
		return ports.RouteResult{}, false, errors.New("route cache: redis client is nil")
	}

	raw, err := c.rdb.Get(ctx, "route:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var result ports.RouteResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("decode cached route: %w", err)
	}

	return result, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, result ports.RouteResult) error {
	if c.rdb == nil {
		return errors.New("route cache: redis client is nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode route for cache: %w", err)
	}

	if err := c.rdb.Set(ctx, "route:"+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put route cache: %w", err)
	}

	return nil
}
