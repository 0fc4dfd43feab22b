// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/migrationboard/internal/platform/constants"
)

// ErrCacheMiss is returned by a [Cache] that holds no artifact for a key.
var ErrCacheMiss = errors.New("report: cache miss")

// Cache stores rendered report artifacts.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, artifact []byte, ttl time.Duration) error
}

// CacheKey identifies the report of one catalog, fixture set and day. The day
// is part of the key because the cover page is dated.
func CacheKey(catalogName, fingerprint string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", constants.RedisPrefixReport, catalogName, fingerprint, day.Format(time.DateOnly))
}

// RedisCache implements [Cache] with Redis strings.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed report cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get returns the cached artifact for key.

Returns:
  - []byte: The PDF bytes
  - error: [ErrCacheMiss] if the key is absent or expired
*/
func (cache *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	artifact, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_report_get_failed: %w", err)
	}
	return artifact, nil
}

// Set stores artifact under key for ttl.
func (cache *RedisCache) Set(ctx context.Context, key string, artifact []byte, ttl time.Duration) error {
	if err := cache.client.Set(ctx, key, artifact, ttl).Err(); err != nil {
		return fmt.Errorf("redis_report_set_failed: %w", err)
	}
	return nil
}
