// Package cache provides implementations of the persistent key/value
// gateway used for reference-data caching and favorites persistence.
package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"cryptowatch_backend/internal/feature/catalog/usecase"
)

// RedisKV implements usecase.KVStore on top of Redis. Values round-trip
// as JSON. Entries carry no TTL: the reference caches are cleared only by
// external action, and the favorites and selection keys must survive
// restarts indefinitely.
type RedisKV struct {
	rdb *redis.Client
}

// RedisKVがKVStoreを実装していることをコンパイル時に検証します。
var _ usecase.KVStore = (*RedisKV)(nil)

// NewRedisKV creates a RedisKV backed by the given client.
func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

// Get loads the JSON value stored under key into dest. A missing key or a
// corrupted entry reports absent; corrupted entries are deleted.
func (r *RedisKV) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		_ = r.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// Set stores value under key as JSON, without expiration.
func (r *RedisKV) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, b, 0).Err()
}
