package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cryptowatch_backend/internal/feature/catalog/usecase"
	"cryptowatch_backend/internal/platform/cache"
)

// NewKVStore creates a KVStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the relational database.
func NewKVStore(rdb *redis.Client, db *gorm.DB) usecase.KVStore {
	if rdb != nil {
		return cache.NewRedisKV(rdb)
	}
	return cache.NewGormKV(db)
}
