package cache

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cryptowatch_backend/internal/feature/catalog/usecase"
)

// KVEntry is the database row backing GormKV.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value []byte `gorm:"not null"`
}

// TableName returns the gorm table name for KVEntry.
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormKV implements usecase.KVStore on a relational table, as the durable
// fallback when Redis is not configured. Favorites must survive restarts
// even without a cache server.
type GormKV struct {
	db *gorm.DB
}

// GormKVがKVStoreを実装していることをコンパイル時に検証します。
var _ usecase.KVStore = (*GormKV)(nil)

// NewGormKV creates a GormKV backed by the given database handle.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get loads the JSON value stored under key into dest. A missing row
// reports absent.
func (g *GormKV) Get(ctx context.Context, key string, dest any) (bool, error) {
	var e KVEntry
	if err := g.db.WithContext(ctx).First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(e.Value) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(e.Value, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set upserts the JSON value under key.
func (g *GormKV) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := KVEntry{Key: key, Value: b}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}
