package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&KVEntry{}), "failed to migrate table")
	return db
}

func TestGormKV_GetMiss(t *testing.T) {
	kv := NewGormKV(setupTestDB(t))

	var out []string
	ok, err := kv.Get(context.Background(), "temp_currencies", &out)

	assert.NoError(t, err)
	assert.False(t, ok, "expected a miss on an empty table")
}

func TestGormKV_SetGetRoundTrip(t *testing.T) {
	kv := NewGormKV(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "temp_currencies", []string{"eur", "usd"}))

	var out []string
	ok, err := kv.Get(ctx, "temp_currencies", &out)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"eur", "usd"}, out)
}

func TestGormKV_SetOverwrites(t *testing.T) {
	kv := NewGormKV(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "crypto_currency", "eur"))
	require.NoError(t, kv.Set(ctx, "crypto_currency", "usd"))

	var out string
	ok, err := kv.Get(ctx, "crypto_currency", &out)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "usd", out)
}

func TestGormKV_CorruptedValueIsAMiss(t *testing.T) {
	db := setupTestDB(t)
	kv := NewGormKV(db)

	require.NoError(t, db.Create(&KVEntry{Key: "temp_crypto", Value: []byte(`{not json`)}).Error)

	var out []string
	ok, err := kv.Get(context.Background(), "temp_crypto", &out)

	assert.NoError(t, err)
	assert.False(t, ok)
}
