package storage

import (
	"context"
	"fmt"
	"os"
	"testing"

	"ecotrack/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Integration test: requires a running PostgreSQL and TEST_DB_HOST set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set; skipping postgres store test")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		os.Getenv("TEST_DB_USER"),
		os.Getenv("TEST_DB_PASSWORD"),
		os.Getenv("TEST_DB_NAME"),
		os.Getenv("TEST_DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.StoreRecord{}))
	require.NoError(t, db.Where("key IN ?", []string{KeyInventory, KeyWaste}).Delete(&entities.StoreRecord{}).Error)
	return db
}

func TestGormStore_SetMultiUpserts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewGormStore(db)

	_, found, err := store.Get(ctx, KeyInventory)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetMulti(ctx, map[string]string{
		KeyInventory: `[]`,
		KeyWaste:     `[]`,
	}))
	require.NoError(t, store.Set(ctx, KeyWaste, `[{"foodItem":"Rice"}]`))

	value, found, err := store.Get(ctx, KeyWaste)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"foodItem":"Rice"}]`, value)

	var count int64
	require.NoError(t, db.Model(&entities.StoreRecord{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(2))
}
