package waste

import (
	"context"
	"testing"
	"time"

	"ecotrack/entities"
	"ecotrack/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteRepository_LoadMissingKey(t *testing.T) {
	repo := NewWasteRepository(storage.NewMemoryStore())

	entries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestWasteRepository_LoadCorruptedValue(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyWaste, `{not json`))

	entries, err := NewWasteRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWasteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	ts := time.Date(2024, time.February, 2, 9, 30, 0, 0, time.UTC)
	entries := []entities.WasteEntry{
		{FoodItem: "Rice", Quantity: 1.5, Unit: entities.UnitKilograms, Category: entities.CategoryGrainsBread, Reason: "Burnt", CO2Impact: 2.1, Timestamp: ts},
		{FoodItem: "Lettuce", Quantity: 1, Unit: entities.UnitCount, Category: entities.CategoryFruitsVegetables, Reason: "Wilted", Timestamp: ts.Add(time.Hour)},
	}

	require.NoError(t, NewWasteRepository(store).Save(ctx, entries))

	loaded, err := NewWasteRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestWasteRepository_LoadLegacyValues(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyWaste,
		`[{"foodItem":"Bananas","quantity":"3","unit":"count","category":"Fruits & Vegetables","reason":"Overripe","co2Impact":0.0015,"timestamp":"2024-01-05T12:00:00.000Z"}]`))

	entries, err := NewWasteRepository(store).Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entities.Quantity(3), entries[0].Quantity)
	assert.Equal(t, entities.CategoryFruitsVegetables, entries[0].Category)
	assert.Equal(t, time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC), entries[0].Timestamp)
}

func TestWasteRepository_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewWasteRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, []entities.WasteEntry{{FoodItem: "Milk"}}))

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	first[0].FoodItem = "changed"

	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Milk", second[0].FoodItem)
}
