package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"ecotrack/domain"
	"ecotrack/entities"
	"ecotrack/internal/storage"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// InventoryRepository keeps the inventory as one serialized array under a
	// single store key, cached in memory after the first load. It is not safe
	// for concurrent use; callers hold the ledger lock.
	InventoryRepository interface {
		Load(ctx context.Context) ([]entities.InventoryItem, error)
		Save(ctx context.Context, items []entities.InventoryItem) error
		Encode(items []entities.InventoryItem) (string, error)
		// SetCache records items already persisted by a multi-key write.
		SetCache(items []entities.InventoryItem)
		Key() string
	}

	inventoryRepository struct {
		store  storage.Store
		key    string
		cache  []entities.InventoryItem
		loaded bool
	}
)

func NewInventoryRepository(store storage.Store) InventoryRepository {
	return &inventoryRepository{store: store, key: storage.KeyInventory}
}

func (r *inventoryRepository) Key() string {
	return r.key
}

// Load returns a copy of the inventory. A value that cannot be parsed is
// logged and treated as an empty inventory.
func (r *inventoryRepository) Load(ctx context.Context) ([]entities.InventoryItem, error) {
	if !r.loaded {
		raw, found, err := r.store.Get(ctx, r.key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
		}

		items := []entities.InventoryItem{}
		if found && raw != "" {
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				log.Warnw("discarding unreadable inventory", "key", r.key, "error", fmt.Errorf("%w: %v", domain.ErrStorageParse, err))
				items = []entities.InventoryItem{}
			}
		}
		r.cache = items
		r.loaded = true
	}

	return append([]entities.InventoryItem{}, r.cache...), nil
}

func (r *inventoryRepository) Save(ctx context.Context, items []entities.InventoryItem) error {
	raw, err := r.Encode(items)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key, err)
	}
	r.SetCache(items)
	return nil
}

func (r *inventoryRepository) Encode(items []entities.InventoryItem) (string, error) {
	if items == nil {
		items = []entities.InventoryItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *inventoryRepository) SetCache(items []entities.InventoryItem) {
	r.cache = append([]entities.InventoryItem{}, items...)
	r.loaded = true
}
