package waste

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
	// WasteRepository mirrors the inventory repository for the append-only
	// waste log. Callers hold the ledger lock.
	WasteRepository interface {
		Load(ctx context.Context) ([]entities.WasteEntry, error)
		Save(ctx context.Context, entries []entities.WasteEntry) error
		Encode(entries []entities.WasteEntry) (string, error)
		SetCache(entries []entities.WasteEntry)
		Key() string
	}

	wasteRepository struct {
		store  storage.Store
		key    string
		cache  []entities.WasteEntry
		loaded bool
	}
)

func NewWasteRepository(store storage.Store) WasteRepository {
	return &wasteRepository{store: store, key: storage.KeyWaste}
}

func (r *wasteRepository) Key() string {
	return r.key
}

func (r *wasteRepository) Load(ctx context.Context) ([]entities.WasteEntry, error) {
	if !r.loaded {
		raw, found, err := r.store.Get(ctx, r.key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
		}

		entries := []entities.WasteEntry{}
		if found && raw != "" {
			if err := json.Unmarshal([]byte(raw), &entries); err != nil {
				log.Warnw("discarding unreadable waste log", "key", r.key, "error", fmt.Errorf("%w: %v", domain.ErrStorageParse, err))
				entries = []entities.WasteEntry{}
			}
		}
		r.cache = entries
		r.loaded = true
	}

	return append([]entities.WasteEntry{}, r.cache...), nil
}

func (r *wasteRepository) Save(ctx context.Context, entries []entities.WasteEntry) error {
	raw, err := r.Encode(entries)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key, err)
	}
	r.SetCache(entries)
	return nil
}

func (r *wasteRepository) Encode(entries []entities.WasteEntry) (string, error) {
	if entries == nil {
		entries = []entities.WasteEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *wasteRepository) SetCache(entries []entities.WasteEntry) {
	r.cache = append([]entities.WasteEntry{}, entries...)
	r.loaded = true
}
