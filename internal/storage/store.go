package storage

import (
	"context"
	"errors"
	"sort"
)

const (
	KeyInventory = "foodInventory"
	KeyWaste     = "wasteData"
)

var ErrStoreClosed = errors.New("store is closed")

// Store is a flat string key-value store. Values are opaque to the store;
// the ledgers keep serialized collections under a fixed key each.
type Store interface {
	// Get reports found=false with a nil error when the key was never set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetMulti writes every pair or none of them.
	SetMulti(ctx context.Context, values map[string]string) error
	Close() error
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
