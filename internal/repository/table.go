package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"technomaster/internal/kv"
)

// Storage keys, one per logical table
const (
	ProductsKey    = "technomaster_products"
	OrdersKey      = "technomaster_orders"
	UsersKey       = "technomaster_users"
	CurrentUserKey = "technomaster_current_user"
)

// ErrCorruptTable is returned when a stored table is present but cannot be decoded
var ErrCorruptTable = errors.New("stored table is corrupt")

// table reads and writes a whole slice of records as one JSON value under key.
// Every mutation is load -> modify -> persist; there are no partial writes.
type table[T any] struct {
	store kv.Store
	key   string
}

// load returns the stored records and whether the key was present.
// An empty stored value counts as absent.
func (t table[T]) load(ctx context.Context) ([]T, bool, error) {
	raw, ok, err := t.store.Get(ctx, t.key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", t.key, err)
	}
	if !ok || raw == "" {
		return []T{}, false, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", ErrCorruptTable, t.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, true, nil
}

func (t table[T]) persist(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", t.key, err)
	}
	if err := t.store.Set(ctx, t.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", t.key, err)
	}
	return nil
}
