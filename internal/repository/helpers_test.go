package repository

import (
	"context"
	"errors"

	"technomaster/internal/kv"
)

var errStoreDown = errors.New("store unavailable")

// failingStore serves reads from an inner store but fails every write
type failingStore struct {
	kv.Store
	failGet bool
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGet {
		return "", false, errStoreDown
	}
	return s.Store.Get(ctx, key)
}

func (s *failingStore) Set(context.Context, string, string) error { return errStoreDown }
