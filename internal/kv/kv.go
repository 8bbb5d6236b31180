// Package kv provides the string key-value stores that back every table.
package kv

import "context"

// Store is a get/set/delete map of string values by string key.
// Get reports absence through ok rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
