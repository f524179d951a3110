// Package kv abstracts the key-value snapshot store the entity collections
// persist into. Values are independently serialized JSON blobs, one per
// collection, so any string store (Redis, a Postgres table, process memory)
// satisfies the contract.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store reads and writes collection snapshots.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
