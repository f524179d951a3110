package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
)

// Collection serializes one entity collection to a single key in the
// snapshot store. Load returns kv.ErrNotFound when no snapshot exists yet,
// at which point callers fall back to their seed defaults.
type Collection[T any] struct {
	store kv.Store
	key   string
}

// NewCollection binds a snapshot key to a value type.
func NewCollection[T any](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load reads and decodes the stored snapshot.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	var value T
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("store: decode %s: %w", c.key, err)
	}
	return value, nil
}

// Save encodes and writes the snapshot.
func (c *Collection[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(raw))
}
