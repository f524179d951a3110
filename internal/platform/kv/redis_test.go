package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store, err := NewRedis(context.Background(), client)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	return store
}

func TestRedisRoundTrip(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "pharmaflow_customers"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := store.Set(ctx, "pharmaflow_customers", `[{"id":"C1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := store.Get(ctx, "pharmaflow_customers")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != `[{"id":"C1"}]` {
		t.Fatalf("unexpected value %q", value)
	}
	if err := store.Delete(ctx, "pharmaflow_customers"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "pharmaflow_customers"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryMatchesRedisSemantics(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]Store{
		"memory": NewMemory(),
		"redis":  newTestRedis(t),
	} {
		if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
		if err := store.Set(ctx, "k", "v"); err != nil {
			t.Fatalf("%s: Set: %v", name, err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil || got != "v" {
			t.Fatalf("%s: Get = %q, %v", name, got, err)
		}
	}
}
