// Package storagetest holds a behavioural suite every storage.Backend must pass.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/minglemoody/internal/storage"
)

// Run exercises backend with get/set/delete scenarios. Keys are prefixed so
// shared backends (Redis) can be reused across runs.
func Run(t *testing.T, backend storage.Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := backend.Get(ctx, "storagetest:missing")
		if !errors.Is(err, storage.ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := backend.Set(ctx, "storagetest:doc", []byte(`{"title":"a"}`)); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		got, err := backend.Get(ctx, "storagetest:doc")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if string(got) != `{"title":"a"}` {
			t.Fatalf("unexpected value %q", got)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := backend.Set(ctx, "storagetest:doc", []byte("first")); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		if err := backend.Set(ctx, "storagetest:doc", []byte("second")); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		got, err := backend.Get(ctx, "storagetest:doc")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if string(got) != "second" {
			t.Fatalf("expected last write to win, got %q", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := backend.Set(ctx, "storagetest:gone", []byte("x")); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		if err := backend.Delete(ctx, "storagetest:gone"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if _, err := backend.Get(ctx, "storagetest:gone"); !errors.Is(err, storage.ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
		}
		if err := backend.Delete(ctx, "storagetest:gone"); err != nil {
			t.Fatalf("deleting a missing key should succeed, got %v", err)
		}
	})

	t.Run("returned bytes are not aliased", func(t *testing.T) {
		value := []byte("abc")
		if err := backend.Set(ctx, "storagetest:alias", value); err != nil {
			t.Fatalf("Set returned error: %v", err)
		}
		value[0] = 'z'
		got, err := backend.Get(ctx, "storagetest:alias")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if string(got) != "abc" {
			t.Fatalf("stored value changed through caller slice: %q", got)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := backend.Ping(ctx); err != nil {
			t.Fatalf("Ping returned error: %v", err)
		}
	})
}
