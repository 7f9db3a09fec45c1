// Package storage defines the key/value backend the content store persists
// its documents in. Implementations live in the sub-packages.
//
// Example usage:
//
//	backend := memstore.New()
//
//	// Store a document
//	err := backend.Set(ctx, "minglemoody_landing", payload)
//
//	// Retrieve it
//	raw, err := backend.Get(ctx, "minglemoody_landing")
//	if errors.Is(err, storage.ErrKeyNotFound) {
//		// never written, or removed
//	}
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written or
// was removed.
var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is a flat string-keyed byte store with overwrite semantics.
type Backend interface {
	// Get returns the stored bytes or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces whatever is stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases resources held by the backend.
	Close() error
}
