// Package memstore is an in-process backend built on go-cache. Nothing
// expires; data lives as long as the process.
package memstore

import (
	"context"

	"github.com/minglemoody/internal/storage"
	"github.com/patrickmn/go-cache"
)

// Store implements storage.Backend in memory.
type Store struct {
	cache *cache.Cache
}

// New returns an empty store.
func New() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, 0)}
}

// Get returns a copy of the stored bytes.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, found := s.cache.Get(key)
	if !found {
		return nil, storage.ErrKeyNotFound
	}

	stored, ok := val.([]byte)
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a copy of value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	s.cache.Set(key, valueCopy, cache.NoExpiration)
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cache.Delete(key)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Close drops all entries.
func (s *Store) Close() error {
	s.cache.Flush()
	return nil
}
