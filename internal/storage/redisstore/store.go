// Package redisstore keeps documents as plain Redis strings.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/minglemoody/internal/storage"
	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	Address  string
	Password string
	DB       int
}

// Store implements storage.Backend using Redis.
type Store struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(opts Options) (*Store, error) {
	if opts.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client without pinging it.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves a value from Redis.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

// Set stores value without expiration.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key. DEL on a missing key reports zero deletions, not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Ping checks the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
