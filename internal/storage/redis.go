package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each cart blob under a plain Redis string key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at url and verifies the
// connection with a ping.
func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *RedisStore) Get(key string) ([]byte, error) {
	value, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart value: %w", err)
	}
	return value, nil
}

// Put stores value under key. Carts have no expiry; they live until cleared.
func (s *RedisStore) Put(key string, value []byte) error {
	if err := s.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to store cart value: %w", err)
	}
	return nil
}

// Delete removes key if present.
func (s *RedisStore) Delete(key string) error {
	if err := s.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart value: %w", err)
	}
	return nil
}

// Close releases the underlying client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
