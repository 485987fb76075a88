// Package redis backs the record store with a Redis instance. It exists for
// setups where the quiz data should live in an already-running local Redis
// rather than a file; the layout is one string key per record under a
// configurable prefix.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is a Redis-backed implementation of app.RecordStore.
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "quizmaster"
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", name, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, name, value string) error {
	// Records persist until explicitly cleared, so no TTL.
	if err := s.client.Set(ctx, s.key(name), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", name, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", name, err)
	}
	return nil
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}
