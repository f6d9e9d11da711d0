package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of the CookieStore interface
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a new Redis cookie store
func NewRedisStore(client *redis.Client) ports.CookieStore {
	return &RedisStore{
		client: client,
		key:    "questrun:cookies",
	}
}

// Load fetches the serialized cookie set from Redis. A missing key yields
// an empty set.
func (s *RedisStore) Load(ctx context.Context) ([]core.Cookie, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cookies: %w", err)
	}

	var cookies []core.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to decode cookies: %w", err)
	}
	return cookies, nil
}

// Save writes the serialized cookie set to Redis without expiry; the
// cookies carry their own expiry and the jar filters stale entries.
func (s *RedisStore) Save(ctx context.Context, cookies []core.Cookie) error {
	data, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("failed to encode cookies: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cookies: %w", err)
	}
	return nil
}
