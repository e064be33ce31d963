package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps tokens in Redis with a TTL, so sessions survive
// process restarts and are shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Issue(ctx context.Context, identity Identity) (string, error) {
	tok, err := newToken()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal identity: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+tok, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return tok, nil
}

func (s *RedisStore) Validate(ctx context.Context, tok string) (Identity, bool, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+tok).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, false, nil
		}
		return Identity{}, false, fmt.Errorf("failed to look up token: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return Identity{}, false, fmt.Errorf("failed to unmarshal identity: %w", err)
	}
	return identity, true, nil
}

func (s *RedisStore) Revoke(ctx context.Context, tok string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+tok).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
