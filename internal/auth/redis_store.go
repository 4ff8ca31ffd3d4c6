package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberpro/barberpro-api/internal/config"
)

// RedisTokenStore usa o TTL do Redis como expiração dos tokens.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(cfg *config.Config) *RedisTokenStore {
	return &RedisTokenStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func key(kind, email string) string {
	return fmt.Sprintf("auth:%s:%s", kind, email)
}

func (s *RedisTokenStore) Set(ctx context.Context, kind, email, token string, ttl time.Duration) error {
	return s.client.Set(ctx, key(kind, email), token, ttl).Err()
}

func (s *RedisTokenStore) Get(ctx context.Context, kind, email string) (string, error) {
	val, err := s.client.Get(ctx, key(kind, email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, kind, email string) error {
	return s.client.Del(ctx, key(kind, email)).Err()
}

var _ TokenStore = (*RedisTokenStore)(nil)
