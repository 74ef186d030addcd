package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"campushub/internal/config"
)

// redisStorage keeps values as plain string keys without expiry.
type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisClient returns a configured Redis client after a successful ping.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewRedis returns a Store on top of client with every key namespaced by prefix.
func NewRedis(client *redis.Client, prefix string) Store {
	return &redisStorage{client: client, prefix: prefix}
}

func (r *redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (r *redisStorage) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *redisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
