package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Storage backend for headless deployments (CI bots, shared
// worker fleets) where the session must outlive any one host. Keys are
// namespaced under a prefix so several clients can share one instance.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	// Storage is a synchronous port; each call gets its own bounded context.
	timeout time.Duration
}

// RedisOptions groups construction parameters for the Redis backend.
type RedisOptions struct {
	Client redis.UniversalClient
	Prefix string        // defaults to "streamwave:session:"
	TTL    time.Duration // 0 means keys never expire
}

const defaultRedisTimeout = 5 * time.Second

// NewRedis creates a Redis-backed store.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.Client == nil {
		return nil, errors.New("redis client is required")
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "streamwave:session:"
	}
	return &Redis{
		client:  opts.Client,
		prefix:  prefix,
		ttl:     opts.TTL,
		timeout: defaultRedisTimeout,
	}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

func (r *Redis) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
