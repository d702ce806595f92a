package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*Redis)(nil)

// Redis backs the store for server deployments sharing one catalog cache.
type Redis struct {
	client *redis.Client

	prefix string
}

func NewRedis(address, prefix string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr: address,
		}),

		prefix: prefix,
	}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *Redis) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := r.client.Scan(ctx, 0, r.prefix+prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(r.prefix):])
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

func (r *Redis) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))

	for i, key := range keys {
		prefixed[i] = r.prefix + key
	}

	return r.client.Del(ctx, prefixed...).Err()
}
