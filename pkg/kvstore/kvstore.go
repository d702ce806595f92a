package kvstore

import (
	"context"
)

// Store is the process-local key-value collaborator used for cache
// persistence. Implementations may fail on any call; callers are expected
// to degrade rather than crash.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	Keys(ctx context.Context, prefix string) ([]string, error)
	MultiRemove(ctx context.Context, keys []string) error
}
