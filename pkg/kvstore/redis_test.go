package kvstore_test

import (
	"context"
	"sort"
	"testing"

	"github.com/voquill/voquill/pkg/kvstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestRedis(t *testing.T) {
	ctx := context.Background()

	server := miniredis.RunT(t)

	store := kvstore.NewRedis(server.Addr(), "voquill:")

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "model-cache:openai", "a"))
	require.NoError(t, store.Set(ctx, "model-cache:google", "b"))
	require.NoError(t, store.Set(ctx, "voice-cache:openai", "c"))

	value, ok, err := store.Get(ctx, "model-cache:openai")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a", value)

	keys, err := store.Keys(ctx, "model-cache:")
	require.NoError(t, err)

	sort.Strings(keys)
	require.Equal(t, []string{"model-cache:google", "model-cache:openai"}, keys)

	require.NoError(t, store.Remove(ctx, "model-cache:openai"))

	_, ok, err = store.Get(ctx, "model-cache:openai")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.MultiRemove(ctx, []string{"model-cache:google", "voice-cache:openai"}))

	keys, err = store.Keys(ctx, "")
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestRedisKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()

	server := miniredis.RunT(t)

	store := kvstore.NewRedis(server.Addr(), "voquill:")

	require.NoError(t, store.Set(ctx, "model-cache:openai", "a"))

	require.True(t, server.Exists("voquill:model-cache:openai"))
}
