package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/voquill/voquill/pkg/limiter"
	"github.com/voquill/voquill/pkg/provider"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingCompleter struct {
	calls int
}

func (c *countingCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls++

	return &provider.Completion{
		Message: &provider.Message{Role: provider.MessageRoleAssistant, Content: "ok"},
	}, nil
}

func TestCompleterDelegates(t *testing.T) {
	ctx := context.Background()

	inner := &countingCompleter{}

	limited := limiter.NewCompleter(rate.NewLimiter(rate.Inf, 1), inner)

	completion, err := limited.Complete(ctx, []provider.Message{provider.UserMessage("hi")}, nil)
	require.NoError(t, err)
	require.Equal(t, "ok", completion.Message.Content)
	require.Equal(t, 1, inner.calls)
}

func TestCompleterThrottles(t *testing.T) {
	ctx := context.Background()

	inner := &countingCompleter{}

	// one request per 50ms, burst of one
	limited := limiter.NewCompleter(rate.NewLimiter(rate.Every(50*time.Millisecond), 1), inner)

	start := time.Now()

	for range 3 {
		_, err := limited.Complete(ctx, []provider.Message{provider.UserMessage("hi")}, nil)
		require.NoError(t, err)
	}

	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	require.Equal(t, 3, inner.calls)
}

func TestNilLimiterPassesThrough(t *testing.T) {
	ctx := context.Background()

	inner := &countingCompleter{}

	limited := limiter.NewCompleter(nil, inner)

	_, err := limited.Complete(ctx, []provider.Message{provider.UserMessage("hi")}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)
}
