package provider_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   provider.ErrorKind
	}{
		{401, provider.ErrorAuth},
		{403, provider.ErrorAuth},
		{429, provider.ErrorRateLimited},
		{400, provider.ErrorBadRequest},
		{404, provider.ErrorBadRequest},
		{422, provider.ErrorBadRequest},
		{500, provider.ErrorUnknown},
		{503, provider.ErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := provider.FromStatus("acme", tt.status, "boom")

			require.Equal(t, tt.kind, err.Kind)
			require.Equal(t, tt.status, err.Status)
			require.Equal(t, "acme", err.Provider)
			require.Contains(t, err.Error(), "boom")
		})
	}
}

func TestFromStatusDefaultsMessage(t *testing.T) {
	err := provider.FromStatus("acme", 401, "")

	require.Contains(t, err.Error(), "Unauthorized")
}

func TestKindOf(t *testing.T) {
	require.Equal(t, provider.ErrorAuth, provider.KindOf(provider.NewError(provider.ErrorAuth, "acme", "nope")))
	require.Equal(t, provider.ErrorUnknown, provider.KindOf(errors.New("plain")))
	require.Equal(t, provider.ErrorUnknown, provider.KindOf(nil))

	wrapped := fmt.Errorf("outer: %w", provider.NewError(provider.ErrorRateLimited, "acme", "slow down"))
	require.Equal(t, provider.ErrorRateLimited, provider.KindOf(wrapped))
	require.True(t, provider.IsRateLimited(wrapped))
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := provider.WrapError(provider.ErrorNetwork, "acme", cause)

	require.True(t, provider.IsNetwork(err))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection refused")
}

func TestUnsupported(t *testing.T) {
	err := provider.Unsupported("mistral", provider.CapabilityTTS)

	require.True(t, provider.IsUnsupported(err))
	require.Contains(t, err.Error(), "mistral")
}
