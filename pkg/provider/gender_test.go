package provider_test

import (
	"testing"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestInferGender(t *testing.T) {
	require.Equal(t, provider.GenderFemale, provider.InferGender("Rachel"))
	require.Equal(t, provider.GenderMale, provider.InferGender("Adam"))
	require.Equal(t, provider.GenderFemale, provider.InferGender("Bella - warm narration"))
	require.Equal(t, provider.GenderMale, provider.InferGender("george_uk"))
	require.Equal(t, provider.GenderNeutral, provider.InferGender("Sky"))
	require.Equal(t, provider.GenderNeutral, provider.InferGender(""))
}

func TestSystemJoinsSystemMessages(t *testing.T) {
	messages := []provider.Message{
		provider.SystemMessage("be brief"),
		provider.UserMessage("hi"),
		provider.SystemMessage("be kind"),
	}

	require.Equal(t, "be brief\n\nbe kind", provider.System(messages))
	require.Equal(t, "", provider.System(nil))
}
