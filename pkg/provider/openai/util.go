package openai

import (
	"errors"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(name string, err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return provider.FromStatus(name, apierr.StatusCode, apierr.Message)
	}

	// no response reached us at all
	return provider.WrapError(provider.ErrorNetwork, name, err)
}
