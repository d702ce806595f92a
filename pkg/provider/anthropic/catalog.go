package anthropic

import (
	"context"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var (
	_ provider.ModelCatalog = (*Completer)(nil)
	_ provider.Validator    = (*Completer)(nil)
)

func (c *Completer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	service := anthropic.NewModelService(c.Options()...)

	page, err := service.List(ctx, anthropic.ModelListParams{}, c.CallOptions(apiKey)...)

	if err != nil {
		return nil, convertError(err)
	}

	var result []provider.Model

	for _, m := range page.Data {
		result = append(result, provider.Model{
			ID:   m.ID,
			Name: m.DisplayName,
		})
	}

	return result, nil
}

func (c *Completer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "claude-sonnet-4-5", Name: "Claude Sonnet 4.5", ContextWindow: 200000, MaxOutputTokens: 64000},
		{ID: "claude-opus-4-1", Name: "Claude Opus 4.1", ContextWindow: 200000, MaxOutputTokens: 32000},
		{ID: "claude-haiku-4-5", Name: "Claude Haiku 4.5", ContextWindow: 200000, MaxOutputTokens: 64000},
	}
}

func (c *Completer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	_, err := c.ListModels(ctx, config.APIKey)

	return err == nil
}
