package mistral

import (
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/openai"
)

var (
	_ provider.Completer    = (*Completer)(nil)
	_ provider.ModelCatalog = (*Completer)(nil)
)

type Completer struct {
	*openai.Completer
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{}

	for _, option := range options {
		option(cfg)
	}

	opts := append([]openai.Option{openai.WithName("mistral")}, cfg.options...)

	completer, err := openai.NewCompleter(cfg.endpoint(), model, opts...)

	if err != nil {
		return nil, err
	}

	return &Completer{
		Completer: completer,
	}, nil
}

func (c *Completer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "mistral-small-latest", Name: "Mistral Small", ContextWindow: 128000},
		{ID: "mistral-medium-latest", Name: "Mistral Medium", ContextWindow: 128000},
		{ID: "mistral-large-latest", Name: "Mistral Large", ContextWindow: 128000},
	}
}
