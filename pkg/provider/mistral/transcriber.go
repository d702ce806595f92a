package mistral

import (
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/openai"
)

var (
	_ provider.Transcriber  = (*Transcriber)(nil)
	_ provider.ModelCatalog = (*Transcriber)(nil)
)

type Transcriber struct {
	*openai.Transcriber
}

func NewTranscriber(model string, options ...Option) (*Transcriber, error) {
	cfg := &Config{}

	for _, option := range options {
		option(cfg)
	}

	opts := append([]openai.Option{openai.WithName("mistral")}, cfg.options...)

	transcriber, err := openai.NewTranscriber(cfg.endpoint(), model, opts...)

	if err != nil {
		return nil, err
	}

	return &Transcriber{
		Transcriber: transcriber,
	}, nil
}

func (t *Transcriber) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "voxtral-mini-latest", Name: "Voxtral Mini", Description: "Low-latency speech recognition"},
		{ID: "voxtral-small-latest", Name: "Voxtral Small"},
	}
}
