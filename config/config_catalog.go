package config

import (
	"context"

	"github.com/voquill/voquill/pkg/provider"
)

// The limiter and telemetry decorators only carry the core capability
// method, hiding the vendor client's catalog and validator interfaces.
// These wrappers re-expose them on the decorated provider, and let a
// configured models/voices list take precedence over vendor discovery.

type catalogTranscriber struct {
	provider.Transcriber

	id     string
	inner  provider.Transcriber
	models []provider.Model
}

func (p catalogTranscriber) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	if len(p.models) > 0 {
		return p.models, nil
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.ListModels(ctx, apiKey)
	}

	return nil, provider.Unsupported(p.id, provider.CapabilitySTT)
}

func (p catalogTranscriber) FallbackModels() []provider.Model {
	if len(p.models) > 0 {
		return p.models
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.FallbackModels()
	}

	return nil
}

func (p catalogTranscriber) ValidateConfig(ctx context.Context, config provider.Config) bool {
	if v, ok := p.inner.(provider.Validator); ok {
		return v.ValidateConfig(ctx, config)
	}

	return false
}

type catalogSynthesizer struct {
	provider.Synthesizer

	id     string
	inner  provider.Synthesizer
	models []provider.Model
	voices []provider.Voice
}

func (p catalogSynthesizer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	if len(p.models) > 0 {
		return p.models, nil
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.ListModels(ctx, apiKey)
	}

	return nil, provider.Unsupported(p.id, provider.CapabilityTTS)
}

func (p catalogSynthesizer) FallbackModels() []provider.Model {
	if len(p.models) > 0 {
		return p.models
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.FallbackModels()
	}

	return nil
}

func (p catalogSynthesizer) ListVoices(ctx context.Context, apiKey string) ([]provider.Voice, error) {
	if len(p.voices) > 0 {
		return p.voices, nil
	}

	if cat, ok := p.inner.(provider.VoiceCatalog); ok {
		return cat.ListVoices(ctx, apiKey)
	}

	return nil, provider.Unsupported(p.id, provider.CapabilityTTS)
}

func (p catalogSynthesizer) FallbackVoices() []provider.Voice {
	if len(p.voices) > 0 {
		return p.voices
	}

	if cat, ok := p.inner.(provider.VoiceCatalog); ok {
		return cat.FallbackVoices()
	}

	return nil
}

func (p catalogSynthesizer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	if v, ok := p.inner.(provider.Validator); ok {
		return v.ValidateConfig(ctx, config)
	}

	return false
}

type catalogCompleter struct {
	provider.Completer

	id     string
	inner  provider.Completer
	models []provider.Model
}

func (p catalogCompleter) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	if len(p.models) > 0 {
		return p.models, nil
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.ListModels(ctx, apiKey)
	}

	return nil, provider.Unsupported(p.id, provider.CapabilityLLM)
}

func (p catalogCompleter) FallbackModels() []provider.Model {
	if len(p.models) > 0 {
		return p.models
	}

	if cat, ok := p.inner.(provider.ModelCatalog); ok {
		return cat.FallbackModels()
	}

	return nil
}

func (p catalogCompleter) ValidateConfig(ctx context.Context, config provider.Config) bool {
	if v, ok := p.inner.(provider.Validator); ok {
		return v.ValidateConfig(ctx, config)
	}

	return false
}

func configuredModels(ids []string) []provider.Model {
	var result []provider.Model

	for _, id := range ids {
		result = append(result, provider.Model{
			ID:   id,
			Name: id,
		})
	}

	return result
}

func configuredVoices(ids []string) []provider.Voice {
	var result []provider.Voice

	for _, id := range ids {
		result = append(result, provider.Voice{
			ID:   id,
			Name: id,
		})
	}

	return result
}
