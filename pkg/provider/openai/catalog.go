package openai

import (
	"context"
	"strings"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var (
	_ provider.ModelCatalog = (*Transcriber)(nil)
	_ provider.ModelCatalog = (*Synthesizer)(nil)
	_ provider.ModelCatalog = (*Completer)(nil)

	_ provider.VoiceCatalog = (*Synthesizer)(nil)

	_ provider.Validator = (*Transcriber)(nil)
	_ provider.Validator = (*Synthesizer)(nil)
	_ provider.Validator = (*Completer)(nil)
)

// listModels fetches the vendor's full catalog and keeps the entries relevant
// to one capability. The raw list is replaced wholesale, never merged.
func (c *Config) listModels(ctx context.Context, apiKey string, keep func(id string) bool) ([]provider.Model, error) {
	service := openai.NewModelService(c.Options()...)

	page, err := service.List(ctx, c.CallOptions(apiKey)...)

	if err != nil {
		return nil, convertError(c.name, err)
	}

	var result []provider.Model

	for _, m := range page.Data {
		if !keep(m.ID) {
			continue
		}

		result = append(result, provider.Model{
			ID:   m.ID,
			Name: m.ID,
		})
	}

	return result, nil
}

func (c *Config) validate(ctx context.Context, config provider.Config) bool {
	_, err := c.listModels(ctx, config.APIKey, func(string) bool { return true })

	return err == nil
}

func isTranscribeModel(id string) bool {
	return strings.HasPrefix(id, "whisper") || strings.Contains(id, "transcribe") || strings.HasPrefix(id, "voxtral")
}

func isSpeechModel(id string) bool {
	return strings.HasPrefix(id, "tts") || strings.Contains(id, "-tts")
}

func isChatModel(id string) bool {
	if isTranscribeModel(id) || isSpeechModel(id) {
		return false
	}

	prefixes := []string{"gpt-", "o1", "o3", "o4", "chatgpt", "mistral", "open-mistral", "open-mixtral", "ministral", "magistral", "codestral"}

	for _, prefix := range prefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}

	return false
}

func (t *Transcriber) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return t.listModels(ctx, apiKey, isTranscribeModel)
}

func (t *Transcriber) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "whisper-1", Name: "Whisper v2", Description: "General-purpose speech recognition"},
		{ID: "whisper-large-v3", Name: "Whisper Large v3"},
		{ID: "whisper-large-v2", Name: "Whisper Large v2"},
	}
}

func (t *Transcriber) ValidateConfig(ctx context.Context, config provider.Config) bool {
	return t.validate(ctx, config)
}

func (s *Synthesizer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return s.listModels(ctx, apiKey, isSpeechModel)
}

func (s *Synthesizer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "tts-1", Name: "TTS-1", Description: "Low-latency speech synthesis"},
		{ID: "tts-1-hd", Name: "TTS-1 HD", Description: "Higher quality speech synthesis"},
		{ID: "gpt-4o-mini-tts", Name: "GPT-4o mini TTS"},
	}
}

// ListVoices returns the fixed voice set. OpenAI has no voice listing
// endpoint, the catalog is part of the API contract.
func (s *Synthesizer) ListVoices(ctx context.Context, apiKey string) ([]provider.Voice, error) {
	return s.FallbackVoices(), nil
}

func (s *Synthesizer) FallbackVoices() []provider.Voice {
	return []provider.Voice{
		{ID: "alloy", Name: "Alloy", Gender: provider.GenderNeutral},
		{ID: "echo", Name: "Echo", Gender: provider.GenderMale},
		{ID: "fable", Name: "Fable", Gender: provider.GenderNeutral},
		{ID: "onyx", Name: "Onyx", Gender: provider.GenderMale},
		{ID: "nova", Name: "Nova", Gender: provider.GenderFemale},
		{ID: "shimmer", Name: "Shimmer", Gender: provider.GenderFemale},
	}
}

func (s *Synthesizer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	return s.validate(ctx, config)
}

func (c *Completer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return c.listModels(ctx, apiKey, isChatModel)
}

func (c *Completer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "gpt-4o", Name: "GPT-4o", ContextWindow: 128000, MaxOutputTokens: 16384},
		{ID: "gpt-4o-mini", Name: "GPT-4o mini", ContextWindow: 128000, MaxOutputTokens: 16384},
		{ID: "gpt-4.1", Name: "GPT-4.1", ContextWindow: 1047576, MaxOutputTokens: 32768},
	}
}

func (c *Completer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	return c.validate(ctx, config)
}
