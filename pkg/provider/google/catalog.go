package google

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/voquill/voquill/pkg/provider"
)

var (
	_ provider.ModelCatalog = (*Completer)(nil)
	_ provider.ModelCatalog = (*Transcriber)(nil)
	_ provider.ModelCatalog = (*Synthesizer)(nil)

	_ provider.VoiceCatalog = (*Synthesizer)(nil)

	_ provider.Validator = (*Completer)(nil)
	_ provider.Validator = (*Transcriber)(nil)
	_ provider.Validator = (*Synthesizer)(nil)
)

const generativeLanguageEndpoint = "https://generativelanguage.googleapis.com"

type listModelsResponse struct {
	Models []struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Description string `json:"description"`

		InputTokenLimit  int `json:"inputTokenLimit"`
		OutputTokenLimit int `json:"outputTokenLimit"`

		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func (c *Completer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	endpoint := c.endpoint(generativeLanguageEndpoint) + "/v1beta/models?key=" + url.QueryEscape(c.key(apiKey))

	var resp listModelsResponse

	if err := c.doJSON(ctx, "GET", endpoint, nil, &resp); err != nil {
		return nil, err
	}

	var result []provider.Model

	for _, m := range resp.Models {
		id := strings.TrimPrefix(m.Name, "models/")

		if !strings.HasPrefix(id, "gemini") {
			continue
		}

		if !slices.Contains(m.SupportedGenerationMethods, "generateContent") {
			continue
		}

		result = append(result, provider.Model{
			ID:   id,
			Name: m.DisplayName,

			Description: m.Description,

			ContextWindow:   m.InputTokenLimit,
			MaxOutputTokens: m.OutputTokenLimit,
		})
	}

	return result, nil
}

func (c *Completer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", ContextWindow: 1048576, MaxOutputTokens: 65536},
		{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", ContextWindow: 1048576, MaxOutputTokens: 65536},
		{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", ContextWindow: 1048576, MaxOutputTokens: 8192},
	}
}

func (c *Completer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	_, err := c.ListModels(ctx, config.APIKey)

	return err == nil
}

// Cloud Speech has no model listing endpoint, the recognizer models are a
// fixed part of the API.

func (t *Transcriber) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return t.FallbackModels(), nil
}

func (t *Transcriber) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "latest_long", Name: "Latest Long", Description: "Long-form audio such as media or conversations"},
		{ID: "latest_short", Name: "Latest Short", Description: "Short utterances and commands"},
		{ID: "telephony", Name: "Telephony"},
	}
}

func (t *Transcriber) ValidateConfig(ctx context.Context, config provider.Config) bool {
	input := provider.File{
		Name: "probe.wav",

		// RIFF header only, enough for an auth check without quota cost
		Content:     []byte("RIFF\x00\x00\x00\x00WAVE"),
		ContentType: "audio/wav",
	}

	_, err := t.Transcribe(ctx, input, &provider.TranscribeOptions{APIKey: config.APIKey})

	return err == nil || provider.IsBadRequest(err)
}

func (s *Synthesizer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	return s.FallbackModels(), nil
}

func (s *Synthesizer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "neural2", Name: "Neural2", Description: "Neural text-to-speech voices"},
		{ID: "wavenet", Name: "WaveNet"},
		{ID: "standard", Name: "Standard"},
	}
}

type listVoicesResponse struct {
	Voices []struct {
		Name          string   `json:"name"`
		LanguageCodes []string `json:"languageCodes"`
		SSMLGender    string   `json:"ssmlGender"`
	} `json:"voices"`
}

func (s *Synthesizer) ListVoices(ctx context.Context, apiKey string) ([]provider.Voice, error) {
	endpoint := s.endpoint(textToSpeechEndpoint) + "/v1/voices?key=" + url.QueryEscape(s.key(apiKey))

	var resp listVoicesResponse

	if err := s.doJSON(ctx, "GET", endpoint, nil, &resp); err != nil {
		return nil, err
	}

	var result []provider.Voice

	for _, v := range resp.Voices {
		voice := provider.Voice{
			ID:   v.Name,
			Name: v.Name,

			Gender: provider.GenderNeutral,
		}

		if len(v.LanguageCodes) > 0 {
			voice.Language = v.LanguageCodes[0]
		}

		switch v.SSMLGender {
		case "MALE":
			voice.Gender = provider.GenderMale

		case "FEMALE":
			voice.Gender = provider.GenderFemale
		}

		result = append(result, voice)
	}

	return result, nil
}

func (s *Synthesizer) FallbackVoices() []provider.Voice {
	return []provider.Voice{
		{ID: "en-US-Neural2-C", Name: "en-US-Neural2-C", Gender: provider.GenderFemale, Language: "en-US"},
		{ID: "en-US-Neural2-D", Name: "en-US-Neural2-D", Gender: provider.GenderMale, Language: "en-US"},
		{ID: "en-GB-Neural2-A", Name: "en-GB-Neural2-A", Gender: provider.GenderFemale, Language: "en-GB"},
		{ID: "de-DE-Neural2-B", Name: "de-DE-Neural2-B", Gender: provider.GenderMale, Language: "de-DE"},
	}
}

func (s *Synthesizer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	_, err := s.ListVoices(ctx, config.APIKey)

	return err == nil
}
