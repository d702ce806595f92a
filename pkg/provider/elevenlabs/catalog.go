package elevenlabs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/voquill/voquill/pkg/provider"
)

var (
	_ provider.ModelCatalog = (*Synthesizer)(nil)
	_ provider.VoiceCatalog = (*Synthesizer)(nil)
	_ provider.Validator    = (*Synthesizer)(nil)
)

func (s *Synthesizer) get(ctx context.Context, path, apiKey string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.endpoint()+path, nil)

	if err != nil {
		return provider.WrapError(provider.ErrorBadRequest, "elevenlabs", err)
	}

	req.Header.Set("xi-api-key", s.key(apiKey))

	resp, err := s.httpClient().Do(req)

	if err != nil {
		return provider.WrapError(provider.ErrorNetwork, "elevenlabs", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return convertStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return provider.WrapError(provider.ErrorUnknown, "elevenlabs", err)
	}

	return nil
}

func (s *Synthesizer) ListModels(ctx context.Context, apiKey string) ([]provider.Model, error) {
	var models []struct {
		ModelID     string `json:"model_id"`
		Name        string `json:"name"`
		Description string `json:"description"`

		CanDoTextToSpeech bool `json:"can_do_text_to_speech"`

		Languages []struct {
			LanguageID string `json:"language_id"`
		} `json:"languages"`
	}

	if err := s.get(ctx, "/v1/models", apiKey, &models); err != nil {
		return nil, err
	}

	var result []provider.Model

	for _, m := range models {
		if !m.CanDoTextToSpeech {
			continue
		}

		model := provider.Model{
			ID:   m.ModelID,
			Name: m.Name,

			Description: m.Description,
		}

		for _, l := range m.Languages {
			model.Languages = append(model.Languages, l.LanguageID)
		}

		result = append(result, model)
	}

	return result, nil
}

func (s *Synthesizer) FallbackModels() []provider.Model {
	return []provider.Model{
		{ID: "eleven_multilingual_v2", Name: "Eleven Multilingual v2", Description: "High quality, 29 languages"},
		{ID: "eleven_turbo_v2_5", Name: "Eleven Turbo v2.5", Description: "Low latency"},
		{ID: "eleven_flash_v2_5", Name: "Eleven Flash v2.5", Description: "Lowest latency"},
	}
}

func (s *Synthesizer) ListVoices(ctx context.Context, apiKey string) ([]provider.Voice, error) {
	var resp struct {
		Voices []struct {
			VoiceID string `json:"voice_id"`
			Name    string `json:"name"`

			Labels struct {
				Gender      string `json:"gender"`
				Accent      string `json:"accent"`
				Description string `json:"description"`
			} `json:"labels"`

			PreviewURL string `json:"preview_url"`
		} `json:"voices"`
	}

	if err := s.get(ctx, "/v1/voices", apiKey, &resp); err != nil {
		return nil, err
	}

	var result []provider.Voice

	for _, v := range resp.Voices {
		voice := provider.Voice{
			ID:   v.VoiceID,
			Name: v.Name,

			Description: v.Labels.Description,
			PreviewURL:  v.PreviewURL,
		}

		switch v.Labels.Gender {
		case "male":
			voice.Gender = provider.GenderMale

		case "female":
			voice.Gender = provider.GenderFemale

		default:
			voice.Gender = provider.InferGender(v.Name)
		}

		result = append(result, voice)
	}

	return result, nil
}

func (s *Synthesizer) FallbackVoices() []provider.Voice {
	return []provider.Voice{
		{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Gender: provider.GenderFemale, Language: "en"},
		{ID: "pNInz6obpgDQGcFmaJgB", Name: "Adam", Gender: provider.GenderMale, Language: "en"},
		{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella", Gender: provider.GenderFemale, Language: "en"},
		{ID: "ErXwobaYiN019PkySvjV", Name: "Antoni", Gender: provider.GenderMale, Language: "en"},
	}
}

func (s *Synthesizer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	_, err := s.ListVoices(ctx, config.APIKey)

	return err == nil
}
