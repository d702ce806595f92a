package google

import (
	"context"
	"encoding/base64"
	"net/url"
	"unicode/utf8"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const textToSpeechEndpoint = "https://texttospeech.googleapis.com"

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`

	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name,omitempty"`
	} `json:"voice"`

	AudioConfig struct {
		AudioEncoding string   `json:"audioEncoding"`
		SpeakingRate  *float32 `json:"speakingRate,omitempty"`
		Pitch         *float32 `json:"pitch,omitempty"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if input == "" {
		return nil, provider.NewError(provider.ErrorBadRequest, "google", "input text is empty")
	}

	if utf8.RuneCountInString(input) > provider.MaxSynthesizeInput {
		return nil, provider.NewError(provider.ErrorBadRequest, "google", "input text exceeds the vendor limit")
	}

	voice := options.Voice

	if voice == "" {
		voice = "en-US-Neural2-C"
	}

	req := synthesizeRequest{}
	req.Input.Text = input
	req.Voice.LanguageCode = voiceLanguage(voice)
	req.Voice.Name = voice
	req.AudioConfig.AudioEncoding = "MP3"
	req.AudioConfig.SpeakingRate = options.Speed
	req.AudioConfig.Pitch = options.Pitch

	endpoint := s.endpoint(textToSpeechEndpoint) + "/v1/text:synthesize?key=" + url.QueryEscape(s.key(options.APIKey))

	var resp synthesizeResponse

	if err := s.doJSON(ctx, "POST", endpoint, req, &resp); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(resp.AudioContent)

	if err != nil {
		return nil, provider.WrapError(provider.ErrorUnknown, "google", err)
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}

// voiceLanguage derives the BCP-47 language from a voice name like
// "en-US-Neural2-C". The API requires both even though the name implies it.
func voiceLanguage(voice string) string {
	parts := []rune(voice)

	if len(parts) >= 5 && parts[2] == '-' {
		return string(parts[:5])
	}

	return "en-US"
}
