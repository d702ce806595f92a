package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// Rachel, the vendor's default voice.
const defaultVoice = "21m00Tcm4TlvDq8ikWAM"

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
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
	Text    string `json:"text"`
	ModelID string `json:"model_id"`

	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`

	Speed *float32 `json:"speed,omitempty"`
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if input == "" {
		return nil, provider.NewError(provider.ErrorBadRequest, "elevenlabs", "input text is empty")
	}

	if utf8.RuneCountInString(input) > provider.MaxSynthesizeInput {
		return nil, provider.NewError(provider.ErrorBadRequest, "elevenlabs", "input text exceeds the vendor limit")
	}

	model := s.model

	if options.Model != "" {
		model = options.Model
	}

	if model == "" {
		model = "eleven_multilingual_v2"
	}

	voice := options.Voice

	if voice == "" {
		voice = defaultVoice
	}

	body := synthesizeRequest{
		Text:    input,
		ModelID: model,
	}

	if options.Speed != nil {
		body.VoiceSettings = &voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,

			Speed: options.Speed,
		}
	}

	payload, _ := json.Marshal(body)

	format := options.Format

	if format == "" {
		format = "mp3_44100_128"
	}

	endpoint := s.endpoint() + "/v1/text-to-speech/" + voice + "?output_format=" + format

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))

	if err != nil {
		return nil, provider.WrapError(provider.ErrorBadRequest, "elevenlabs", err)
	}

	req.Header.Set("xi-api-key", s.key(options.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient().Do(req)

	if err != nil {
		return nil, provider.WrapError(provider.ErrorNetwork, "elevenlabs", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, convertStatus(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, provider.WrapError(provider.ErrorNetwork, "elevenlabs", err)
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: model,

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}

func convertStatus(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var detail struct {
		Detail struct {
			Message string `json:"message"`
		} `json:"detail"`
	}

	message := ""

	if err := json.Unmarshal(data, &detail); err == nil {
		message = detail.Detail.Message
	}

	return provider.FromStatus("elevenlabs", resp.StatusCode, message)
}
