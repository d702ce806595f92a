package google

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Transcriber = (*Transcriber)(nil)

const speechEndpoint = "https://speech.googleapis.com"

type Transcriber struct {
	*Config
}

func NewTranscriber(model string, options ...Option) (*Transcriber, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Transcriber{
		Config: cfg,
	}, nil
}

type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	LanguageCode string `json:"languageCode"`
	Model        string `json:"model,omitempty"`

	EnableAutomaticPunctuation bool `json:"enableAutomaticPunctuation,omitempty"`
}

type recognizeAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

func (t *Transcriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	if options == nil {
		options = new(provider.TranscribeOptions)
	}

	if len(input.Content) == 0 {
		return nil, provider.NewError(provider.ErrorBadRequest, "google", "audio input is empty")
	}

	language := options.Language

	if language == "" {
		language = "en-US"
	}

	model := t.model

	if options.Model != "" {
		model = options.Model
	}

	req := recognizeRequest{
		Config: recognizeConfig{
			LanguageCode: language,
			Model:        model,

			EnableAutomaticPunctuation: true,
		},

		Audio: recognizeAudio{
			Content: base64.StdEncoding.EncodeToString(input.Content),
		},
	}

	endpoint := t.endpoint(speechEndpoint) + "/v1/speech:recognize?key=" + url.QueryEscape(t.key(options.APIKey))

	var resp recognizeResponse

	if err := t.doJSON(ctx, "POST", endpoint, req, &resp); err != nil {
		return nil, err
	}

	var parts []string

	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}

		parts = append(parts, result.Alternatives[0].Transcript)
	}

	return &provider.Transcription{
		ID:    uuid.NewString(),
		Model: model,

		Text:     strings.Join(parts, " "),
		Language: language,
	}, nil
}
