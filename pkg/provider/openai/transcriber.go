package openai

import (
	"bytes"
	"context"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Transcriber = (*Transcriber)(nil)

type Transcriber struct {
	*Config
	transcriptions openai.AudioTranscriptionService
}

func NewTranscriber(url, model string, options ...Option) (*Transcriber, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	cfg.normalize()

	return &Transcriber{
		Config:         cfg,
		transcriptions: openai.NewAudioTranscriptionService(cfg.Options()...),
	}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	if options == nil {
		options = new(provider.TranscribeOptions)
	}

	if len(input.Content) == 0 {
		return nil, provider.NewError(provider.ErrorBadRequest, t.name, "audio input is empty")
	}

	model := t.model

	if options.Model != "" {
		model = options.Model
	}

	params := openai.AudioTranscriptionNewParams{
		Model: model,

		File: openai.File(bytes.NewReader(input.Content), input.Name, input.ContentType),

		ResponseFormat: openai.AudioResponseFormatJSON,
	}

	if options.Language != "" {
		params.Language = openai.String(options.Language)
	}

	if options.Prompt != "" {
		params.Prompt = openai.String(options.Prompt)
	}

	transcription, err := t.transcriptions.New(ctx, params, t.CallOptions(options.APIKey)...)

	if err != nil {
		return nil, convertError(t.name, err)
	}

	return &provider.Transcription{
		ID:    uuid.NewString(),
		Model: model,

		Text:     transcription.Text,
		Language: options.Language,
	}, nil
}
