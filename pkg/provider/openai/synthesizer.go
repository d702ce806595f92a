package openai

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	cfg.normalize()

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if input == "" {
		return nil, provider.NewError(provider.ErrorBadRequest, s.name, "input text is empty")
	}

	if utf8.RuneCountInString(input) > provider.MaxSynthesizeInput {
		return nil, provider.NewError(provider.ErrorBadRequest, s.name, "input text exceeds the vendor limit")
	}

	model := s.model

	if options.Model != "" {
		model = options.Model
	}

	voice := options.Voice

	if voice == "" {
		voice = "alloy"
	}

	params := openai.AudioSpeechNewParams{
		Model: model,
		Input: input,

		Voice: openai.AudioSpeechNewParamsVoiceUnion{OfString: openai.String(voice)},

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}

	if options.Speed != nil {
		params.Speed = openai.Float(float64(*options.Speed))
	}

	result, err := s.speech.New(ctx, params, s.CallOptions(options.APIKey)...)

	if err != nil {
		return nil, convertError(s.name, err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, provider.WrapError(provider.ErrorNetwork, s.name, err)
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: model,

		Content:     data,
		ContentType: "audio/mpeg",
	}, nil
}
