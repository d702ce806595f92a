package provider

import (
	"context"
)

type Transcriber interface {
	Transcribe(ctx context.Context, input File, options *TranscribeOptions) (*Transcription, error)
}

type TranscribeOptions struct {
	APIKey string

	Model    string
	Language string

	Prompt string
}

type Transcription struct {
	ID    string
	Model string

	Text     string
	Language string

	Duration float64
}
