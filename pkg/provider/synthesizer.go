package provider

import (
	"context"
)

// MaxSynthesizeInput is the longest input accepted by any supported vendor,
// in characters, not bytes. Longer input is rejected locally before a
// request is made.
const MaxSynthesizeInput = 4096

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	APIKey string

	Model string
	Voice string

	Speed *float32
	Pitch *float32

	Format string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}
