package mistral

import (
	"context"

	"github.com/voquill/voquill/pkg/provider"
)

var (
	_ provider.Synthesizer = (*Synthesizer)(nil)
	_ provider.Validator   = (*Synthesizer)(nil)
)

// Synthesizer rejects every call: Mistral offers no speech synthesis API.
// It exists so the TTS registry can report the provider as present but
// unsupported instead of crashing on an unknown id.
type Synthesizer struct{}

func NewSynthesizer() (*Synthesizer, error) {
	return &Synthesizer{}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	return nil, provider.Unsupported("mistral", provider.CapabilityTTS)
}

func (s *Synthesizer) ValidateConfig(ctx context.Context, config provider.Config) bool {
	return false
}
