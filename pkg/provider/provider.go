package provider

import (
	"context"
)

type Capability string

const (
	CapabilitySTT Capability = "stt"
	CapabilityTTS Capability = "tts"
	CapabilityLLM Capability = "llm"
)

// Model is one selectable model of a provider, normalized across vendors.
type Model struct {
	ID   string
	Name string

	Description string

	ContextWindow   int
	MaxOutputTokens int

	Languages []string
}

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// Voice is one selectable voice of a TTS provider.
type Voice struct {
	ID   string
	Name string

	Gender   Gender
	Language string

	Description string
	PreviewURL  string
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Config carries per-call credentials and connection overrides. Clients hold
// no credentials of their own beyond an optional configured default token.
type Config struct {
	APIKey string
	URL    string
}

// Validator is a lightweight reachability/auth probe. It never returns an
// error: any failure collapses to false.
type Validator interface {
	ValidateConfig(ctx context.Context, config Config) bool
}

// ModelCatalog lists a provider's live models and its compiled-in fallback.
// The fallback must never be empty.
type ModelCatalog interface {
	ListModels(ctx context.Context, apiKey string) ([]Model, error)
	FallbackModels() []Model
}

// VoiceCatalog is the voice counterpart for TTS-capable providers.
type VoiceCatalog interface {
	ListVoices(ctx context.Context, apiKey string) ([]Voice, error)
	FallbackVoices() []Voice
}
