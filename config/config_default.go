package config

import (
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/anthropic"
	"github.com/voquill/voquill/pkg/provider/elevenlabs"
	"github.com/voquill/voquill/pkg/provider/google"
	"github.com/voquill/voquill/pkg/provider/mistral"
	"github.com/voquill/voquill/pkg/provider/openai"
	"github.com/voquill/voquill/pkg/registry"
)

// The built-in providers carry no credentials. Callers pass an API key per
// request, so every descriptor reports RequiresAPIKey.

func registerDefaultTranscribers(r *registry.STT) {
	if p, err := openai.NewTranscriber("", "whisper-1"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "openai",
			Name: "OpenAI",

			Description: "Whisper speech recognition",

			RequiresAPIKey: true,

			Capability: provider.CapabilitySTT,
		}, p)
	}

	if p, err := mistral.NewTranscriber("voxtral-mini-latest"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "mistral",
			Name: "Mistral",

			Description: "Voxtral speech recognition",

			RequiresAPIKey: true,

			Capability: provider.CapabilitySTT,
		}, p)
	}

	if p, err := google.NewTranscriber("latest_long"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "google",
			Name: "Google",

			Description: "Cloud Speech-to-Text",

			RequiresAPIKey: true,

			Capability: provider.CapabilitySTT,
		}, p)
	}
}

func registerDefaultSynthesizers(r *registry.TTS) {
	if p, err := openai.NewSynthesizer("", "gpt-4o-mini-tts"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "openai",
			Name: "OpenAI",

			Description: "OpenAI speech synthesis",

			RequiresAPIKey: true,

			Capability: provider.CapabilityTTS,
		}, p)
	}

	if p, err := google.NewSynthesizer("neural2"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "google",
			Name: "Google",

			Description: "Cloud Text-to-Speech",

			RequiresAPIKey: true,

			Capability: provider.CapabilityTTS,
		}, p)
	}

	if p, err := elevenlabs.NewSynthesizer("", ""); err == nil {
		r.Register(registry.Descriptor{
			ID:   "elevenlabs",
			Name: "ElevenLabs",

			Description: "ElevenLabs speech synthesis",

			RequiresAPIKey: true,

			Capability: provider.CapabilityTTS,
		}, p)
	}

	// registered so the id resolves and fails with a typed unsupported error
	if p, err := mistral.NewSynthesizer(); err == nil {
		r.Register(registry.Descriptor{
			ID:   "mistral",
			Name: "Mistral",

			Description: "No speech synthesis available",

			RequiresAPIKey: true,

			Capability: provider.CapabilityTTS,
		}, p)
	}
}

func registerDefaultCompleters(r *registry.LLM) {
	if p, err := openai.NewCompleter("", "gpt-4o-mini"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "openai",
			Name: "OpenAI",

			Description: "GPT chat completion",

			RequiresAPIKey: true,

			Capability: provider.CapabilityLLM,
		}, p)
	}

	if p, err := anthropic.NewCompleter("", "claude-sonnet-4-5"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "anthropic",
			Name: "Anthropic",

			Description: "Claude chat completion",

			RequiresAPIKey: true,

			Capability: provider.CapabilityLLM,
		}, p)
	}

	if p, err := google.NewCompleter("gemini-2.5-flash"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "google",
			Name: "Google",

			Description: "Gemini chat completion",

			RequiresAPIKey: true,

			Capability: provider.CapabilityLLM,
		}, p)
	}

	if p, err := mistral.NewCompleter("mistral-small-latest"); err == nil {
		r.Register(registry.Descriptor{
			ID:   "mistral",
			Name: "Mistral",

			Description: "Mistral chat completion",

			RequiresAPIKey: true,

			Capability: provider.CapabilityLLM,
		}, p)
	}
}
