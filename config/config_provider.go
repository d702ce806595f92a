package config

import (
	"errors"
	"strings"

	"github.com/voquill/voquill/pkg/limiter"
	"github.com/voquill/voquill/pkg/otel"
	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/registry"
)

type providerConfig struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`

	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Capabilities []string `yaml:"capabilities"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Models []string `yaml:"models"`
	Voices []string `yaml:"voices"`

	Limit *int `yaml:"limit"`

	Proxy *proxyConfig `yaml:"proxy"`
}

func (cfg providerConfig) id() string {
	if cfg.ID != "" {
		return cfg.ID
	}

	return strings.ToLower(cfg.Type)
}

func (cfg providerConfig) name() string {
	if cfg.Name != "" {
		return cfg.Name
	}

	return cfg.id()
}

func (cfg providerConfig) descriptor(capability provider.Capability) registry.Descriptor {
	return registry.Descriptor{
		ID:   cfg.id(),
		Name: cfg.name(),

		Description: cfg.Description,

		RequiresAPIKey: cfg.Token == "",

		Capability: capability,
	}
}

func (cfg providerConfig) capabilities() ([]provider.Capability, error) {
	if len(cfg.Capabilities) == 0 {
		return defaultCapabilities(cfg.Type)
	}

	var result []provider.Capability

	for _, val := range cfg.Capabilities {
		switch strings.ToLower(val) {
		case string(provider.CapabilitySTT):
			result = append(result, provider.CapabilitySTT)

		case string(provider.CapabilityTTS):
			result = append(result, provider.CapabilityTTS)

		case string(provider.CapabilityLLM):
			result = append(result, provider.CapabilityLLM)

		default:
			return nil, errors.New("invalid capability: " + val)
		}
	}

	return result, nil
}

func defaultCapabilities(providerType string) ([]provider.Capability, error) {
	switch strings.ToLower(providerType) {
	case "openai", "openai-compatible", "google":
		return []provider.Capability{provider.CapabilitySTT, provider.CapabilityTTS, provider.CapabilityLLM}, nil

	case "mistral":
		return []provider.Capability{provider.CapabilitySTT, provider.CapabilityLLM}, nil

	case "anthropic":
		return []provider.Capability{provider.CapabilityLLM}, nil

	case "elevenlabs":
		return []provider.Capability{provider.CapabilityTTS}, nil

	default:
		return nil, errors.New("invalid provider type: " + providerType)
	}
}

func (c *Config) registerProviders(file *configFile) error {
	var stt []func(*registry.STT)
	var tts []func(*registry.TTS)
	var llm []func(*registry.LLM)

	for _, cfg := range file.Providers {
		capabilities, err := cfg.capabilities()

		if err != nil {
			return err
		}

		for _, capability := range capabilities {
			desc := cfg.descriptor(capability)

			switch capability {
			case provider.CapabilitySTT:
				p, err := createTranscriber(cfg)

				if err != nil {
					return err
				}

				p = wrapTranscriber(cfg, p)

				stt = append(stt, func(r *registry.STT) {
					r.Register(desc, p)
				})

			case provider.CapabilityTTS:
				p, err := createSynthesizer(cfg)

				if err != nil {
					return err
				}

				p = wrapSynthesizer(cfg, p)

				tts = append(tts, func(r *registry.TTS) {
					r.Register(desc, p)
				})

			case provider.CapabilityLLM:
				p, err := createCompleter(cfg)

				if err != nil {
					return err
				}

				p = wrapCompleter(cfg, p)

				llm = append(llm, func(r *registry.LLM) {
					r.Register(desc, p)
				})
			}
		}
	}

	c.STT = registry.NewSTT(func(r *registry.STT) {
		registerDefaultTranscribers(r)

		for _, register := range stt {
			register(r)
		}
	})

	c.TTS = registry.NewTTS(func(r *registry.TTS) {
		registerDefaultSynthesizers(r)

		for _, register := range tts {
			register(r)
		}
	})

	c.LLM = registry.NewLLM(func(r *registry.LLM) {
		registerDefaultCompleters(r)

		for _, register := range llm {
			register(r)
		}
	})

	return nil
}

func wrapTranscriber(cfg providerConfig, p provider.Transcriber) provider.Transcriber {
	inner := p

	if l := createLimiter(cfg.Limit); l != nil {
		p = limiter.NewTranscriber(l, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewTranscriber(cfg.id(), cfg.Model, p)
	}

	return catalogTranscriber{
		Transcriber: p,

		id:     cfg.id(),
		inner:  inner,
		models: configuredModels(cfg.Models),
	}
}

func wrapSynthesizer(cfg providerConfig, p provider.Synthesizer) provider.Synthesizer {
	inner := p

	if l := createLimiter(cfg.Limit); l != nil {
		p = limiter.NewSynthesizer(l, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewSynthesizer(cfg.id(), cfg.Model, p)
	}

	return catalogSynthesizer{
		Synthesizer: p,

		id:     cfg.id(),
		inner:  inner,
		models: configuredModels(cfg.Models),
		voices: configuredVoices(cfg.Voices),
	}
}

func wrapCompleter(cfg providerConfig, p provider.Completer) provider.Completer {
	inner := p

	if l := createLimiter(cfg.Limit); l != nil {
		p = limiter.NewCompleter(l, p)
	}

	if otel.EnableTelemetry {
		p = otel.NewCompleter(cfg.id(), cfg.Model, p)
	}

	return catalogCompleter{
		Completer: p,

		id:     cfg.id(),
		inner:  inner,
		models: configuredModels(cfg.Models),
	}
}
