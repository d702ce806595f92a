package config

import (
	"errors"
	"strings"

	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/elevenlabs"
	"github.com/voquill/voquill/pkg/provider/google"
	"github.com/voquill/voquill/pkg/provider/mistral"
	"github.com/voquill/voquill/pkg/provider/openai"
)

func createSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg)

	case "mistral":
		return mistral.NewSynthesizer()

	case "google":
		return googleSynthesizer(cfg)

	case "elevenlabs":
		return elevenlabsSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func openaiSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, openai.WithClient(client))
	}

	return openai.NewSynthesizer(cfg.URL, cfg.Model, options...)
}

func googleSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if cfg.URL != "" {
		options = append(options, google.WithURL(cfg.URL))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, google.WithClient(client))
	}

	return google.NewSynthesizer(cfg.Model, options...)
}

func elevenlabsSynthesizer(cfg providerConfig) (provider.Synthesizer, error) {
	var options []elevenlabs.Option

	if cfg.Token != "" {
		options = append(options, elevenlabs.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, elevenlabs.WithClient(client))
	}

	return elevenlabs.NewSynthesizer(cfg.URL, cfg.Model, options...)
}
