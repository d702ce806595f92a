package config

import (
	"errors"
	"strings"

	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/google"
	"github.com/voquill/voquill/pkg/provider/mistral"
	"github.com/voquill/voquill/pkg/provider/openai"
)

func createTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai", "openai-compatible":
		return openaiTranscriber(cfg)

	case "mistral":
		return mistralTranscriber(cfg)

	case "google":
		return googleTranscriber(cfg)

	default:
		return nil, errors.New("invalid transcriber type: " + cfg.Type)
	}
}

func openaiTranscriber(cfg providerConfig) (provider.Transcriber, error) {
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

	return openai.NewTranscriber(cfg.URL, cfg.Model, options...)
}

func mistralTranscriber(cfg providerConfig) (provider.Transcriber, error) {
	var options []mistral.Option

	if cfg.Token != "" {
		options = append(options, mistral.WithToken(cfg.Token))
	}

	if cfg.URL != "" {
		options = append(options, mistral.WithURL(cfg.URL))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, mistral.WithClient(client))
	}

	return mistral.NewTranscriber(cfg.Model, options...)
}

func googleTranscriber(cfg providerConfig) (provider.Transcriber, error) {
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

	return google.NewTranscriber(cfg.Model, options...)
}
