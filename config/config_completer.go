package config

import (
	"errors"
	"strings"

	"github.com/voquill/voquill/pkg/provider"
	"github.com/voquill/voquill/pkg/provider/anthropic"
	"github.com/voquill/voquill/pkg/provider/google"
	"github.com/voquill/voquill/pkg/provider/mistral"
	"github.com/voquill/voquill/pkg/provider/openai"
)

func createCompleter(cfg providerConfig) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai", "openai-compatible":
		return openaiCompleter(cfg)

	case "mistral":
		return mistralCompleter(cfg)

	case "google":
		return googleCompleter(cfg)

	case "anthropic":
		return anthropicCompleter(cfg)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}

func openaiCompleter(cfg providerConfig) (provider.Completer, error) {
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

	return openai.NewCompleter(cfg.URL, cfg.Model, options...)
}

func mistralCompleter(cfg providerConfig) (provider.Completer, error) {
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

	return mistral.NewCompleter(cfg.Model, options...)
}

func googleCompleter(cfg providerConfig) (provider.Completer, error) {
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

	return google.NewCompleter(cfg.Model, options...)
}

func anthropicCompleter(cfg providerConfig) (provider.Completer, error) {
	var options []anthropic.Option

	if cfg.Token != "" {
		options = append(options, anthropic.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, err
	}

	if client != nil {
		options = append(options, anthropic.WithClient(client))
	}

	return anthropic.NewCompleter(cfg.URL, cfg.Model, options...)
}
