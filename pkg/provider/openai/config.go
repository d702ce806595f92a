package openai

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

type Config struct {
	url string

	name  string
	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

// WithName overrides the provider name used in errors. OpenAI-compatible
// vendors (Mistral) reuse this package under their own name.
func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// normalize fills defaults once, at construction. Options must stay
// read-only: it is re-evaluated on every catalog call, concurrently.
func (c *Config) normalize() {
	if c.url == "" {
		c.url = "https://api.openai.com/v1/"
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	if c.name == "" {
		c.name = "openai"
	}

	if c.client == nil {
		c.client = http.DefaultClient
	}
}

func (c *Config) Options() []option.RequestOption {
	options := []option.RequestOption{
		option.WithBaseURL(c.url),
		option.WithHTTPClient(c.client),

		// the core never retries on its own
		option.WithMaxRetries(0),
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}

// CallOptions applies the per-call credential on top of the configured
// defaults. A per-call key always wins over a configured token.
func (c *Config) CallOptions(apiKey string) []option.RequestOption {
	if apiKey == "" {
		return nil
	}

	return []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
}
