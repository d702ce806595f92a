package mistral

import (
	"net/http"

	"github.com/voquill/voquill/pkg/provider/openai"
)

type Config struct {
	url string

	options []openai.Option
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.options = append(c.options, openai.WithClient(client))
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.options = append(c.options, openai.WithToken(token))
	}
}

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func (c *Config) endpoint() string {
	if c.url != "" {
		return c.url
	}

	return "https://api.mistral.ai/v1/"
}
