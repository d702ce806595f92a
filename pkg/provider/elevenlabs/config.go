package elevenlabs

import (
	"net/http"
	"strings"
)

type Config struct {
	url string

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

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) endpoint() string {
	if c.url == "" {
		return "https://api.elevenlabs.io"
	}

	return strings.TrimRight(c.url, "/")
}

func (c *Config) key(apiKey string) string {
	if apiKey != "" {
		return apiKey
	}

	return c.token
}

func (c *Config) httpClient() *http.Client {
	if c.client != nil {
		return c.client
	}

	return http.DefaultClient
}
