package google

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/voquill/voquill/pkg/provider"

	"google.golang.org/genai"
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

// WithURL rebases the client's REST endpoint, mainly for tests.
func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func (c *Config) newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		apiKey = c.token
	}

	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,

		HTTPClient: c.client,
	}

	if c.url != "" {
		config.HTTPOptions = genai.HTTPOptions{
			BaseURL: c.url,
		}
	}

	return genai.NewClient(ctx, config)
}

func (c *Config) key(apiKey string) string {
	if apiKey != "" {
		return apiKey
	}

	return c.token
}

func (c *Config) endpoint(fallback string) string {
	if c.url != "" {
		return strings.TrimRight(c.url, "/")
	}

	return fallback
}

func (c *Config) httpClient() *http.Client {
	if c.client != nil {
		return c.client
	}

	return http.DefaultClient
}

type restError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// doJSON performs one REST call against a Google endpoint. The API key is
// carried as a query parameter, never logged.
func (c *Config) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return provider.WrapError(provider.ErrorBadRequest, "google", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)

	if err != nil {
		return provider.WrapError(provider.ErrorBadRequest, "google", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)

	if err != nil {
		return provider.WrapError(provider.ErrorNetwork, "google", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)

		var detail restError

		message := ""

		if err := json.Unmarshal(data, &detail); err == nil {
			message = detail.Error.Message
		}

		return provider.FromStatus("google", resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return provider.WrapError(provider.ErrorUnknown, "google", err)
	}

	return nil
}
