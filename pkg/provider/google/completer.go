package google

import (
	"context"
	"errors"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if len(messages) == 0 {
		return nil, provider.NewError(provider.ErrorBadRequest, "google", "messages are empty")
	}

	client, err := c.newClient(ctx, options.APIKey)

	if err != nil {
		return nil, convertError(err)
	}

	model := c.model

	if options.Model != "" {
		model = options.Model
	}

	config := &genai.GenerateContentConfig{}

	if system := provider.System(messages); system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	resp, err := client.Models.GenerateContent(ctx, model, convertContents(messages), config)

	if err != nil {
		return nil, convertError(err)
	}

	result := &provider.Completion{
		ID:    uuid.NewString(),
		Model: model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: resp.Text(),
		},
	}

	if resp.UsageMetadata != nil {
		result.Usage = &provider.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return result, nil
}

func convertContents(messages []provider.Message) []*genai.Content {
	var result []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			continue

		case provider.MessageRoleAssistant:
			result = append(result, genai.NewContentFromText(m.Content, genai.RoleModel))

		default:
			result = append(result, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	return result
}

func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		return provider.FromStatus("google", apierr.Code, apierr.Message)
	}

	return provider.WrapError(provider.ErrorNetwork, "google", err)
}
