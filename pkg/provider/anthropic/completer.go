package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if len(messages) == 0 {
		return nil, provider.NewError(provider.ErrorBadRequest, "anthropic", "messages are empty")
	}

	model := c.model

	if options.Model != "" {
		model = options.Model
	}

	maxTokens := 4096

	if options.MaxTokens != nil {
		maxTokens = *options.MaxTokens
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(model),

		MaxTokens: int64(maxTokens),

		Messages: convertMessages(messages),
	}

	if system := provider.System(messages); system != "" {
		req.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	if len(options.Stop) > 0 {
		req.StopSequences = options.Stop
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	message, err := c.messages.New(ctx, req, c.CallOptions(options.APIKey)...)

	if err != nil {
		return nil, convertError(err)
	}

	var parts []string

	for _, block := range message.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: string(message.Model),

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: strings.Join(parts, "\n\n"),
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func convertMessages(messages []provider.Message) []anthropic.MessageParam {
	var result []anthropic.MessageParam

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			continue

		case provider.MessageRoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))

		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	return result
}

func convertError(err error) error {
	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		return provider.FromStatus("anthropic", apierr.StatusCode, apierr.Error())
	}

	return provider.WrapError(provider.ErrorNetwork, "anthropic", err)
}
