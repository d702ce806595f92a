package openai

import (
	"context"

	"github.com/voquill/voquill/pkg/provider"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	cfg.normalize()

	return &Completer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if len(messages) == 0 {
		return nil, provider.NewError(provider.ErrorBadRequest, c.name, "messages are empty")
	}

	model := c.model

	if options.Model != "" {
		model = options.Model
	}

	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),

		Messages: convertMessages(messages),
	}

	if len(options.Stop) > 0 {
		req.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: options.Stop,
		}
	}

	if options.MaxTokens != nil {
		req.MaxCompletionTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	completion, err := c.completions.New(ctx, req, c.CallOptions(options.APIKey)...)

	if err != nil {
		return nil, convertError(c.name, err)
	}

	if len(completion.Choices) == 0 {
		return nil, provider.NewError(provider.ErrorUnknown, c.name, "completion has no choices")
	}

	choice := completion.Choices[0]

	return &provider.Completion{
		ID:    completion.ID,
		Model: completion.Model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: choice.Message.Content,
		},

		Usage: &provider.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func convertMessages(messages []provider.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Content))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Content))

		default:
			result = append(result, openai.UserMessage(m.Content))
		}
	}

	return result
}
