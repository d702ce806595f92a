package provider

import (
	"context"
	"strings"
)

type Completer interface {
	Complete(ctx context.Context, messages []Message, options *CompleteOptions) (*Completion, error)
}

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Message struct {
	Role MessageRole

	Content string
}

func SystemMessage(content string) Message {
	return Message{
		Role: MessageRoleSystem,

		Content: content,
	}
}

func UserMessage(content string) Message {
	return Message{
		Role: MessageRoleUser,

		Content: content,
	}
}

func AssistantMessage(content string) Message {
	return Message{
		Role: MessageRoleAssistant,

		Content: content,
	}
}

// System joins all system messages into a single instruction block.
func System(messages []Message) string {
	var parts []string

	for _, m := range messages {
		if m.Role == MessageRoleSystem && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}

	return strings.Join(parts, "\n\n")
}

type CompleteOptions struct {
	APIKey string

	Model string

	Stop []string

	MaxTokens   *int
	Temperature *float32
}

type Completion struct {
	ID    string
	Model string

	Message *Message

	Usage *Usage
}
