package llm

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrEmptyResponse = errors.New("llm returned no content")

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

func System(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func User(content string) Message      { return Message{Role: RoleUser, Content: content} }
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// Request is one oracle call. JSON asks the provider for a single JSON object
// where it supports that mode; callers still parse defensively.
type Request struct {
	Messages    []Message
	Temperature float32
	JSON        bool
	MaxTokens   int
}

type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// splitSystem joins all system messages for providers that take the system
// prompt out of band, and returns the remaining conversation.
func splitSystem(msgs []Message) (string, []Message) {
	var system []string
	rest := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n\n"), rest
}

// Close releases c if it holds a connection. Wrappers returned by NewClient
// forward to the provider client.
func Close(c LLMClient) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
