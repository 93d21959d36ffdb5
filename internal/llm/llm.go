// Package llm provides provider-agnostic access to a chat-completion service.
// The rest of the codebase only depends on Client; Groq, Vertex AI and a dummy
// client implement it.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means the completion service itself was unreachable or
	// answered with an error status. A received-but-useless completion is not
	// this error; callers degrade on that instead.
	ErrUnavailable = errors.New("llm: upstream unavailable")
	// ErrEmptyCompletion means the provider answered 2xx but returned no
	// usable completion text.
	ErrEmptyCompletion = errors.New("llm: empty completion")
)

// Message is one turn of the conversation sent to the provider.
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Options holds per-call generation options common to all providers.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Client is the minimal chat interface consumed by the services. All
// implementations must be safe for concurrent use.
type Client interface {
	// Chat sends messages and returns the assistant's response text.
	Chat(ctx context.Context, messages []Message, opts Options) (string, error)
}
