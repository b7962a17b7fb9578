// Package providers implements chat-completion clients for
// OpenAI-compatible model APIs.
package providers

import "context"

// Message is one entry in the ordered prompt.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatRequest is a single completion call.
type ChatRequest struct {
	Model    string
	Messages []Message
}

// ChatResponse is the single text output of a completion call.
type ChatResponse struct {
	Content string
	Model   string
}

// Provider is a chat-completion backend. Chat is attempted exactly once
// per request; the core never retries.
type Provider interface {
	Name() string
	DefaultModel() string
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
