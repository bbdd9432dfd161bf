package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/structcall/dispatch"
)

// Conversation roles understood by the provider adapters.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry of the conversation sent to a model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolDefinition declaratively exposes a callable capability to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual capability exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// FunctionCall is a capability invocation surfaced by a model provider.
// Unified across vendors so downstream logic does not need per-provider branching.
type FunctionCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON-encoded argument payload
}

// Request captures the normalized input for one model round trip.
type Request struct {
	Messages []Message        `json:"messages"`
	Tools    []ToolDefinition `json:"tools,omitempty"`
	Mode     dispatch.Mode    `json:"-"` // Tool choice policy, encoded per provider
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the complete answer to one request. Exactly one of Text and
// Call carries the payload: Call is non-nil when the model invoked a
// capability, otherwise Text holds the assistant message.
type Response struct {
	ID           string        `json:"id"`
	Text         string        `json:"text,omitempty"`
	Call         *FunctionCall `json:"call,omitempty"`
	FinishReason string        `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage   `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required to drive one structured call.
// Complete performs a single blocking round trip; cancellation and timeouts
// come from the supplied context.
type Model interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// ServiceError wraps a transport or service failure from a provider. The
// underlying cause is preserved unmodified and exposed via Unwrap.
type ServiceError struct {
	Provider string `json:"provider"` // Provider that produced the failure
	Err      error  `json:"-"`        // Underlying transport diagnostic
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error (%s): %v", e.Provider, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ServiceError) Unwrap() error { return e.Err }

// NewServiceError creates a ServiceError for the given provider.
func NewServiceError(provider string, err error) *ServiceError {
	return &ServiceError{Provider: provider, Err: err}
}
