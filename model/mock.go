package model

import (
	"context"
	"fmt"
)

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are keyed by the last user message; canned capability calls take
// precedence over canned text.
type MockModel struct {
	info  Info
	texts map[string]string
	calls map[string]FunctionCall
	err   error
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      provider,
			SupportsTools: true,
		},
		texts: make(map[string]string),
		calls: make(map[string]FunctionCall),
	}
}

// AddText registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddText(prompt, response string) { m.texts[prompt] = response }

// AddCall registers a canned capability call for an input prompt. Arguments
// is the raw JSON payload the mock will return verbatim, so tests can feed
// malformed strings through the decode path.
func (m *MockModel) AddCall(prompt, name, arguments string) {
	m.calls[prompt] = FunctionCall{
		ID:        fmt.Sprintf("call_%d", len(m.calls)+1),
		Name:      name,
		Arguments: arguments,
	}
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Complete implements Model with canned responses.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceError(m.info.Provider, err)
	}
	if m.err != nil {
		return nil, NewServiceError(m.info.Provider, m.err)
	}
	if len(req.Messages) == 0 {
		return nil, NewServiceError(m.info.Provider, fmt.Errorf("no messages provided"))
	}

	prompt := req.Messages[len(req.Messages)-1].Content

	if call, ok := m.calls[prompt]; ok {
		return &Response{
			ID:           "mock",
			Call:         &call,
			FinishReason: "tool_calls",
		}, nil
	}

	text := m.texts[prompt]
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", prompt)
	}
	return &Response{
		ID:           "mock",
		Text:         text,
		FinishReason: "stop",
	}, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
