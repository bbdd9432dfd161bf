// Package structcall turns a natural language input into either free-form
// text or a decoded, typed argument mapping by driving one function-calling
// round trip against a hosted chat model. Most applications interact with
// this package by:
//  1. Declaring capabilities (capability.New or capability.FromStruct)
//  2. Creating an Invoker via New() with a provider model (model/openai,
//     model/anthropic) and default options
//  3. Calling Invoke (configured defaults) or InvokeWith (per-request
//     capabilities and dispatch mode) and branching on the Result union
//
// The invoker performs exactly one request and awaits exactly one response:
// no streaming, no retries, no conversation state. Transport failures
// surface as *ServiceError, malformed argument payloads as *DecodeError,
// and responses whose shape disagrees with the requested dispatch mode as
// *ShapeMismatchError.
package structcall

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/structcall/argument"
	"github.com/hupe1980/structcall/capability"
	"github.com/hupe1980/structcall/dispatch"
	"github.com/hupe1980/structcall/logging"
	"github.com/hupe1980/structcall/model"
	"github.com/hupe1980/structcall/validate"
)

// ErrEmptyInput is returned when the user input is empty or whitespace only.
var ErrEmptyInput = fmt.Errorf("input must not be empty")

// DecodeError re-exports the argument decode failure type.
type DecodeError = argument.DecodeError

// ServiceError re-exports the transport failure type.
type ServiceError = model.ServiceError

// ArgumentError re-exports the schema validation failure type.
type ArgumentError = validate.ArgumentError

// ShapeMismatchError reports a response whose shape disagrees with the
// requested dispatch mode: a capability call under None, plain text under
// Forced, or a forced call answered with the wrong capability.
type ShapeMismatchError struct {
	Mode dispatch.Mode `json:"mode"` // Requested dispatch mode
	Got  string        `json:"got"`  // What the service returned instead
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("response shape mismatch: mode %s, got %s", e.Mode, e.Got)
}

// Result is the outcome of one invocation: either PlainText or CapabilityCall.
type Result interface{ isResult() }

// PlainText is a free-form textual answer.
type PlainText struct {
	Text string
}

// isResult implements the Result interface for PlainText.
func (PlainText) isResult() {}

// CapabilityCall is a structured capability invocation returned by the model.
type CapabilityCall struct {
	ID        string          // Provider-assigned call id (may be empty)
	Name      string          // Capability name
	Arguments argument.Object // Decoded argument mapping
}

// isResult implements the Result interface for CapabilityCall.
func (CapabilityCall) isResult() {}

// Options configures an Invoker.
type Options struct {
	// Capabilities advertised by default on every Invoke call.
	Capabilities *capability.Set

	// Mode is the default dispatch mode for Invoke. The zero value is Auto.
	Mode dispatch.Mode

	// ValidateArguments additionally checks decoded arguments against the
	// capability's declared parameter schema. Off by default; decoding never
	// requires it.
	ValidateArguments bool

	// Logger receives per-invocation diagnostics (defaults to NoOp).
	Logger logging.Logger
}

// Invoker sends single structured-call requests to a model. It holds no
// state across calls beyond its configuration and is safe for concurrent
// use; invocations are fully independent.
type Invoker struct {
	model model.Model
	opts  Options
}

// New creates an Invoker for the given model with optional overrides.
func New(m model.Model, optFns ...func(o *Options)) *Invoker {
	opts := Options{
		Mode:   dispatch.Auto(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Invoker{model: m, opts: opts}
}

// Invoke submits the input with the invoker's configured capabilities and mode.
func (i *Invoker) Invoke(ctx context.Context, input string) (Result, error) {
	return i.InvokeWith(ctx, input, i.opts.Capabilities, i.opts.Mode)
}

// InvokeWith submits the input with explicit capabilities and dispatch mode.
// It builds one request containing a single user message plus the serialized
// capability descriptors, awaits one response and branches on its shape.
func (i *Invoker) InvokeWith(
	ctx context.Context,
	input string,
	caps *capability.Set,
	mode dispatch.Mode,
) (Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	if name, ok := mode.CapabilityName(); ok {
		if _, exists := caps.Get(name); !exists {
			return nil, fmt.Errorf("forced capability %q is not declared", name)
		}
	}

	invocationID := uuid.NewString()
	logger := i.opts.Logger
	info := i.model.Info()

	req := model.Request{
		Messages: []model.Message{{Role: model.RoleUser, Content: input}},
		Tools:    toolDefinitions(caps),
		Mode:     mode,
	}

	logger.Debug("invoke.start",
		"invocation_id", invocationID,
		"model", info.Name,
		"provider", info.Provider,
		"mode", mode.String(),
		"capabilities", caps.Len(),
	)

	start := time.Now()
	resp, err := i.model.Complete(ctx, req)
	if err != nil {
		logger.Error("invoke.service_error",
			"invocation_id", invocationID,
			"error", err.Error(),
		)
		return nil, err
	}

	result, err := i.resolve(resp, caps, mode)
	if err != nil {
		logger.Warn("invoke.failed",
			"invocation_id", invocationID,
			"error", err.Error(),
		)
		return nil, err
	}

	logger.Info("invoke.success",
		"invocation_id", invocationID,
		"shape", shapeOf(result),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// resolve branches on the response shape, enforces agreement with the
// dispatch mode and decodes capability call arguments.
func (i *Invoker) resolve(
	resp *model.Response,
	caps *capability.Set,
	mode dispatch.Mode,
) (Result, error) {
	if resp.Call == nil {
		if _, forced := mode.CapabilityName(); forced {
			return nil, &ShapeMismatchError{Mode: mode, Got: "plain text"}
		}
		return PlainText{Text: resp.Text}, nil
	}

	if mode.Kind() == dispatch.KindNone {
		return nil, &ShapeMismatchError{
			Mode: mode,
			Got:  fmt.Sprintf("capability call %s", resp.Call.Name),
		}
	}
	if name, forced := mode.CapabilityName(); forced && name != resp.Call.Name {
		return nil, &ShapeMismatchError{
			Mode: mode,
			Got:  fmt.Sprintf("capability call %s", resp.Call.Name),
		}
	}

	args, err := argument.Decode(resp.Call.Arguments)
	if err != nil {
		return nil, err
	}

	if i.opts.ValidateArguments {
		if desc, ok := caps.Get(resp.Call.Name); ok {
			if err := validate.Arguments(desc, args); err != nil {
				return nil, err
			}
		}
	}

	return CapabilityCall{
		ID:        resp.Call.ID,
		Name:      resp.Call.Name,
		Arguments: args,
	}, nil
}

// toolDefinitions serializes the capability set into the wire-neutral tool format.
func toolDefinitions(caps *capability.Set) []model.ToolDefinition {
	descs := caps.Descriptors()
	if len(descs) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, len(descs))
	for i, d := range descs {
		defs[i] = model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        d.Name(),
				Description: d.Description(),
				Parameters:  d.Parameters(),
			},
		}
	}
	return defs
}

func shapeOf(r Result) string {
	switch v := r.(type) {
	case CapabilityCall:
		return "capability_call:" + v.Name
	default:
		return "plain_text"
	}
}
