// Package validate checks decoded capability arguments against the declared
// parameter schema. The invoker does not require this step to decode a
// response; it is an opt-in strengthening for callers that want malformed
// model output rejected before acting on it.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/structcall/argument"
	"github.com/hupe1980/structcall/capability"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ArgumentError reports decoded arguments that violate the capability's
// declared parameter schema.
type ArgumentError struct {
	Capability string `json:"capability"` // Capability whose schema was violated
	Err        error  `json:"-"`          // Underlying validation diagnostic
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for capability %s: %v", e.Capability, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *ArgumentError) Unwrap() error { return e.Err }

// Arguments validates a decoded argument object against the descriptor's
// parameter schema. A schema that itself fails to compile is reported as an
// error rather than silently accepted.
func Arguments(desc capability.Descriptor, args argument.Object) error {
	raw, err := json.Marshal(desc.Parameters())
	if err != nil {
		return fmt.Errorf("marshal parameter schema for %s: %w", desc.Name(), err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("parameters.json", bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("load parameter schema for %s: %w", desc.Name(), err)
	}
	schema, err := compiler.Compile("parameters.json")
	if err != nil {
		return fmt.Errorf("compile parameter schema for %s: %w", desc.Name(), err)
	}

	if err := schema.Validate(args.Interface()); err != nil {
		return &ArgumentError{Capability: desc.Name(), Err: err}
	}
	return nil
}
