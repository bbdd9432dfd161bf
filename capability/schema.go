package capability

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// FromStruct derives the parameter schema from a Go struct and returns a
// Descriptor. It is a convenience for simple argument containers; field
// names follow `json` tags and schema details (enum, description, required)
// can be refined with `jsonschema` tags.
//
// Example:
//
//	type WeatherArgs struct {
//	  Location string `json:"location" jsonschema:"description=The city and state"`
//	  Unit     string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit"`
//	}
//
//	weather, err := capability.FromStruct(
//	  "get_current_weather",
//	  "Get the current weather in a given location",
//	  WeatherArgs{},
//	)
func FromStruct(name, description string, structType any) (Descriptor, error) {
	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true
	reflector.DoNotReference = true

	schema := reflector.Reflect(structType)

	raw, err := json.Marshal(schema)
	if err != nil {
		return Descriptor{}, fmt.Errorf("marshal generated schema: %w", err)
	}

	var parameters map[string]any
	if err := json.Unmarshal(raw, &parameters); err != nil {
		return Descriptor{}, fmt.Errorf("unmarshal generated schema: %w", err)
	}

	// Wire formats expect a bare parameters object, not a standalone document.
	delete(parameters, "$schema")
	delete(parameters, "$id")

	if _, ok := parameters["type"]; !ok {
		return Descriptor{}, fmt.Errorf("cannot derive object schema from %T", structType)
	}

	return New(name, description, parameters), nil
}
