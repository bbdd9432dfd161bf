package capability

import (
	"fmt"
	"maps"
)

// Descriptor declaratively exposes a callable capability to the model.
//
// Parameters follows a minimal JSON Schema shape: an "object" type with
// "properties" (each property carrying a type, optional enum and
// description) and an optional "required" list. Descriptors have no mutable
// state after construction and are safe for concurrent use.
type Descriptor struct {
	// Capability identifier (snake_case recommended)
	name string
	// Human-readable description shown to models
	description string
	// JSON schema describing accepted arguments
	parameters map[string]any
}

// New constructs a Descriptor from an explicit schema map.
//
// Example:
//
//	weather := capability.New(
//	  "get_current_weather",
//	  "Get the current weather in a given location",
//	  map[string]any{
//	    "type": "object",
//	    "properties": map[string]any{
//	      "location": map[string]any{
//	        "type":        "string",
//	        "description": "The city and state, e.g. San Francisco, CA",
//	      },
//	      "unit": map[string]any{
//	        "type": "string",
//	        "enum": []string{"celsius", "fahrenheit"},
//	      },
//	    },
//	    "required": []string{"location"},
//	  },
//	)
func New(name, description string, parameters map[string]any) Descriptor {
	if parameters == nil {
		parameters = map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}
	return Descriptor{
		name:        name,
		description: description,
		parameters:  parameters,
	}
}

// Name returns the unique capability name used in function call declarations.
func (d Descriptor) Name() string { return d.name }

// Description returns the short natural language description exposed to models.
func (d Descriptor) Description() string { return d.description }

// Parameters returns a copy of the JSON schema describing expected arguments.
// The copy is shallow; callers must treat nested values as read-only.
func (d Descriptor) Parameters() map[string]any { return maps.Clone(d.parameters) }

// Set is an ordered collection of descriptors with unique names.
// A nil *Set behaves as an empty collection.
type Set struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewSet builds a Set from the given descriptors, failing on duplicate names.
func NewSet(descriptors ...Descriptor) (*Set, error) {
	s := &Set{index: map[string]int{}}
	for _, d := range descriptors {
		if err := s.Add(d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustSet is like NewSet but panics on duplicate names. Intended for
// package-level declarations and examples.
func MustSet(descriptors ...Descriptor) *Set {
	s, err := NewSet(descriptors...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add appends a descriptor, rejecting names already present.
func (s *Set) Add(d Descriptor) error {
	if d.name == "" {
		return fmt.Errorf("capability name must not be empty")
	}
	if s.index == nil {
		s.index = map[string]int{}
	}
	if _, exists := s.index[d.name]; exists {
		return fmt.Errorf("duplicate capability name: %s", d.name)
	}
	s.index[d.name] = len(s.descriptors)
	s.descriptors = append(s.descriptors, d)
	return nil
}

// Get returns the descriptor with the given name.
func (s *Set) Get(name string) (Descriptor, bool) {
	if s == nil {
		return Descriptor{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return s.descriptors[i], true
}

// Descriptors returns the descriptors in declaration order.
func (s *Set) Descriptors() []Descriptor {
	if s == nil {
		return nil
	}
	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Len reports the number of descriptors in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.descriptors)
}
