// Package dispatch defines the policy controlling whether a remote model may,
// must, or must not invoke one of the advertised capabilities for a request.
//
// The three modes mirror the wire-level tool choice options of the hosted
// chat APIs:
//   - Auto:   the model decides between free text and a capability call
//   - None:   capability calls are forbidden; the model answers in text
//   - Forced: the model must call the named capability
//
// Mode values are immutable and passed per request; the provider adapters
// translate them into each vendor's tool_choice encoding.
package dispatch

import "fmt"

// Kind discriminates the dispatch mode variants.
type Kind int

const (
	// KindAuto lets the remote model decide whether to invoke a capability.
	KindAuto Kind = iota
	// KindNone forbids capability invocation.
	KindNone
	// KindForced requires invocation of a specific capability.
	KindForced
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindNone:
		return "none"
	case KindForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Mode is a tagged choice among Auto, None and Forced(name).
// The zero value is Auto.
type Mode struct {
	kind Kind
	name string
}

// Auto returns the mode that lets the model decide whether to call a capability.
func Auto() Mode { return Mode{kind: KindAuto} }

// None returns the mode that forbids capability calls.
func None() Mode { return Mode{kind: KindNone} }

// Forced returns the mode that requires the model to call the named capability.
func Forced(capabilityName string) Mode {
	return Mode{kind: KindForced, name: capabilityName}
}

// Kind returns the mode variant.
func (m Mode) Kind() Kind { return m.kind }

// CapabilityName returns the forced capability name and true when the mode
// is Forced, otherwise "" and false.
func (m Mode) CapabilityName() (string, bool) {
	if m.kind != KindForced {
		return "", false
	}
	return m.name, true
}

// String renders the mode for logs and error messages.
func (m Mode) String() string {
	if m.kind == KindForced {
		return fmt.Sprintf("forced(%s)", m.name)
	}
	return m.kind.String()
}
