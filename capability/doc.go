// Package capability describes the operations a caller advertises to a remote
// model. A Descriptor carries the capability name, a natural language
// description used by the model to decide when the capability applies, and a
// JSON Schema object enumerating its parameters.
//
// Descriptors are immutable once constructed and can be built either from an
// explicit schema map (New) or derived from a Go struct via reflection
// (FromStruct). A Set groups descriptors for a request while enforcing unique
// names and preserving declaration order.
package capability
