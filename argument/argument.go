// Package argument decodes the JSON-encoded argument payload of a capability
// call into a typed value tree. Representing arguments as a closed Value
// variant (null, string, number, bool, array, object) instead of a bare
// map[string]any lets downstream consumers branch exhaustively on kinds.
package argument

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Kind discriminates the JSON value variants.
type Kind int

const (
	// KindNull is the JSON null value.
	KindNull Kind = iota
	// KindString is a JSON string.
	KindString
	// KindNumber is a JSON number.
	KindNumber
	// KindBool is a JSON boolean.
	KindBool
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single decoded JSON value. The zero value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  Object
}

// Object maps parameter names to decoded values.
type Object map[string]Value

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload ("" for non-strings).
func (v Value) Str() string { return v.str }

// Num returns the numeric payload (0 for non-numbers).
func (v Value) Num() float64 { return v.num }

// Int returns the numeric payload truncated to an integer.
func (v Value) Int() int64 { return int64(v.num) }

// Bool returns the boolean payload (false for non-booleans).
func (v Value) Bool() bool { return v.b }

// Array returns the element values (nil for non-arrays).
func (v Value) Array() []Value { return v.arr }

// Object returns the member values (nil for non-objects).
func (v Value) Object() Object { return v.obj }

// Interface converts the value back into the shapes produced by a plain
// encoding/json decode: nil, string, float64, bool, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		return v.obj.Interface()
	default:
		return nil
	}
}

// Interface converts the object into a map[string]any tree.
func (o Object) Interface() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Interface()
	}
	return out
}

// DecodeError indicates that a capability argument payload was not valid
// JSON or did not decode to an object. Raw carries the offending payload
// for diagnosis.
type DecodeError struct {
	Raw     string `json:"raw"`     // Offending payload as received
	Message string `json:"message"` // Human-readable error message
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode capability arguments: %s (raw: %q)", e.Message, e.Raw)
}

// Decode parses a JSON-encoded argument string into an Object. A payload
// that is not valid JSON, or that parses to anything other than an object,
// yields a *DecodeError.
func Decode(raw string) (Object, error) {
	if !gjson.Valid(raw) {
		return nil, &DecodeError{Raw: raw, Message: "invalid JSON"}
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return nil, &DecodeError{
			Raw:     raw,
			Message: fmt.Sprintf("expected a JSON object, got %s", parsed.Type),
		}
	}
	return fromResult(parsed).obj, nil
}

// fromResult converts a gjson result into the Value variant.
func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return Value{kind: KindString, str: r.Str}
	case gjson.Number:
		return Value{kind: KindNumber, num: r.Num}
	case gjson.True:
		return Value{kind: KindBool, b: true}
	case gjson.False:
		return Value{kind: KindBool, b: false}
	case gjson.Null:
		return Value{kind: KindNull}
	default: // gjson.JSON: array or object
		if r.IsArray() {
			elems := r.Array()
			arr := make([]Value, len(elems))
			for i, e := range elems {
				arr[i] = fromResult(e)
			}
			return Value{kind: KindArray, arr: arr}
		}
		obj := Object{}
		r.ForEach(func(key, value gjson.Result) bool {
			obj[key.Str] = fromResult(value)
			return true
		})
		return Value{kind: KindObject, obj: obj}
	}
}
