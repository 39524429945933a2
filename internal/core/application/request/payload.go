// Package request holds the request-scoped data threaded through a pipeline:
// the submitted payload, the path identifier and whatever earlier stages resolved.
package request

import (
	"encoding/json"
	"math"
)

// Payload is the `data` envelope of a request body, decoded from JSON without a schema.
// Validators inspect it field by field; the zero value is an absent payload.
type Payload struct {
	raw any
}

// NewPayload wraps a decoded JSON value.
func NewPayload(raw any) Payload {
	return Payload{raw: raw}
}

// Raw returns the decoded value as given to NewPayload.
func (p Payload) Raw() any {
	return p.raw
}

// Present reports whether a truthy payload was submitted.
func (p Payload) Present() bool {
	return Truthy(p.raw)
}

// Field returns the named field, or nil when the payload is not an object or lacks it.
func (p Payload) Field(name string) any {
	fields, ok := p.raw.(map[string]any)
	if !ok {
		return nil
	}
	return fields[name]
}

// String returns the named field when it is a string, "" otherwise.
func (p Payload) String(name string) string {
	s, _ := p.Field(name).(string)
	return s
}

// Int returns the named field truncated to an int, 0 when it is not a number.
func (p Payload) Int(name string) int {
	n, ok := Number(p.Field(name))
	if !ok {
		return 0
	}
	return int(n)
}

// List returns the named field when it is an array.
func (p Payload) List(name string) ([]any, bool) {
	list, ok := p.Field(name).([]any)
	return list, ok
}

// Truthy applies JSON-document truthiness: null, false, "", 0 and NaN are falsy,
// everything else (including empty arrays and objects) is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case json.Number:
		n, err := x.Float64()
		return err == nil && n != 0
	default:
		return true
	}
}

// Number returns v as a float64 when it is a JSON number.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case int:
		return float64(x), true
	case json.Number:
		n, err := x.Float64()
		return n, err == nil
	default:
		return 0, false
	}
}

// WholeNumber returns v as an int when it is a JSON number with no fractional part
// that fits in an int.
func WholeNumber(v any) (int, bool) {
	n, ok := Number(v)
	if !ok || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}
