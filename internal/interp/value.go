// Package interp executes checked MJS programs by walking their syntax tree.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/mjs/internal/types"
)

// Value is a runtime value: an int, a float or a string.
// The zero Value is the int 0.
type Value struct {
	kind types.BasicKind
	i    int64
	f    float64
	s    string
}

// IntValue returns an int value.
func IntValue(i int64) Value { return Value{kind: types.Int, i: i} }

// FloatValue returns a float value.
func FloatValue(f float64) Value { return Value{kind: types.Float, f: f} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: types.String, s: s} }

// ZeroValue returns the value a variable of type t holds before it is assigned.
func ZeroValue(t types.Type) Value {
	switch {
	case types.IsFloat(t):
		return FloatValue(0)
	case types.IsString(t):
		return StringValue("")
	}
	return IntValue(0)
}

// Kind returns the value's basic kind.
func (v Value) Kind() types.BasicKind {
	if v.kind == types.Invalid {
		return types.Int
	}
	return v.kind
}

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the value as a float, converting ints.
func (v Value) Float() float64 {
	if v.Kind() == types.Int {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Equal reports whether v and w have the same kind and payload.
func (v Value) Equal(w Value) bool {
	return v.Kind() == w.Kind() && v.i == w.i && v.f == w.f && v.s == w.s
}

// Truthy reports whether v is a nonzero int.
func (v Value) Truthy() bool {
	return v.Kind() == types.Int && v.i != 0
}

// Render formats v the way write prints it. Floats use prec fractional
// digits with trailing zeros removed, keeping at least one.
func (v Value) Render(prec int) string {
	switch v.Kind() {
	case types.Float:
		return FormatFloat(v.f, prec)
	case types.String:
		return v.s
	}
	return strconv.FormatInt(v.i, 10)
}

// String returns a debugging representation of v.
func (v Value) String() string {
	switch v.Kind() {
	case types.String:
		return strconv.Quote(v.s)
	case types.Float:
		return FormatFloat(v.f, 6)
	}
	return fmt.Sprint(v.i)
}

// FormatFloat renders f in fixed notation: 5.85, 3.0, -0.5.
// Negative zero, and negative values that round to zero, print as 0.0.
func FormatFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.ContainsAny(s, "IN") { // Inf, NaN
		return s
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
	} else {
		s += "."
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if s == "-0.0" {
		return "0.0"
	}
	return s
}

// convert applies the only implicit conversion, int to float, when t is float.
func convert(v Value, t types.Type) Value {
	if types.IsFloat(t) && v.Kind() == types.Int {
		return FloatValue(float64(v.i))
	}
	return v
}
