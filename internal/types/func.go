package types

import "strings"

// Func represents a function signature.
type Func struct {
	typ
	params []*Var
	result Type
}

// NewFunc creates a new function signature. result is Typ[Void] for
// functions that return nothing.
func NewFunc(params []*Var, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameters.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i'th parameter.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() Type {
	return f.result
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("function(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Type().String())
	}
	buf.WriteString(") ")
	buf.WriteString(f.result.String())
	return buf.String()
}
