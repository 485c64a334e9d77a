package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	invalid  operandMode = iota // operand is invalid
	novalue                     // operand has no value (void function call)
	funcval                     // operand names a function
	variable                    // operand is an assignable variable
	value                       // operand is a computed value (not assignable)
)

// operand represents the result of checking an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	expr syntax.Expr // source expression (for error reporting)
}

// String returns a string representation of the operand for messages.
func (x *operand) String() string {
	switch x.mode {
	case invalid:
		return "invalid operand"
	case novalue:
		return syntax.ExprString(x.expr) + " (no value)"
	}
	if x.typ == nil {
		return "operand without type"
	}
	return syntax.ExprString(x.expr) + " (" + x.typ.String() + ")"
}

// setValue sets the operand to a computed value.
func (x *operand) setValue(typ types.Type) {
	x.mode = value
	x.typ = typ
}

// setInvalid sets the operand to invalid.
func (x *operand) setInvalid() {
	x.mode = invalid
	x.typ = nil
}
