package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// expr evaluates an expression and sets x to the result.
func (c *Checker) expr(x *operand, e syntax.Expr) {
	c.exprInternal(x, e)

	// Record type information
	if x.mode != invalid {
		c.recordType(e, x)
	}
}

// exprInternal is the main expression checking function.
func (c *Checker) exprInternal(x *operand, e syntax.Expr) {
	x.mode = invalid
	x.pos = e.Pos()
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		c.ident(x, e)
	case *syntax.BasicLit:
		c.basicLit(x, e)
	case *syntax.UnaryExpr:
		c.unary(x, e)
	case *syntax.BinaryExpr:
		c.binary(x, e)
	case *syntax.CallExpr:
		c.call(x, e)
	case *syntax.ParenExpr:
		c.expr(x, e.X)
		x.expr = e
	default:
		c.mismatch(e.Pos(), "unexpected expression %T", e)
	}
}

// value evaluates e and reports an error if it does not produce a value.
func (c *Checker) value(x *operand, e syntax.Expr) {
	c.expr(x, e)
	switch x.mode {
	case novalue:
		c.mismatch(x.pos, "%s used as value", x)
		x.setInvalid()
	case funcval:
		c.mismatch(x.pos, "function %s used as value", syntax.ExprString(e))
		x.setInvalid()
	}
}

// ident evaluates an identifier.
func (c *Checker) ident(x *operand, name *syntax.Name) {
	obj := c.resolve(name)
	if obj == nil {
		return
	}

	switch obj := obj.(type) {
	case *types.Var:
		x.mode = variable
		x.typ = obj.Type()
	case *types.FuncObj:
		x.mode = funcval
		x.typ = obj.Signature()
	}
}

// basicLit evaluates a literal.
func (c *Checker) basicLit(x *operand, lit *syntax.BasicLit) {
	switch lit.Kind {
	case syntax.IntLit:
		x.setValue(types.Typ[types.Int])
	case syntax.FloatLit:
		x.setValue(types.Typ[types.Float])
	case syntax.StringLit:
		x.setValue(types.Typ[types.String])
	}
}

// unary evaluates a unary expression. The only unary operator is !,
// which requires an int operand and yields int.
func (c *Checker) unary(x *operand, e *syntax.UnaryExpr) {
	c.value(x, e.X)
	if x.mode == invalid {
		return
	}
	if !types.IsInteger(x.typ) {
		c.mismatch(e.Pos(), "operator %s not defined on %s", e.Op, x)
		x.setInvalid()
		return
	}
	x.setValue(types.Typ[types.Int])
}

// binary evaluates a binary expression.
func (c *Checker) binary(x *operand, e *syntax.BinaryExpr) {
	var y operand
	c.value(x, e.X)
	c.value(&y, e.Y)
	if x.mode == invalid || y.mode == invalid {
		x.setInvalid()
		return
	}

	if !types.IsNumeric(x.typ) || !types.IsNumeric(y.typ) {
		bad := x
		if types.IsNumeric(x.typ) {
			bad = &y
		}
		c.mismatch(bad.pos, "operator %s not defined on %s", e.Op, bad)
		x.setInvalid()
		return
	}

	switch e.Op {
	case syntax.Eql, syntax.Neq:
		x.setValue(types.Typ[types.Int])
	default:
		x.setValue(types.Promote(x.typ, y.typ))
	}
}

// assignment checks that x can be stored in a variable of type T.
func (c *Checker) assignment(x *operand, T types.Type, context string) bool {
	if x.mode == invalid {
		return false
	}
	if !types.AssignableTo(x.typ, T) {
		c.mismatch(x.pos, "cannot use %s as %s value in %s", x, T, context)
		return false
	}
	return true
}
