package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// call type-checks a function call.
func (c *Checker) call(x *operand, call *syntax.CallExpr) {
	obj := c.resolve(call.Fun)
	if obj == nil {
		c.useArgs(call.Args)
		return
	}

	fn, ok := obj.(*types.FuncObj)
	if !ok {
		c.mismatch(call.Fun.Pos(), "cannot call non-function %s (%s %s)", call.Fun.Value, obj.Kind(), obj.Type())
		c.useArgs(call.Args)
		return
	}
	c.recordType(call.Fun, &operand{mode: funcval, typ: fn.Signature()})

	sig := fn.Signature()
	if len(call.Args) != sig.NumParams() {
		c.errorf(call.Pos(), ArityMismatch, "wrong number of arguments in call to %s: have %d, want %d",
			fn.Name(), len(call.Args), sig.NumParams())
		c.useArgs(call.Args)
		return
	}

	for i, arg := range call.Args {
		var a operand
		c.value(&a, arg)
		p := sig.Param(i)
		c.assignment(&a, p.Type(), "argument "+p.Name()+" to "+fn.Name())
	}

	if types.IsVoid(sig.Result()) {
		x.mode = novalue
		x.typ = nil
		return
	}
	x.setValue(sig.Result())
}

// useArgs checks arguments of a call that could not be resolved so that
// their own errors are still reported when collecting all errors.
func (c *Checker) useArgs(args []syntax.Expr) {
	for _, arg := range args {
		var x operand
		c.expr(&x, arg)
	}
}
