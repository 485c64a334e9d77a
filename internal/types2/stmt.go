package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.ExprStmt:
		var x operand
		c.expr(&x, s.X)
		if x.mode == funcval {
			c.mismatch(x.pos, "function %s is not used", syntax.ExprString(s.X))
		}

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.BlockStmt:
		c.stmts(s.Stmts)

	case *syntax.IfStmt:
		c.cond(s.Cond, "if")
		c.stmt(s.Then)
		if s.Else != nil {
			c.stmt(s.Else)
		}

	case *syntax.ForStmt:
		if s.Init != nil {
			c.assignStmt(s.Init)
		}
		if s.Cond != nil {
			c.cond(s.Cond, "for")
		}
		if s.Post != nil {
			c.assignStmt(s.Post)
		}
		c.stmt(s.Body)

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.ReadStmt:
		c.target(s.Target, "read")

	case *syntax.WriteStmt:
		var x operand
		c.value(&x, s.X)

	case *syntax.DeclStmt:
		c.declStmt(s)

	default:
		c.mismatch(s.Pos(), "unexpected statement %T", s)
	}
}

// cond checks an if or for condition. Conditions must be int.
func (c *Checker) cond(e syntax.Expr, what string) {
	var x operand
	c.value(&x, e)
	if x.mode == invalid {
		return
	}
	if !types.IsInteger(x.typ) {
		c.mismatch(x.pos, "non-int condition %s in %s statement", &x, what)
	}
}

// target resolves the variable written by an assignment or read.
func (c *Checker) target(name *syntax.Name, what string) *types.Var {
	obj := c.resolve(name)
	if obj == nil {
		return nil
	}
	v, ok := obj.(*types.Var)
	if !ok {
		c.mismatch(name.Pos(), "cannot %s function %s", what, name.Value)
		return nil
	}
	c.recordType(name, &operand{mode: variable, typ: v.Type()})
	return v
}

// assignStmt checks plain and compound assignments.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	v := c.target(s.LHS, "assign to")

	var x operand
	c.value(&x, s.RHS)
	if v == nil || x.mode == invalid {
		return
	}

	if !s.IsCompound() {
		c.assignment(&x, v.Type(), "assignment")
		return
	}

	op := s.Op.Binary()
	if op == syntax.Rem {
		if !types.IsInteger(v.Type()) || !types.IsInteger(x.typ) {
			bad := &x
			if !types.IsInteger(v.Type()) {
				bad = &operand{mode: variable, pos: s.LHS.Pos(), typ: v.Type(), expr: s.LHS}
			}
			c.mismatch(bad.pos, "operator %s requires int operands, have %s", s.Op, bad)
		}
		return
	}

	if !types.IsNumeric(v.Type()) || !types.IsNumeric(x.typ) {
		bad := &x
		if !types.IsNumeric(v.Type()) {
			bad = &operand{mode: variable, pos: s.LHS.Pos(), typ: v.Type(), expr: s.LHS}
		}
		c.mismatch(bad.pos, "operator %s not defined on %s", s.Op, bad)
		return
	}
	res := operand{mode: value, pos: s.RHS.Pos(), typ: types.Promote(v.Type(), x.typ), expr: s.RHS}
	c.assignment(&res, v.Type(), "assignment")
}

// returnStmt checks a return statement against the enclosing function.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	if c.fn == nil {
		c.errorf(s.Pos(), ReturnTypeMismatch, "return outside function")
		return
	}

	result := c.fn.Signature().Result()
	if s.Result == nil {
		if !types.IsVoid(result) {
			c.errorf(s.Pos(), ReturnTypeMismatch, "missing return value in function %s returning %s", c.fn.Name(), result)
		}
		return
	}

	var x operand
	c.value(&x, s.Result)
	if x.mode == invalid {
		return
	}
	if types.IsVoid(result) {
		c.errorf(x.pos, ReturnTypeMismatch, "too many return values in void function %s", c.fn.Name())
		return
	}
	if !types.AssignableTo(x.typ, result) {
		c.errorf(x.pos, ReturnTypeMismatch, "cannot return %s from function %s returning %s", &x, c.fn.Name(), result)
	}
}

// declStmt checks the initializer of a global declaration.
func (c *Checker) declStmt(s *syntax.DeclStmt) {
	d := s.Decl
	if d.Value == nil {
		return
	}
	obj := c.varDecls[d]
	var x operand
	c.value(&x, d.Value)
	if obj == nil {
		return // redeclared
	}
	c.assignment(&x, obj.Type(), "variable declaration")
}
