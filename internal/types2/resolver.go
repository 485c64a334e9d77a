package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// collectDecls registers every global and function of the program scope.
func (c *Checker) collectDecls(decls []syntax.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *syntax.VarDecl:
			c.collectVarDecl(decl)
		case *syntax.FuncDecl:
			c.collectFuncDecl(decl)
		}
	}
}

// collectVarDecl declares a global variable.
func (c *Checker) collectVarDecl(decl *syntax.VarDecl) {
	typ := c.typExpr(decl.Type)
	obj := types.NewGlobal(decl.Name.Pos(), decl.Name.Value, typ)
	if c.declare(c.pkg.Scope(), decl.Name, obj) {
		c.varDecls[decl] = obj
	}
}

// collectFuncDecl declares a function and resolves its signature.
func (c *Checker) collectFuncDecl(decl *syntax.FuncDecl) {
	obj := types.NewFuncObj(decl.Name.Pos(), decl.Name.Value)
	if !c.declare(c.pkg.Scope(), decl.Name, obj) {
		return
	}

	scope := types.NewScope(c.pkg.Scope(), decl.Pos(), "function "+decl.Name.Value)
	params := make([]*types.Var, 0, len(decl.Params))
	for i, p := range decl.Params {
		v := types.NewParam(p.Name.Pos(), p.Name.Value, c.typExpr(p.Type), i)
		c.declare(scope, p.Name, v)
		params = append(params, v)
	}

	obj.SetSignature(types.NewFunc(params, c.typExpr(decl.Result)))
	obj.SetScope(scope)
	c.pkg.AddFunc(obj)
	c.funcDecls[decl] = obj
}

// resolve resolves a name to an object.
// Reports an UndefinedSymbol if the name is not declared.
func (c *Checker) resolve(name *syntax.Name) types.Object {
	obj := c.lookup(name.Value)
	if obj == nil || obj.Kind() == types.TypeObj {
		c.errorf(name.Pos(), UndefinedSymbol, "undefined: %s", name.Value)
		return nil
	}
	c.recordUse(name, obj)
	return obj
}
