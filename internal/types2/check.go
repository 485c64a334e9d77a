package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// Checker is the semantic analyzer.
type Checker struct {
	conf *Config
	info *Info
	pkg  *types.Package

	// Current checking context
	scope *types.Scope // program scope or the current function's parameter scope

	// Function context; nil while checking top-level statements
	fn *types.FuncObj

	// Function objects keyed by declaration, filled by collectDecls.
	// Lifecycle: allocated per Check invocation.
	funcDecls map[*syntax.FuncDecl]*types.FuncObj
	varDecls  map[*syntax.VarDecl]*types.Var

	// Error tracking
	errors int            // error count
	first  *SemanticError // first error
}

// checkProgram analyzes a whole program in two passes.
func (c *Checker) checkProgram(filename string, prog *syntax.Program) {
	c.pkg = types.NewPackage(filename)
	c.scope = c.pkg.Scope()

	// Pass 1: register every global and every function signature so
	// forward references resolve regardless of textual order.
	c.collectDecls(prog.Decls)

	// Pass 2: check function bodies and top-level statements in source order.
	funcs := funcDeclsOf(prog.Decls)
	stmts := prog.Stmts
	for len(funcs) > 0 || len(stmts) > 0 {
		if len(stmts) == 0 || len(funcs) > 0 && funcs[0].Pos().Before(stmts[0].Pos()) {
			c.funcBody(funcs[0])
			funcs = funcs[1:]
			continue
		}
		c.stmt(stmts[0])
		stmts = stmts[1:]
	}

	c.conf.Sizes.LayoutPackage(c.pkg)
}

func funcDeclsOf(decls []syntax.Decl) []*syntax.FuncDecl {
	var list []*syntax.FuncDecl
	for _, d := range decls {
		if fd, ok := d.(*syntax.FuncDecl); ok {
			list = append(list, fd)
		}
	}
	return list
}

// funcBody checks the body of a function inside its parameter scope.
func (c *Checker) funcBody(decl *syntax.FuncDecl) {
	obj := c.funcDecls[decl]
	if obj == nil {
		return // duplicate declaration, already reported
	}

	saved, savedFn := c.scope, c.fn
	c.scope, c.fn = obj.Scope(), obj
	defer func() { c.scope, c.fn = saved, savedFn }()

	c.stmts(decl.Body.Stmts)
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares an object in scope s.
// Reports a DuplicateDeclaration if the name is already declared there.
func (c *Checker) declare(s *types.Scope, name *syntax.Name, obj types.Object) bool {
	if existing := s.Insert(obj); existing != nil {
		c.errorf(name.Pos(), DuplicateDeclaration, "%s redeclared (previous declaration at %s)", name.Value, existing.Pos())
		return false
	}
	if c.info != nil {
		c.info.Defs[name] = obj
	}
	return true
}

// recordType records the type information for an expression.
func (c *Checker) recordType(e syntax.Expr, x *operand) {
	if c.info == nil {
		return
	}
	c.info.Types[e] = TypeAndValue{Type: x.typ, mode: x.mode}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
