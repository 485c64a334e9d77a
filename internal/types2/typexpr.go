package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// typExpr resolves a type keyword to its predeclared type.
// The parser only produces int, float, string and void.
func (c *Checker) typExpr(t *syntax.BasicType) types.Type {
	obj := types.Universe.Lookup(t.Name())
	if tn, ok := obj.(*types.TypeName); ok {
		return tn.Type()
	}
	c.errorf(t.Pos(), UndefinedSymbol, "undefined type %s", t.Name())
	return types.Typ[types.Invalid]
}
