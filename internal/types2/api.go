package types2

import (
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// Config specifies the configuration for semantic analysis.
type Config struct {
	// Error is called for each semantic error.
	// If nil, errors are only returned.
	Error ErrorHandler

	// AllErrors keeps checking after the first error.
	// By default checking stops at the first error.
	AllErrors bool

	// Sizes computes symbol offsets.
	// If nil, DefaultSizes is used.
	Sizes *types.Sizes
}

// Info holds the results of semantic analysis.
type Info struct {
	// Types maps expressions to their types.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps defining identifiers (globals, functions, parameters)
	// to their declared objects.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to the objects they denote.
	Uses map[*syntax.Name]types.Object
}

// TypeAndValue holds the type information for an expression.
type TypeAndValue struct {
	Type types.Type  // expression type; nil for calls of void functions
	mode operandMode // operand mode
}

// IsVoid reports whether the expression has no value (void function call).
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsAddressable reports whether the expression denotes a variable.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// IsValue reports whether the expression has a value.
func (tv TypeAndValue) IsValue() bool {
	return tv.mode == variable || tv.mode == value
}

// Check analyzes a parsed program.
// It returns the package for the program and the first error
// encountered, if any. The error is a *SemanticError.
func Check(filename string, prog *syntax.Program, conf *Config, info *Info) (pkg *types.Package, err error) {
	if conf == nil {
		conf = &Config{}
	}
	if conf.Sizes == nil {
		conf.Sizes = types.DefaultSizes
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]TypeAndValue)
		}
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
	}

	c := &Checker{
		conf:      conf,
		info:      info,
		funcDecls: make(map[*syntax.FuncDecl]*types.FuncObj),
		varDecls:  make(map[*syntax.VarDecl]*types.Var),
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
		pkg = c.pkg
		if c.errors > 0 {
			err = c.first
		}
	}()

	c.checkProgram(filename, prog)
	return
}
