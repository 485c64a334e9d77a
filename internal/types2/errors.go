// Package types2 implements semantic analysis for MJS: name resolution
// and type checking of a parsed program.
package types2

import (
	"fmt"

	"github.com/you-not-fish/mjs/internal/syntax"
)

// SemanticKind classifies semantic errors.
type SemanticKind int

const (
	UndefinedSymbol SemanticKind = iota
	DuplicateDeclaration
	TypeMismatch
	ArityMismatch
	ReturnTypeMismatch
)

var semanticKindNames = [...]string{
	UndefinedSymbol:      "UndefinedSymbol",
	DuplicateDeclaration: "DuplicateDeclaration",
	TypeMismatch:         "TypeMismatch",
	ArityMismatch:        "ArityMismatch",
	ReturnTypeMismatch:   "ReturnTypeMismatch",
}

func (k SemanticKind) String() string {
	if int(k) < len(semanticKindNames) {
		return semanticKindNames[k]
	}
	return fmt.Sprintf("SemanticKind(%d)", k)
}

// SemanticError represents a semantic analysis error.
type SemanticError struct {
	Pos  syntax.Pos
	Kind SemanticKind
	Msg  string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each semantic error.
type ErrorHandler func(pos syntax.Pos, msg string)

// bailout is panicked to stop checking after the first error.
type bailout struct{}

// errorf reports a semantic error at the given position.
// Unless Config.AllErrors is set, checking stops at the first error.
func (c *Checker) errorf(pos syntax.Pos, kind SemanticKind, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if c.errors == 0 {
		c.first = &SemanticError{Pos: pos, Kind: kind, Msg: msg}
	}
	c.errors++

	if c.conf.Error != nil {
		c.conf.Error(pos, msg)
	}

	if !c.conf.AllErrors {
		panic(bailout{})
	}
}

// mismatch reports a TypeMismatch.
func (c *Checker) mismatch(pos syntax.Pos, format string, args ...interface{}) {
	c.errorf(pos, TypeMismatch, format, args...)
}
