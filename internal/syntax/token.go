// Package syntax implements lexical and syntactic analysis for MJS.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	_EOF Token = iota // end of input

	// Literals
	_Name    // identifier: numeroA, sumar
	_Literal // literal value (used with LitKind)

	// Assignment operators
	_Assign    // =
	_AddAssign // +=
	_SubAssign // -=
	_MulAssign // *=
	_DivAssign // /=
	_RemAssign // %=

	// Comparison operators
	_Eql // ==
	_Neq // !=

	// Arithmetic operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Rem // % (applied by %=; a bare % is not part of the lexicon)

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Else
	_Float
	_For
	_Function
	_If
	_Int
	_Let
	_Read
	_Return
	_String
	_Void
	_Write

	tokenCount
)

var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign:    "=",
	_AddAssign: "+=",
	_SubAssign: "-=",
	_MulAssign: "*=",
	_DivAssign: "/=",
	_RemAssign: "%=",

	_Eql: "==",
	_Neq: "!=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Else:     "else",
	_Float:    "float",
	_For:      "for",
	_Function: "function",
	_If:       "if",
	_Int:      "int",
	_Let:      "let",
	_Read:     "read",
	_Return:   "return",
	_String:   "string",
	_Void:     "void",
	_Write:    "write",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the binary operator precedence of t, or 0 if t is
// not a binary operator.
//
//	1: == !=
//	2: + -
//	3: * /
func (t Token) Precedence() int {
	switch t {
	case _Eql, _Neq:
		return 1
	case _Add, _Sub:
		return 2
	case _Mul, _Div:
		return 3
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _Write
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsAssignOp reports whether t is = or one of the compound assignment operators.
func (t Token) IsAssignOp() bool {
	return t >= _Assign && t <= _RemAssign
}

// IsTypeKeyword reports whether t names a type (int, float, string, void).
func (t Token) IsTypeKeyword() bool {
	switch t {
	case _Int, _Float, _String, _Void:
		return true
	}
	return false
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Binary returns the arithmetic operator applied by a compound assignment
// token (_Add for +=, ...). For any other token it returns t unchanged.
func (t Token) Binary() Token {
	switch t {
	case _AddAssign:
		return _Add
	case _SubAssign:
		return _Sub
	case _MulAssign:
		return _Mul
	case _DivAssign:
		return _Div
	case _RemAssign:
		return _Rem
	}
	return t
}

// Exported operator tokens for the checker and interpreter.
const (
	Assign Token = _Assign
	Eql    Token = _Eql
	Neq    Token = _Neq
	Add    Token = _Add
	Sub    Token = _Sub
	Mul    Token = _Mul
	Div    Token = _Div
	Rem    Token = _Rem
	Not    Token = _Not
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	FloatLit                 // 3.14
	StringLit                // "hello"
)

var litKindNames = [...]string{
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

var keywords = map[string]Token{
	"else":     _Else,
	"float":    _Float,
	"for":      _For,
	"function": _Function,
	"if":       _If,
	"int":      _Int,
	"let":      _Let,
	"read":     _Read,
	"return":   _Return,
	"string":   _String,
	"void":     _Void,
	"write":    _Write,
}

// LookupKeyword returns the keyword token for ident, or _Name if ident is
// not a keyword.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
