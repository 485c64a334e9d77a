package interp

import (
	"fmt"

	"github.com/you-not-fish/mjs/internal/syntax"
)

// FaultKind classifies runtime faults.
type FaultKind int

const (
	DivisionByZero FaultKind = iota
	ModuloByZero
	InputFormatError
	MissingReturn
	StackOverflow
	OutputError
)

var faultKindNames = [...]string{
	DivisionByZero:   "DivisionByZero",
	ModuloByZero:     "ModuloByZero",
	InputFormatError: "InputFormatError",
	MissingReturn:    "MissingReturn",
	StackOverflow:    "StackOverflow",
	OutputError:      "OutputError",
}

func (k FaultKind) String() string {
	if int(k) < len(faultKindNames) {
		return faultKindNames[k]
	}
	return fmt.Sprintf("FaultKind(%d)", k)
}

// RuntimeError is a fault that stopped execution. Pos is the statement
// being executed when the fault occurred.
type RuntimeError struct {
	Pos  syntax.Pos
	Kind FaultKind
	Msg  string
	Err  error // underlying I/O or parse error, if any
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns the underlying error.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// returnSignal unwinds a function body on return. It never escapes Call.
type returnSignal struct {
	value Value
	ok    bool // a value was returned
}

func (returnSignal) Error() string {
	return "return"
}
