// Package pipeline runs MJS source through every stage: parsing,
// semantic analysis and execution.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/you-not-fish/mjs/internal/config"
	"github.com/you-not-fish/mjs/internal/interp"
	"github.com/you-not-fish/mjs/internal/rtio"
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
	"github.com/you-not-fish/mjs/internal/types2"
)

// Stage names a pipeline stage.
type Stage string

const (
	StageParse Stage = "parse" // lexing and parsing
	StageCheck Stage = "check"
	StageRun   Stage = "run"
)

// Timing records how long a stage took.
type Timing struct {
	Stage    Stage
	Duration time.Duration
}

// Unit is a parsed and checked program ready to run.
type Unit struct {
	Filename string
	Program  *syntax.Program
	Package  *types.Package
	Info     *types2.Info
	Timings  []Timing
}

// Compile parses and checks src. It stops at the first lexical, syntax or
// semantic error. The returned Unit is non-nil whenever parsing succeeded,
// so a caller can still inspect the tree of a program that fails checking.
func Compile(filename string, src io.Reader, conf config.Config) (*Unit, error) {
	u := &Unit{Filename: filename}

	start := time.Now()
	p := syntax.NewParser(filename, src, nil)
	p.SetLiteralLimits(conf.LiteralLimits)
	prog := p.Parse()
	u.Timings = append(u.Timings, Timing{StageParse, time.Since(start)})
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	u.Program = prog

	start = time.Now()
	u.Info = &types2.Info{}
	pkg, err := types2.Check(filename, prog, &types2.Config{Sizes: types.DefaultSizes}, u.Info)
	u.Timings = append(u.Timings, Timing{StageCheck, time.Since(start)})
	u.Package = pkg
	if err != nil {
		return u, err
	}
	return u, nil
}

// Result is the outcome of running a program.
type Result struct {
	Unit    *Unit            // nil if parsing failed
	Outputs []string         // every line written, in order, up to any fault
	Store   []interp.Binding // final global store, in name order; nil on static errors
	Stats   interp.Stats
	Unused  int   // scripted inputs left unread
	Err     error // *syntax.LexError, *syntax.ParseError, *types2.SemanticError or *interp.RuntimeError
}

// Run compiles and executes src. Scripted inputs from conf are consumed
// before in, which may be nil. Every line written is forwarded to out,
// which may also be nil. A program with a static error performs no input
// or output.
func Run(filename string, src io.Reader, conf config.Config, in rtio.Input, out rtio.Output) *Result {
	res := &Result{}
	u, err := Compile(filename, src, conf)
	res.Unit = u
	if err != nil {
		res.Err = err
		return res
	}
	return execute(u, conf, in, out, res)
}

// Exec runs an already compiled unit.
func Exec(u *Unit, conf config.Config, in rtio.Input, out rtio.Output) *Result {
	return execute(u, conf, in, out, &Result{Unit: u})
}

func execute(u *Unit, conf config.Config, in rtio.Input, out rtio.Output, res *Result) *Result {
	var scripted *rtio.ScriptedInput
	if len(conf.Inputs) > 0 || in == nil {
		scripted = rtio.NewScriptedInput(conf.Inputs, in)
		in = scripted
	}
	rec := rtio.NewRecorder(out)

	ip := interp.New(u.Program, u.Package, u.Info, in, rec, interp.Config{
		FloatPrecision: conf.FloatPrecision,
		MaxCallDepth:   conf.MaxCallDepth,
	})
	start := time.Now()
	res.Err = ip.Run()
	u.Timings = append(u.Timings, Timing{StageRun, time.Since(start)})

	res.Outputs = rec.Lines()
	res.Store = ip.Store().Snapshot()
	res.Stats = ip.Stats()
	if scripted != nil {
		res.Unused = scripted.Remaining()
	}
	return res
}

// Diagnostic is the reportable form of a pipeline error.
type Diagnostic struct {
	Kind string // LexError, ParseError, a SemanticKind or a FaultKind
	Pos  syntax.Pos
	Msg  string
}

func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Msg)
}

// Static reports whether d was found before execution.
func (d Diagnostic) Static() bool {
	switch d.Kind {
	case "LexError", "ParseError":
		return true
	}
	for k := types2.UndefinedSymbol; k <= types2.ReturnTypeMismatch; k++ {
		if d.Kind == k.String() {
			return true
		}
	}
	return false
}

// Diagnose converts an error returned by Compile or Run into a Diagnostic.
func Diagnose(err error) Diagnostic {
	var (
		lexErr   *syntax.LexError
		parseErr *syntax.ParseError
		semErr   *types2.SemanticError
		rtErr    *interp.RuntimeError
	)
	switch {
	case errors.As(err, &lexErr):
		return Diagnostic{Kind: "LexError", Pos: lexErr.Pos, Msg: lexErr.Msg}
	case errors.As(err, &parseErr):
		return Diagnostic{Kind: "ParseError", Pos: parseErr.Pos, Msg: parseErr.Msg()}
	case errors.As(err, &semErr):
		return Diagnostic{Kind: semErr.Kind.String(), Pos: semErr.Pos, Msg: semErr.Msg}
	case errors.As(err, &rtErr):
		return Diagnostic{Kind: rtErr.Kind.String(), Pos: rtErr.Pos, Msg: rtErr.Msg}
	}
	return Diagnostic{Kind: "error", Msg: err.Error()}
}
