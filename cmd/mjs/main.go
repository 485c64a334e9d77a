// Package main implements the mjs interpreter entry point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/you-not-fish/mjs/internal/config"
	"github.com/you-not-fish/mjs/internal/interp"
	"github.com/you-not-fish/mjs/internal/pipeline"
	"github.com/you-not-fish/mjs/internal/rtio"
	"github.com/you-not-fish/mjs/internal/syntax"
)

// Interpreter flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output typed AST")
	emitSymtab   = flag.Bool("emit-symtab", false, "Output symbol tables")
	symtabFormat = flag.String("symtab-format", "text", "Symbol table output format (text or yaml)")
	configPath   = flag.String("config", "", "YAML configuration file (default $MJS_CONFIG)")
	inputPath    = flag.String("input", "", "Read input lines from file instead of stdin")
	precision    = flag.Int("precision", 0, "Fractional digits for float output (overrides config)")
	maxDepth     = flag.Int("max-depth", 0, "Maximum call depth (overrides config)")
	noLimits     = flag.Bool("no-literal-limits", false, "Disable literal range limits")
	dumpStore    = flag.Bool("dump-store", false, "Print the global store after the run")
	version      = flag.Bool("version", false, "Print version")
	trace        = flag.Bool("trace", false, "Output timing trace")
)

// Version information
const Version = "0.1.0-dev"

// Exit codes
const (
	exitOK    = 0
	exitError = 1 // usage, I/O, lexical, syntax or semantic error
	exitFault = 2 // runtime fault
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "MJS Interpreter %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: mjs [options] <file.js>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("mjs version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(exitOK)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: mjs [options] <file.js>")
		os.Exit(exitError)
	}

	filename := args[0]

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(filename, conf))
	case *emitAST:
		os.Exit(runEmitAST(filename, conf))
	case *emitTypedAST:
		os.Exit(runEmitTypedAST(filename, conf))
	case *emitSymtab:
		os.Exit(runEmitSymtab(filename, conf))
	}

	os.Exit(runProgram(filename, conf))
}

// loadConfig resolves the configuration file and environment, then
// applies the command-line overrides.
func loadConfig() (config.Config, error) {
	conf, err := config.Resolve(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if *precision != 0 {
		conf.FloatPrecision = *precision
	}
	if *maxDepth != 0 {
		conf.MaxCallDepth = *maxDepth
	}
	if *noLimits {
		conf.LiteralLimits = false
	}
	if err := conf.Validate(); err != nil {
		return config.Config{}, err
	}
	return conf, nil
}

// compile opens filename and runs the static stages, printing any
// diagnostic. The unit is nil only when the file could not be parsed.
func compile(filename string, conf config.Config) (*pipeline.Unit, bool) {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil, false
	}
	defer f.Close()

	u, err := pipeline.Compile(filename, f, conf)
	if err != nil {
		report(err)
		return u, false
	}
	return u, true
}

// report prints a diagnostic for err on stderr.
func report(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", pipeline.Diagnose(err))
}

// runProgram compiles and executes filename.
func runProgram(filename string, conf config.Config) int {
	var logger *slog.Logger
	if *trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	u, ok := compile(filename, conf)
	if !ok {
		return exitError
	}

	in, closeInput, err := openInput(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer closeInput()

	res := pipeline.Exec(u, conf, in, rtio.NewWriterOutput(os.Stdout))

	if logger != nil {
		for _, t := range u.Timings {
			logger.Info("stage", "name", string(t.Stage), "duration", t.Duration)
		}
		logger.Info("run",
			"decls", len(u.Program.Decls),
			"stmts", res.Stats.Stmts,
			"calls", res.Stats.Calls,
			"max_depth", res.Stats.MaxDepth,
			"reads", res.Stats.Reads,
			"writes", res.Stats.Writes,
			"unused_inputs", res.Unused)
	}

	if *dumpStore {
		printStore(os.Stdout, res.Store)
	}

	if res.Err != nil {
		report(res.Err)
		var re *interp.RuntimeError
		if errors.As(res.Err, &re) {
			return exitFault
		}
		return exitError
	}
	return exitOK
}

// openInput selects where read statements take their lines from:
// scripted lines from the configuration first, then the -input file,
// an interactive prompt on a terminal, or plain stdin.
func openInput(conf config.Config) (rtio.Input, func(), error) {
	noop := func() {}
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return nil, noop, err
		}
		return rtio.NewLineInput(f), func() { f.Close() }, nil
	}
	if rtio.IsTerminal(os.Stdin.Fd()) {
		p := rtio.NewPromptInput(conf.Prompt)
		return p, func() { p.Close() }, nil
	}
	return rtio.NewLineInput(os.Stdin), noop, nil
}

// printStore writes every global in name order.
func printStore(w io.Writer, store []interp.Binding) {
	fmt.Fprintln(w, "=== Global Store ===")
	for _, b := range store {
		fmt.Fprintf(w, "%-12s %-6s %s\n", b.Name, b.Value.Kind(), b.Value)
	}
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string, conf config.Config) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer f.Close()

	s := syntax.NewScanner(filename, f, nil)
	s.SetLiteralLimits(conf.LiteralLimits)

	toks, err := syntax.Tokenize(s)
	printTokens(os.Stdout, toks)
	if err != nil {
		report(err)
		return exitError
	}
	return exitOK
}
