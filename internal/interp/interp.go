package interp

import (
	"fmt"

	"github.com/you-not-fish/mjs/internal/rtio"
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
	"github.com/you-not-fish/mjs/internal/types2"
)

// Default limits.
const (
	DefaultFloatPrecision = 6
	DefaultMaxCallDepth   = 10000
)

// MaxCallDepthLimit caps MaxCallDepth. Each MJS call nests several Go
// frames, so the cap keeps the deepest program well inside the goroutine
// stack limit and recursion always ends in a StackOverflow fault.
const MaxCallDepthLimit = 50000

// Config controls execution.
type Config struct {
	// FloatPrecision is the number of fractional digits write renders
	// before trailing zeros are trimmed. Zero means DefaultFloatPrecision.
	FloatPrecision int

	// MaxCallDepth bounds the call stack; deeper calls fault with
	// StackOverflow. Zero means DefaultMaxCallDepth; values above
	// MaxCallDepthLimit are lowered to it.
	MaxCallDepth int
}

// Stats counts what a run did.
type Stats struct {
	Stmts    int // statements executed
	Calls    int // function calls
	MaxDepth int // deepest call stack
	Reads    int
	Writes   int
}

// frame binds the arguments of one active call.
type frame struct {
	fn   *types.FuncObj
	args []Value // indexed by parameter position
}

// Interpreter runs one checked program.
type Interpreter struct {
	conf  Config
	prog  *syntax.Program
	pkg   *types.Package
	info  *types2.Info
	in    rtio.Input
	out   rtio.Output
	store *Store

	funcs  map[*types.FuncObj]*syntax.FuncDecl
	lits   map[*syntax.BasicLit]Value
	frames []*frame
	pos    syntax.Pos // statement being executed
	stats  Stats
}

// New prepares prog for execution. pkg and info must come from a
// successful types2.Check of prog; info must have Defs and Uses filled.
func New(prog *syntax.Program, pkg *types.Package, info *types2.Info, in rtio.Input, out rtio.Output, conf Config) *Interpreter {
	if conf.FloatPrecision <= 0 {
		conf.FloatPrecision = DefaultFloatPrecision
	}
	if conf.MaxCallDepth <= 0 {
		conf.MaxCallDepth = DefaultMaxCallDepth
	}
	if conf.MaxCallDepth > MaxCallDepthLimit {
		conf.MaxCallDepth = MaxCallDepthLimit
	}
	ip := &Interpreter{
		conf:  conf,
		prog:  prog,
		pkg:   pkg,
		info:  info,
		in:    in,
		out:   out,
		store: NewStore(),
		funcs: make(map[*types.FuncObj]*syntax.FuncDecl),
		lits:  make(map[*syntax.BasicLit]Value),
	}
	syntax.Inspect(prog, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.FuncDecl:
			if fn, ok := info.Defs[n.Name].(*types.FuncObj); ok {
				ip.funcs[fn] = n
			}
		case *syntax.BasicLit:
			ip.lits[n] = decodeLit(n)
		}
		return true
	})
	for _, g := range pkg.Globals() {
		ip.store.Set(g.Name(), ZeroValue(g.Type()))
	}
	return ip
}

// Run executes the top-level statements in order. Output written before
// a fault stays written.
func (ip *Interpreter) Run() error {
	for _, s := range ip.prog.Stmts {
		if err := ip.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Call invokes the named function with args, as a call expression would.
func (ip *Interpreter) Call(name string, args ...Value) (Value, error) {
	fn, ok := ip.pkg.Scope().Lookup(name).(*types.FuncObj)
	if !ok {
		return Value{}, fmt.Errorf("interp: %s is not a function", name)
	}
	if n := fn.Signature().NumParams(); len(args) != n {
		return Value{}, fmt.Errorf("interp: %s takes %d arguments, got %d", name, n, len(args))
	}
	return ip.invoke(fn, args)
}

// Store returns the global store.
func (ip *Interpreter) Store() *Store {
	return ip.store
}

// Stats returns execution counters.
func (ip *Interpreter) Stats() Stats {
	return ip.stats
}

// fault builds a RuntimeError at the current statement.
func (ip *Interpreter) fault(kind FaultKind, err error, msg string) *RuntimeError {
	return &RuntimeError{Pos: ip.pos, Kind: kind, Msg: msg, Err: err}
}

// top returns the active frame, or nil at top level.
func (ip *Interpreter) top() *frame {
	if len(ip.frames) == 0 {
		return nil
	}
	return ip.frames[len(ip.frames)-1]
}

// variable returns the object a name refers to.
func (ip *Interpreter) variable(name *syntax.Name) *types.Var {
	v, _ := ip.info.Uses[name].(*types.Var)
	return v
}

// load reads a parameter of the active frame or a global.
func (ip *Interpreter) load(v *types.Var) Value {
	if v.IsParam() {
		return ip.top().args[v.Index()]
	}
	val, _ := ip.store.Get(v.Name())
	return val
}

// assign stores val, converted to v's declared type.
func (ip *Interpreter) assign(v *types.Var, val Value) {
	val = convert(val, v.Type())
	if v.IsParam() {
		ip.top().args[v.Index()] = val
		return
	}
	ip.store.Set(v.Name(), val)
}
