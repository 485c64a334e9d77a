package types

// Package represents a checked MJS program: its program scope and the
// functions declared in it, in source order.
type Package struct {
	name  string
	scope *Scope
	funcs []*FuncObj
}

// NewPackage creates a new package with the given name.
func NewPackage(name string) *Package {
	return &Package{
		name:  name,
		scope: NewScope(Universe, NoPos, "program"),
	}
}

// Name returns the package name (the source file name).
func (p *Package) Name() string {
	return p.name
}

// Scope returns the program scope holding globals and functions.
func (p *Package) Scope() *Scope {
	return p.scope
}

// AddFunc records a declared function.
func (p *Package) AddFunc(f *FuncObj) {
	p.funcs = append(p.funcs, f)
}

// Funcs returns the declared functions in source order.
func (p *Package) Funcs() []*FuncObj {
	return p.funcs
}

// Globals returns the global variables in declaration order.
func (p *Package) Globals() []*Var {
	var vars []*Var
	for _, obj := range p.scope.Elems() {
		if v, ok := obj.(*Var); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// String returns the package name.
func (p *Package) String() string {
	return p.name
}
