package types

import "github.com/you-not-fish/mjs/internal/rtabi"

// Sizes assigns storage widths and symbol offsets.
// It uses the rtabi widths so reports and layout agree.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Sizeof returns the storage width of type T in slots.
func (s *Sizes) Sizeof(T Type) int64 {
	switch t := T.(type) {
	case *Basic:
		return s.basicSize(t.Kind())
	case *Func:
		// functions occupy no data storage
		return 0
	}
	return 0
}

// Layout assigns offsets to every object in scope, in insertion order,
// starting at 0. Each object advances the offset by the width of its type.
// It returns the total width of the table.
func (s *Sizes) Layout(scope *Scope) int64 {
	var offset int64
	for _, obj := range scope.Elems() {
		switch o := obj.(type) {
		case *Var:
			o.offset = offset
			offset += s.Sizeof(o.Type())
		case *FuncObj:
			o.offset = offset
		}
	}
	return offset
}

// LayoutPackage lays out the program scope and every function scope.
func (s *Sizes) LayoutPackage(pkg *Package) {
	s.Layout(pkg.Scope())
	for _, f := range pkg.Funcs() {
		if f.Scope() != nil {
			s.Layout(f.Scope())
		}
	}
}

func (s *Sizes) basicSize(kind BasicKind) int64 {
	switch kind {
	case Int:
		return rtabi.WidthInt
	case Float:
		return rtabi.WidthFloat
	case String:
		return rtabi.WidthString
	}
	return 0
}
