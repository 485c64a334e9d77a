package types

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/mjs/internal/syntax"
)

// Scope is a symbol table.
// MJS has three levels: the Universe (type names), the program scope
// (globals and functions, one flat namespace) and one parameter scope per
// function. Blocks do not open scopes.
type Scope struct {
	parent  *Scope
	elems   map[string]Object
	order   []Object
	pos     syntax.Pos
	comment string // "program", "function sumar"
}

// NewScope creates an empty scope nested in parent.
func NewScope(parent *Scope, pos syntax.Pos, comment string) *Scope {
	return &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		comment: comment,
	}
}

// Parent returns the enclosing scope, or nil for the Universe.
func (s *Scope) Parent() *Scope { return s.parent }

// Pos returns the position that opened the scope.
func (s *Scope) Pos() syntax.Pos { return s.pos }

// Comment returns the scope's description.
func (s *Scope) Comment() string { return s.comment }

// Lookup returns the object named name in s itself, or nil.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent searches s and then its enclosing scopes for name and
// returns the object with the scope that holds it, or (nil, nil).
// A parameter therefore hides a global of the same name.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert adds obj to s. If s already holds an object with the same name,
// s is unchanged and that object is returned.
func (s *Scope) Insert(obj Object) Object {
	if prev := s.elems[obj.Name()]; prev != nil {
		return prev
	}
	s.elems[obj.Name()] = obj
	s.order = append(s.order, obj)
	obj.setParent(s)
	return nil
}

// Elems returns the objects of s in declaration order.
func (s *Scope) Elems() []Object {
	return s.order
}

// Len returns the number of objects declared in s.
func (s *Scope) Len() int {
	return len(s.order)
}

// String renders s in declaration order, one symbol per line.
func (s *Scope) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", s.comment)
	for _, obj := range s.order {
		fmt.Fprintf(&b, "\t%s %s %s\n", obj.Kind(), obj.Name(), obj.Type())
	}
	b.WriteString("}")
	return b.String()
}
