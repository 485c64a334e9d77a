package types

import (
	"fmt"

	"github.com/you-not-fish/mjs/internal/syntax"
)

// ObjKind classifies declared entities.
type ObjKind int

const (
	GlobalVar ObjKind = iota
	Function
	Param
	TypeObj
)

var objKindNames = [...]string{
	GlobalVar: "global",
	Function:  "function",
	Param:     "param",
	TypeObj:   "type",
}

func (k ObjKind) String() string {
	if int(k) < len(objKindNames) {
		return objKindNames[k]
	}
	return fmt.Sprintf("ObjKind(%d)", k)
}

// Object represents a declared entity: global variable, parameter,
// function or predeclared type name.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope
	Kind() ObjKind   // entity class

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a global variable or a function parameter.
type Var struct {
	object
	param  bool
	index  int   // parameter position; -1 for globals
	offset int64 // storage offset within the owning table
}

// NewGlobal creates a global variable object.
func NewGlobal(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, index: -1}
}

// NewParam creates the parameter object for position index.
func NewParam(pos syntax.Pos, name string, typ Type, index int) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, param: true, index: index}
}

// Kind implements Object.
func (v *Var) Kind() ObjKind {
	if v.param {
		return Param
	}
	return GlobalVar
}

// IsParam reports whether v is a function parameter.
func (v *Var) IsParam() bool {
	return v.param
}

// Index returns the parameter position, or -1 for a global.
func (v *Var) Index() int {
	return v.index
}

// Offset returns the storage offset assigned by Sizes.Layout.
func (v *Var) Offset() int64 {
	return v.offset
}

// TypeName represents a predeclared type name.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// Kind implements Object.
func (*TypeName) Kind() ObjKind { return TypeObj }

// FuncObj represents a declared function.
type FuncObj struct {
	object
	sig    *Func  // function signature (set after construction)
	scope  *Scope // parameter scope (set after construction)
	offset int64
}

// NewFuncObj creates a new function object.
// The signature should be set later using SetSignature.
func NewFuncObj(pos syntax.Pos, name string) *FuncObj {
	return &FuncObj{object: object{name: name, pos: pos}}
}

// Kind implements Object.
func (*FuncObj) Kind() ObjKind { return Function }

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// SetSignature sets the function signature.
// This is called during checking once the parameter types are resolved.
func (f *FuncObj) SetSignature(sig *Func) {
	f.sig = sig
	f.typ = sig
}

// Scope returns the function's parameter scope.
func (f *FuncObj) Scope() *Scope {
	return f.scope
}

// SetScope records the function's parameter scope.
func (f *FuncObj) SetScope(s *Scope) {
	f.scope = s
}

// Offset returns the storage offset of the function's entry in the global table.
func (f *FuncObj) Offset() int64 {
	return f.offset
}
