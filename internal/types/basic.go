package types

import "strconv"

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Int
	Float
	String
	Void
)

func (k BasicKind) String() string {
	if k >= 0 && int(k) < len(Typ) {
		return Typ[k].name
	}
	return "BasicKind(" + strconv.Itoa(int(k)) + ")"
}

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	InfoInteger BasicInfo = 1 << iota
	InfoFloat
	InfoString
	InfoVoid
	InfoNumeric = InfoInteger | InfoFloat
)

// Basic represents a basic type: int, float, string or void.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is the type of erroneous expressions.
var Typ = []*Basic{
	Invalid: {kind: Invalid, name: "invalid type"},
	Int:     {kind: Int, info: InfoInteger, name: "int"},
	Float:   {kind: Float, info: InfoFloat, name: "float"},
	String:  {kind: String, info: InfoString, name: "string"},
	Void:    {kind: Void, info: InfoVoid, name: "void"},
}
