// Package rtabi defines the storage widths shared by the symbol table
// layout and the reports built from it.
package rtabi

// Storage widths, in slots, used to assign symbol offsets.
// A string reserves room for its longest literal. Functions and void
// take no storage.
const (
	WidthInt    = 1
	WidthFloat  = 1
	WidthString = 64
)

// Symbol kinds as they appear in symbol-table reports.
const (
	KindGlobal   = "global"
	KindFunction = "function"
	KindParam    = "param"
)

// ParamMode is the passing mode recorded for every parameter.
// MJS passes all arguments by value.
const ParamMode = "value"
