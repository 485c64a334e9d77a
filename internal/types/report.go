package types

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/mjs/internal/rtabi"
)

// Report is a serializable view of the symbol tables of a checked program:
// the program table first, then one table per function in source order.
type Report struct {
	Tables []Table `yaml:"tables"`
}

// Table is one symbol table.
type Table struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Symbols []Entry `yaml:"symbols"`
}

// Entry describes one symbol.
type Entry struct {
	Lexeme     string   `yaml:"lexeme"`
	Kind       string   `yaml:"kind"`
	Type       string   `yaml:"type"`
	Offset     *int64   `yaml:"offset,omitempty"`
	NumParams  *int     `yaml:"num_params,omitempty"`
	ParamTypes []string `yaml:"param_types,omitempty"`
	ParamModes []string `yaml:"param_modes,omitempty"`
	Result     string   `yaml:"result,omitempty"`
}

// NewReport builds the report for pkg. Offsets are computed with sizes
// (DefaultSizes if nil).
func NewReport(pkg *Package, sizes *Sizes) *Report {
	if sizes == nil {
		sizes = DefaultSizes
	}
	sizes.LayoutPackage(pkg)

	r := &Report{}
	r.Tables = append(r.Tables, newTable(1, "program", pkg.Scope()))
	for i, f := range pkg.Funcs() {
		if f.Scope() == nil {
			continue
		}
		r.Tables = append(r.Tables, newTable(i+2, "function "+f.Name(), f.Scope()))
	}
	return r
}

func newTable(id int, name string, scope *Scope) Table {
	t := Table{ID: id, Name: name, Symbols: []Entry{}}
	for _, obj := range scope.Elems() {
		t.Symbols = append(t.Symbols, newEntry(obj))
	}
	return t
}

func newEntry(obj Object) Entry {
	e := Entry{Lexeme: obj.Name(), Type: obj.Type().String()}
	switch o := obj.(type) {
	case *Var:
		off := o.Offset()
		e.Offset = &off
		e.Kind = rtabi.KindGlobal
		if o.IsParam() {
			e.Kind = rtabi.KindParam
		}
	case *FuncObj:
		e.Kind = rtabi.KindFunction
		sig := o.Signature()
		n := sig.NumParams()
		e.NumParams = &n
		for _, p := range sig.Params() {
			e.ParamTypes = append(e.ParamTypes, p.Type().String())
			e.ParamModes = append(e.ParamModes, rtabi.ParamMode)
		}
		e.Result = sig.Result().String()
	}
	return e
}

// WriteReport writes r in a line-oriented text format.
func WriteReport(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	for _, t := range r.Tables {
		ew.printf("%s #%d:\n", t.Name, t.ID)
		for _, e := range t.Symbols {
			ew.printf("* %s '%s'\n", e.Kind, e.Lexeme)
			ew.printf("  + type: %s\n", e.Type)
			if e.Offset != nil {
				ew.printf("  + offset: %d\n", *e.Offset)
			}
			if e.NumParams != nil {
				ew.printf("  + params: %d\n", *e.NumParams)
				for i, pt := range e.ParamTypes {
					ew.printf("  + param %d: %s (%s)\n", i+1, pt, e.ParamModes[i])
				}
				ew.printf("  + result: %s\n", e.Result)
			}
		}
		ew.printf("\n")
	}
	return ew.err
}

// WriteReportYAML writes r as a YAML document.
func WriteReportYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("symtab: encode yaml: %w", err)
	}
	return enc.Close()
}

// errWriter remembers the first write error so report printing can stay
// linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
