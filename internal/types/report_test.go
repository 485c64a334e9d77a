package types

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// buildSumar declares: let int temp; let string msg; function int sumar(int a, int b)
func buildSumar() *Package {
	pkg := NewPackage("t.js")
	pkg.Scope().Insert(NewGlobal(NoPos, "temp", Typ[Int]))
	pkg.Scope().Insert(NewGlobal(NoPos, "msg", Typ[String]))

	f := NewFuncObj(NoPos, "sumar")
	fs := NewScope(pkg.Scope(), NoPos, "function sumar")
	a := NewParam(NoPos, "a", Typ[Int], 0)
	b := NewParam(NoPos, "b", Typ[Int], 1)
	fs.Insert(a)
	fs.Insert(b)
	f.SetSignature(NewFunc([]*Var{a, b}, Typ[Int]))
	f.SetScope(fs)
	pkg.Scope().Insert(f)
	pkg.AddFunc(f)
	return pkg
}

func TestReportText(t *testing.T) {
	r := NewReport(buildSumar(), nil)

	var buf bytes.Buffer
	if err := WriteReport(&buf, r); err != nil {
		t.Fatal(err)
	}

	want := `program #1:
* global 'temp'
  + type: int
  + offset: 0
* global 'msg'
  + type: string
  + offset: 1
* function 'sumar'
  + type: function(int, int) int
  + params: 2
  + param 1: int (value)
  + param 2: int (value)
  + result: int

function sumar #2:
* param 'a'
  + type: int
  + offset: 0
* param 'b'
  + type: int
  + offset: 1

`
	if got := buf.String(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportYAML(t *testing.T) {
	r := NewReport(buildSumar(), nil)

	var buf bytes.Buffer
	if err := WriteReportYAML(&buf, r); err != nil {
		t.Fatal(err)
	}

	var back Report
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("report is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(back.Tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(back.Tables))
	}
	fn := back.Tables[0].Symbols[2]
	if fn.Kind != "function" || fn.NumParams == nil || *fn.NumParams != 2 || fn.Result != "int" {
		t.Errorf("function entry = %+v", fn)
	}
	if !strings.Contains(buf.String(), "name: function sumar") {
		t.Errorf("missing function table:\n%s", buf.String())
	}
}

func TestReportEmptyFunction(t *testing.T) {
	pkg := NewPackage("t.js")
	f := NewFuncObj(NoPos, "inicializar")
	f.SetSignature(NewFunc(nil, Typ[Void]))
	f.SetScope(NewScope(pkg.Scope(), NoPos, "function inicializar"))
	pkg.Scope().Insert(f)
	pkg.AddFunc(f)

	r := NewReport(pkg, DefaultSizes)
	if len(r.Tables) != 2 || len(r.Tables[1].Symbols) != 0 {
		t.Fatalf("tables = %+v", r.Tables)
	}
	if e := r.Tables[0].Symbols[0]; e.Result != "void" || *e.NumParams != 0 {
		t.Errorf("entry = %+v", e)
	}
}
