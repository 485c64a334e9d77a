package types2

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// parseAndCheck parses source code and runs the checker.
// Returns the package, the reported messages and the first error.
func parseAndCheck(t *testing.T, src string) (*types.Package, *Info, []string, error) {
	t.Helper()
	p := syntax.NewParser("test.js", strings.NewReader(src), nil)
	prog := p.Parse()
	if err := p.FirstError(); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var msgs []string
	conf := &Config{
		Error: func(pos syntax.Pos, msg string) {
			msgs = append(msgs, pos.String()+": "+msg)
		},
		Sizes: types.DefaultSizes,
	}
	info := &Info{}
	pkg, err := Check("test.js", prog, conf, info)
	return pkg, info, msgs, err
}

// expectNoErrors checks that the program passes analysis.
func expectNoErrors(t *testing.T, src string) *types.Package {
	t.Helper()
	pkg, _, msgs, err := parseAndCheck(t, src)
	if err != nil {
		t.Errorf("unexpected errors:\n%s", strings.Join(msgs, "\n"))
	}
	return pkg
}

// expectError checks that analysis stops with an error of the given kind
// whose message contains msg.
func expectError(t *testing.T, src string, kind SemanticKind, msg string) {
	t.Helper()
	_, _, msgs, err := parseAndCheck(t, src)
	if err == nil {
		t.Fatalf("expected %s error containing %q, got none", kind, msg)
	}
	var se *SemanticError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is %T, want *SemanticError", err, err)
	}
	if se.Kind != kind {
		t.Errorf("kind = %s, want %s (%v)", se.Kind, kind, err)
	}
	if !strings.Contains(se.Msg, msg) {
		t.Errorf("expected error containing %q, got %q", msg, se.Msg)
	}
	if len(msgs) != 1 {
		t.Errorf("got %d reported errors, want 1:\n%s", len(msgs), strings.Join(msgs, "\n"))
	}
}

func TestReferenceProgram(t *testing.T) {
	src, err := os.ReadFile("../pipeline/testdata/ejemplo.js")
	if err != nil {
		t.Fatal(err)
	}
	pkg := expectNoErrors(t, string(src))
	if pkg == nil {
		t.Fatal("nil package")
	}

	globals := pkg.Globals()
	if len(globals) != 8 {
		t.Errorf("got %d globals, want 8", len(globals))
	}
	if n := len(pkg.Funcs()); n != 7 {
		t.Errorf("got %d functions, want 7", n)
	}
	f, ok := pkg.Scope().Lookup("procesarReal").(*types.FuncObj)
	if !ok {
		t.Fatal("procesarReal not declared as function")
	}
	if got := f.Signature().String(); got != "function(float) float" {
		t.Errorf("procesarReal signature = %s", got)
	}
}

func TestDeclarations(t *testing.T) {
	expectNoErrors(t, `
let int a;
let float b = 2;
let string s = "hola";
function void f() { a = 1; }
f();
`)
}

func TestForwardReference(t *testing.T) {
	// Functions and globals are visible to code that precedes them.
	expectNoErrors(t, `
function int twice(int n) { x = n; return g(n) + x; }
function int g(int n) { return n; }
let int x;
write(twice(2));
`)
}

func TestRecursion(t *testing.T) {
	expectNoErrors(t, `
function int fact(int n) {
	if (n == 0) return 1;
	return n * fact(n - 1);
}
write(fact(5));
`)
}

func TestParamShadowsGlobal(t *testing.T) {
	pkg, info, _, err := parseAndCheck(t, `
let string n;
function int f(int n) { return n + 1; }
`)
	if err != nil {
		t.Fatal(err)
	}
	fn := pkg.Scope().Lookup("f").(*types.FuncObj)
	param := fn.Scope().Lookup("n")
	for name, obj := range info.Uses {
		if name.Value == "n" && obj != param {
			t.Errorf("use of n at %s resolved to %s %s, want the parameter", name.Pos(), obj.Kind(), obj.Type())
		}
	}
}

func TestIntToFloatPromotion(t *testing.T) {
	expectNoErrors(t, `
let float r;
let int i;
function float h(float x) { return i; }
r = i;
r = i + 2.5;
r = h(3);
r += 1;
`)
}

func TestExprTypes(t *testing.T) {
	_, info, _, err := parseAndCheck(t, `
let int i;
let float r;
write(i + r);
write(i == r);
write(!(i == 0));
`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"i + r":     "float",
		"i == r":    "int",
		"!(i == 0)": "int",
		"i":         "int",
		"r":         "float",
	}
	seen := map[string]bool{}
	for e, tv := range info.Types {
		s := syntax.ExprString(e)
		if typ, ok := want[s]; ok {
			seen[s] = true
			if tv.Type.String() != typ {
				t.Errorf("type of %s = %s, want %s", s, tv.Type, typ)
			}
		}
	}
	for s := range want {
		if !seen[s] {
			t.Errorf("no type recorded for %s", s)
		}
	}
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind SemanticKind
		msg  string
	}{
		{"undefined var", `x = 1;`, UndefinedSymbol, "undefined: x"},
		{"undefined func", `write(f());`, UndefinedSymbol, "undefined: f"},
		{"duplicate global", "let int a;\nlet float a;", DuplicateDeclaration, "a redeclared"},
		{"duplicate func", "function void f() {}\nfunction void f() {}", DuplicateDeclaration, "f redeclared"},
		{"global and func", "let int f;\nfunction void f() {}", DuplicateDeclaration, "f redeclared"},
		{"duplicate param", `function void f(int a, float a) {}`, DuplicateDeclaration, "a redeclared"},
		{"float to int", "let int a;\na = 1.5;", TypeMismatch, "cannot use 1.5 (float) as int value"},
		{"string to int", "let int a = \"x\";", TypeMismatch, "variable declaration"},
		{"string arith", "let string s;\nwrite(s + 1);", TypeMismatch, "operator + not defined on s (string)"},
		{"string compare", "let string s;\nlet string t;\nwrite(s == t);", TypeMismatch, "operator == not defined"},
		{"not on float", "let float r;\nwrite(!r);", TypeMismatch, "operator ! not defined on r (float)"},
		{"float condition", "let float r;\nif (r) write(1);", TypeMismatch, "non-int condition"},
		{"string for condition", "let string s;\nfor (; s; ) {}", TypeMismatch, "non-int condition"},
		{"rem on float", "let float r;\nr %= 2;", TypeMismatch, "operator %= requires int operands"},
		{"rem by float", "let int i;\ni %= 2.0;", TypeMismatch, "operator %= requires int operands"},
		{"compound on string", "let string s;\ns += 1;", TypeMismatch, "operator += not defined on s (string)"},
		{"compound float into int", "let int i;\ni += 1.5;", TypeMismatch, "as int value"},
		{"call variable", "let int a;\nwrite(a());", TypeMismatch, "cannot call non-function a"},
		{"assign function", "function void f() {}\nf = 1;", TypeMismatch, "cannot assign to function f"},
		{"read function", "function void f() {}\nread f;", TypeMismatch, "cannot read function f"},
		{"void as value", "let int a;\nfunction void f() {}\na = f();", TypeMismatch, "f() (no value) used as value"},
		{"write void", "function void f() {}\nwrite(f());", TypeMismatch, "used as value"},
		{"function as value", "function void f() {}\nwrite(f);", TypeMismatch, "function f used as value"},
		{"argument type", "function void f(int a) {}\nf(1.5);", TypeMismatch, "argument a to f"},
		{"too few args", "function int f(int a, int b) { return a; }\nwrite(f(1));", ArityMismatch, "have 1, want 2"},
		{"too many args", "function void f() {}\nf(1);", ArityMismatch, "have 1, want 0"},
		{"return type", `function int f() { return "s"; }`, ReturnTypeMismatch, "cannot return"},
		{"return float from int", `function int f() { return 1.5; }`, ReturnTypeMismatch, "returning int"},
		{"missing value", `function int f() { return; }`, ReturnTypeMismatch, "missing return value"},
		{"value from void", `function void f() { return 1; }`, ReturnTypeMismatch, "too many return values"},
		{"top-level return", `return;`, ReturnTypeMismatch, "return outside function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, tt.kind, tt.msg)
		})
	}
}

func TestFirstErrorStops(t *testing.T) {
	_, _, msgs, err := parseAndCheck(t, "x = 1;\ny = 2;")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0], "undefined: x") {
		t.Errorf("messages = %v", msgs)
	}
}

func TestErrorOrderFollowsSource(t *testing.T) {
	// The body of f precedes the top-level statement, so its error wins.
	expectError(t, `
function void f() { y = 1; }
x = 1;
`, UndefinedSymbol, "undefined: y")
	expectError(t, `
x = 1;
function void f() { y = 1; }
`, UndefinedSymbol, "undefined: x")
}

func TestAllErrors(t *testing.T) {
	p := syntax.NewParser("test.js", strings.NewReader("x = 1;\nlet int a = 1.5;\nwrite(f());"), nil)
	prog := p.Parse()
	if err := p.FirstError(); err != nil {
		t.Fatal(err)
	}
	var msgs []string
	conf := &Config{
		AllErrors: true,
		Error:     func(pos syntax.Pos, msg string) { msgs = append(msgs, msg) },
	}
	_, err := Check("test.js", prog, conf, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(msgs), msgs)
	}
	if !strings.Contains(err.Error(), "undefined: x") {
		t.Errorf("first error = %v", err)
	}
}

func TestErrorPosition(t *testing.T) {
	_, _, _, err := parseAndCheck(t, "let int a;\n  a = \"s\";")
	var se *SemanticError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v", err)
	}
	if se.Pos.Line() != 2 || se.Pos.Col() != 7 {
		t.Errorf("pos = %s, want 2:7", se.Pos)
	}
}
