package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/you-not-fish/mjs/internal/config"
)

const referenceFile = "../../internal/pipeline/testdata/ejemplo.js"

func TestRunProgramReference(t *testing.T) {
	setFlag(t, inputPath, "../../internal/pipeline/testdata/ejemplo.in")

	code, out, errOut := captureOutput(t, func() int {
		return runProgram(referenceFile, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runProgram exit=%d\nstderr:\n%s", code, errOut)
	}
	golden, err := os.ReadFile("../../internal/pipeline/testdata/ejemplo.golden")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(golden), out); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if errOut != "" {
		t.Errorf("unexpected stderr:\n%s", errOut)
	}
}

func TestRunProgramDumpStoreAndTrace(t *testing.T) {
	setFlag(t, inputPath, "../../internal/pipeline/testdata/ejemplo.in")
	setFlag(t, dumpStore, true)
	setFlag(t, trace, true)

	code, out, errOut := captureOutput(t, func() int {
		return runProgram(referenceFile, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runProgram exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{
		"=== Global Store ===",
		"numeroA      int    4",
		"mensaje      string \"Programa finalizado correctamente\"",
		"valorReal    float  5.85",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("store dump missing %q:\n%s", want, out)
		}
	}
	for _, want := range []string{"name=parse", "name=check", "name=run", "writes=25", "reads=2"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("trace missing %q:\n%s", want, errOut)
		}
	}
}

func TestRunProgramStaticError(t *testing.T) {
	filename := writeTempFile(t, "write(\"hola\");\nx = 1;\n")
	code, out, errOut := captureOutput(t, func() int {
		return runProgram(filename, config.Default())
	})
	if code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if out != "" {
		t.Errorf("static error produced output:\n%s", out)
	}
	if !strings.Contains(errOut, ":2:1: UndefinedSymbol: undefined: x") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunProgramFault(t *testing.T) {
	filename := writeTempFile(t, "let int z;\nwrite(\"antes\");\nwrite(1 / z);\n")
	code, out, errOut := captureOutput(t, func() int {
		return runProgram(filename, config.Default())
	})
	if code != exitFault {
		t.Errorf("exit = %d, want %d", code, exitFault)
	}
	if out != "antes\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, ":3:1: DivisionByZero:") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunEmitTokens(t *testing.T) {
	filename := writeTempFile(t, "let int a; // comentario\nread(a);\nwrite(\"x y\");\n")
	code, out, errOut := captureOutput(t, func() int {
		return runEmitTokens(filename, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runEmitTokens exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{"POSITION", "keyword", "identifier", "punctuation", `string   "x y"`, "eof"} {
		if !strings.Contains(out, want) {
			t.Errorf("token dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "comentario") {
		t.Errorf("comment emitted as token:\n%s", out)
	}
}

func TestRunEmitTokensLexError(t *testing.T) {
	filename := writeTempFile(t, "let int a;\na = 1 & 2;\n")
	code, out, errOut := captureOutput(t, func() int {
		return runEmitTokens(filename, config.Default())
	})
	if code != exitError {
		t.Errorf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(out, "identifier") {
		t.Errorf("tokens before the error not printed:\n%s", out)
	}
	if !strings.Contains(errOut, ":2:7: LexError: unexpected character '&'") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunEmitASTJSON(t *testing.T) {
	setFlag(t, astFormat, "json")
	code, out, errOut := captureOutput(t, func() int {
		return runEmitAST(referenceFile, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Errorf("root type = %v", tree["type"])
	}
	if decls, _ := tree["decls"].([]interface{}); len(decls) != 15 {
		t.Errorf("got %d decls, want 15", len(decls))
	}
}

func TestRunEmitTypedAST(t *testing.T) {
	code, out, errOut := captureOutput(t, func() int {
		return runEmitTypedAST(referenceFile, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runEmitTypedAST exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{
		`Name: sumar (function function(int, int) int)`,
		`Param[0]: a (param int)`,
		`BinaryExpr + (int) [X=Name "a" (int), Y=Name "b" (int)]`,
		`BinaryExpr + (float) [X=Name "x" (float), Y=BasicLit "3.14" (float)]`,
		`CallExpr (void) [Fun=Name "mostrarMensaje"`,
		`AssignStmt (%=)`,
		`ReadStmt`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("typed AST missing %q:\n%s", want, out)
		}
	}
}

func TestRunEmitSymtab(t *testing.T) {
	code, out, errOut := captureOutput(t, func() int {
		return runEmitSymtab(referenceFile, config.Default())
	})
	if code != exitOK {
		t.Fatalf("runEmitSymtab exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, want := range []string{
		"program #1:",
		"* global 'mensaje'\n  + type: string\n  + offset: 4\n",
		"* global 'contador'\n  + type: int\n  + offset: 68\n",
		"* function 'sumar'\n  + type: function(int, int) int\n  + params: 2\n",
		"function sumar #2:",
		"function procesarCondicion #8:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("symbol table missing %q:\n%s", want, out)
		}
	}

	setFlag(t, symtabFormat, "yaml")
	code, out, _ = captureOutput(t, func() int {
		return runEmitSymtab(referenceFile, config.Default())
	})
	if code != exitOK || !strings.Contains(out, "name: function esPar") {
		t.Errorf("yaml symbol table exit=%d:\n%s", code, out)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mjs.yml")
	if err := os.WriteFile(path, []byte("float_precision: 4\nmax_call_depth: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setFlag(t, configPath, path)
	setFlag(t, maxDepth, 99)
	setFlag(t, noLimits, true)

	conf, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if conf.FloatPrecision != 4 || conf.MaxCallDepth != 99 || conf.LiteralLimits {
		t.Errorf("config = %+v", conf)
	}

	setFlag(t, precision, 50)
	if _, err := loadConfig(); err == nil {
		t.Error("expected validation error for -precision 50")
	}
}

// setFlag sets a flag variable for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func writeTempFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.js")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	outc := make(chan []byte)
	errc := make(chan []byte)
	go func() { b, _ := io.ReadAll(rOut); outc <- b }()
	go func() { b, _ := io.ReadAll(rErr); errc <- b }()

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes := <-outc
	errBytes := <-errc
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
