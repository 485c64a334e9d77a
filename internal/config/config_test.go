package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mjs.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
float_precision: 3
max_call_depth: 200
literal_limits: false
prompt: "> "
inputs: ["4", "6"]
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		FloatPrecision: 3,
		MaxCallDepth:   200,
		LiteralLimits:  false,
		Prompt:         "> ",
		Inputs:         []string{"4", "6"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	got, err := Decode(strings.NewReader("prompt: \"? \"\n"), "inline")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Prompt = "? "
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	got, err = Decode(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("empty document (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("float_precison: 2\n"), "typo"); err == nil || !strings.Contains(err.Error(), "float_precison") {
		t.Errorf("unknown key: err = %v", err)
	}
	if _, err := Decode(strings.NewReader("max_call_depth: lots\n"), "bad"); err == nil {
		t.Error("bad value: expected error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	c.FloatPrecision = 0
	c.MaxCallDepth = -1
	err := c.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if len(ve.Issues) != 2 {
		t.Errorf("issues = %v", ve.Issues)
	}
	if !strings.Contains(err.Error(), "float_precision") || !strings.Contains(err.Error(), "max_call_depth") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateDepthLimit(t *testing.T) {
	c := Default()
	c.MaxCallDepth = MaxCallDepthLimit
	if err := c.Validate(); err != nil {
		t.Fatalf("depth at the limit rejected: %v", err)
	}

	c.MaxCallDepth = 50000000
	err := c.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Issues) != 1 {
		t.Fatalf("err = %v, want one validation issue", err)
	}
	if !strings.Contains(ve.Issues[0], "max_call_depth must be between 1 and") {
		t.Errorf("issue = %q", ve.Issues[0])
	}
}

func TestResolveRejectsDeepEnv(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvMaxCallDepth, "50000000")
	if _, err := Resolve(""); err == nil {
		t.Fatal("Resolve accepted an oversized max_call_depth")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFloatPrecision, "2")
	t.Setenv(EnvMaxCallDepth, "50")
	t.Setenv(EnvLiteralLimits, "false")
	t.Setenv(EnvPrompt, ">> ")

	c := Default()
	c.ApplyEnv()
	want := Config{FloatPrecision: 2, MaxCallDepth: 50, LiteralLimits: false, Prompt: ">> "}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, "float_precision: 4\nmax_call_depth: 10\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvMaxCallDepth, "20")

	c, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if c.FloatPrecision != 4 || c.MaxCallDepth != 20 || !c.LiteralLimits {
		t.Errorf("resolved = %+v", c)
	}

	bad := writeConfig(t, "float_precision: 40\n")
	if _, err := Resolve(bad); err == nil {
		t.Error("expected validation error")
	}
}
