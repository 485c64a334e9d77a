// Package config loads run settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/mjs/internal/interp"
)

// Environment variables read by ApplyEnv and Resolve.
const (
	EnvConfig         = "MJS_CONFIG"
	EnvFloatPrecision = "MJS_FLOAT_PRECISION"
	EnvMaxCallDepth   = "MJS_MAX_CALL_DEPTH"
	EnvLiteralLimits  = "MJS_LITERAL_LIMITS"
	EnvPrompt         = "MJS_PROMPT"
)

// Upper bounds accepted by Validate.
const (
	MaxFloatPrecision = 17
	MaxCallDepthLimit = interp.MaxCallDepthLimit
)

// Config holds the settings of one run.
type Config struct {
	FloatPrecision int      `yaml:"float_precision"`
	MaxCallDepth   int      `yaml:"max_call_depth"`
	LiteralLimits  bool     `yaml:"literal_limits"`
	Prompt         string   `yaml:"prompt"`
	Inputs         []string `yaml:"inputs"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FloatPrecision: 6,
		MaxCallDepth:   10000,
		LiteralLimits:  true,
	}
}

// ValidationError aggregates configuration problems.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs ValidationError
	if c.FloatPrecision < 1 || c.FloatPrecision > MaxFloatPrecision {
		errs.Issues = append(errs.Issues, fmt.Sprintf("float_precision must be between 1 and %d, got %d", MaxFloatPrecision, c.FloatPrecision))
	}
	if c.MaxCallDepth < 1 || c.MaxCallDepth > MaxCallDepthLimit {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be between 1 and %d, got %d", MaxCallDepthLimit, c.MaxCallDepth))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Decode reads YAML settings from r on top of the defaults. Unknown keys
// are errors. An empty document yields the defaults.
func Decode(r io.Reader, name string) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return c, nil
}

// Load reads the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, path)
}

// ApplyEnv overrides c with the MJS_* environment variables that are set.
func (c *Config) ApplyEnv() {
	if env.Has(EnvFloatPrecision) {
		c.FloatPrecision = env.Int(EnvFloatPrecision, c.FloatPrecision)
	}
	if env.Has(EnvMaxCallDepth) {
		c.MaxCallDepth = env.Int(EnvMaxCallDepth, c.MaxCallDepth)
	}
	if env.Has(EnvLiteralLimits) {
		c.LiteralLimits = env.Bool(EnvLiteralLimits)
	}
	if env.Has(EnvPrompt) {
		c.Prompt = env.Str(EnvPrompt)
	}
}

// Resolve builds the settings for a run: defaults, then the YAML file at
// path (or $MJS_CONFIG when path is empty), then the environment.
// The result is validated.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = env.Str(EnvConfig)
	}
	c := Default()
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
