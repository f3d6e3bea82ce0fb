package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
[tracing]
adapter = "logrus"
syntax  = "Debug"

[frontend]
strict_numerals = true

[output]
locale              = "de-DE"
max_fraction_digits = 0
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "arith.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Tracing.Adapter != "go" || c.Tracing.Core != "Error" {
		t.Errorf("unexpected tracing defaults: %+v", c.Tracing)
	}
	if c.Frontend.StrictNumerals || c.Output.Locale != "" || c.Output.MaxFractionDigits != 6 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.Tracing.Adapter != "logrus" || c.Tracing.Syntax != "Debug" {
		t.Errorf("tracing section not read: %+v", c.Tracing)
	}
	if c.Tracing.Equations != "Error" {
		t.Errorf("expected missing value to keep its default, have %q", c.Tracing.Equations)
	}
	if !c.Frontend.StrictNumerals {
		t.Error("expected strict numerals")
	}
	if c.Output.Locale != "de-DE" || c.Output.MaxFractionDigits != 0 {
		t.Errorf("output section not read: %+v", c.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if c == nil || c.Tracing.Adapter != "go" {
		t.Errorf("expected defaults for missing file, have %+v", c)
	}
	if _, err = Load(writeConfig(t, "[tracing\nadapter=")); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, testConfig))
	c, err := LoadFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.Output.Locale != "de-DE" {
		t.Errorf("expected config from %s, have %+v", EnvConfig, c)
	}
}

func TestSchukoKeys(t *testing.T) {
	c, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.GetString("tracing") != "logrus" || c.GetString("tracing.adapter") != "logrus" {
		t.Errorf("expected tracing adapter logrus, have %q", c.GetString("tracing"))
	}
	if c.GetString("tracingsyntax") != "Debug" || c.GetString("tracingcore") != "Error" {
		t.Error("unexpected trace levels")
	}
	if c.GetString("tracinggraphics") != "Error" {
		t.Error("expected unused tracers to be quiet")
	}
	if !c.GetBool("frontend.strict_numerals") || c.GetInt("output.max_fraction_digits") != 0 {
		t.Error("unexpected frontend or output values")
	}
	if c.IsSet("output.unknown") || !c.IsSet("output.locale") {
		t.Error("unexpected result of IsSet")
	}
	if Default().IsSet("output.locale") {
		t.Error("empty locale should count as not set")
	}
	if c.GetString("no.such.key") != "" || c.GetInt("no.such.key") != 0 || c.IsInteractive() {
		t.Error("unexpected values for unknown keys")
	}
}
