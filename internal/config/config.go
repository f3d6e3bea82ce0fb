/*
Package config reads the application configuration for the arith command.

Configuration is read from a TOML file:

	[tracing]
	adapter   = "go"        # "go" or "logrus"
	core      = "Error"
	syntax    = "Error"
	equations = "Error"

	[frontend]
	strict_numerals = false

	[output]
	locale              = ""  # empty: detect from environment
	max_fraction_digits = 6

A *Config implements schuko.Configuration. Applications hand it to
gconf.Initialize, which will set up the global tracers from the [tracing]
section.
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
)

// EnvConfig is the environment variable naming a configuration file.
const EnvConfig = "ARITH_CONFIG"

// Config holds the complete application configuration.
type Config struct {
	Tracing  TracingConfig  `toml:"tracing"`
	Frontend FrontendConfig `toml:"frontend"`
	Output   OutputConfig   `toml:"output"`
}

// TracingConfig selects the tracing backend and trace levels.
type TracingConfig struct {
	Adapter   string `toml:"adapter"`
	Core      string `toml:"core"`
	Syntax    string `toml:"syntax"`
	Equations string `toml:"equations"`
}

// FrontendConfig holds options for lexing and parsing.
type FrontendConfig struct {
	StrictNumerals bool `toml:"strict_numerals"`
}

// OutputConfig holds options for printing results.
type OutputConfig struct {
	Locale            string `toml:"locale"`
	MaxFractionDigits int    `toml:"max_fraction_digits"`
}

var _ schuko.Configuration = &Config{}

// Default returns a configuration with default values.
func Default() *Config {
	c := &Config{}
	c.Output.MaxFractionDigits = 6
	c.applyDefaults()
	return c
}

// Load reads configuration from a TOML file. Values missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return Default(), fmt.Errorf("config file not found: %s", path)
	}
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

// LoadFromEnv reads the file named by ARITH_CONFIG. If the variable is not
// set, a configuration file is searched for at the usual places for the
// operating system (e.g., $HOME/.config/arith/config.toml). If no file is
// found, the default configuration is returned without an error.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	if found := schuko.LocateConfig("arith", "", []string{"toml"}); len(found) > 0 {
		return Load(found[0])
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Tracing.Adapter == "" {
		c.Tracing.Adapter = "go"
	}
	if c.Tracing.Core == "" {
		c.Tracing.Core = "Error"
	}
	if c.Tracing.Syntax == "" {
		c.Tracing.Syntax = "Error"
	}
	if c.Tracing.Equations == "" {
		c.Tracing.Equations = "Error"
	}
	if c.Output.MaxFractionDigits < 0 {
		c.Output.MaxFractionDigits = 0
	}
}

// --- schuko.Configuration ---------------------------------------------------

// values flattens the configuration to the keys used by schuko.
// Tracers not used by arith are kept quiet.
func (c *Config) values() map[string]interface{} {
	return map[string]interface{}{
		"tracing":                    c.Tracing.Adapter,
		"tracing.adapter":            c.Tracing.Adapter,
		"tracingcore":                c.Tracing.Core,
		"tracingsyntax":              c.Tracing.Syntax,
		"tracingequations":           c.Tracing.Equations,
		"tracinginterpreter":         "Error",
		"tracingcommands":            "Error",
		"tracinggraphics":            "Error",
		"tracingscripting":           "Error",
		"tracingengine":              "Error",
		"frontend.strict_numerals":   c.Frontend.StrictNumerals,
		"output.locale":              c.Output.Locale,
		"output.max_fraction_digits": c.Output.MaxFractionDigits,
	}
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Config) InitDefaults() {
	c.applyDefaults()
}

// IsSet is part of interface schuko.Configuration. Empty strings count as
// not set.
func (c *Config) IsSet(key string) bool {
	v, ok := c.values()[key]
	if s, isstr := v.(string); isstr {
		return s != ""
	}
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Config) GetString(key string) string {
	v, ok := c.values()[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration.
func (c *Config) GetInt(key string) int {
	switch v := c.values()[key].(type) {
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Config) GetBool(key string) bool {
	switch v := c.values()[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration. arith is never
// interactive.
func (c *Config) IsInteractive() bool {
	return false
}
