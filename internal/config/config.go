// =============================================================================
// MJML Compiler CLI - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Without a file the
// application runs with the built-in defaults, which are the fixed compile
// configuration: soft validation, minified output.
//
// CONFIGURATION FILE:
//   compile:
//     validation_level: soft   # strict | soft | skip
//     minify: true
//     beautify: false
//     keep_comments: false
//   logging:
//     level: info              # debug | info | warn | error
//     file: ""                 # JSON log records are appended here when set
//
// LOADING ORDER:
//   1. Start from Default()
//   2. Overlay the YAML file (keys absent from the file keep their default)
//   3. Validate, collecting every problem rather than stopping at the first
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/mjml-compile/internal/compiler"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// Compile contains the options passed to the MJML compiler.
	Compile CompileSettings `yaml:"compile"`

	// Logging controls the structured log output.
	Logging LoggingSettings `yaml:"logging"`
}

// CompileSettings mirrors compiler.Options in YAML form.
type CompileSettings struct {
	// ValidationLevel is one of "strict", "soft" or "skip".
	// Default: "soft"
	ValidationLevel string `yaml:"validation_level"`

	// Minify removes non-essential whitespace from the generated HTML.
	// Default: true
	Minify bool `yaml:"minify"`

	// Beautify pretty-prints the generated HTML. Cannot be combined with Minify.
	// Default: false
	Beautify bool `yaml:"beautify"`

	// KeepComments preserves comments from the markup in the output.
	// Default: false
	KeepComments bool `yaml:"keep_comments"`
}

// LoggingSettings controls where log records go.
type LoggingSettings struct {
	// Level is one of "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// File is the path log records are appended to in JSON form.
	// Empty means no log file.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := compiler.DefaultOptions()
	return &Config{
		Compile: CompileSettings{
			ValidationLevel: string(opts.ValidationLevel),
			Minify:          opts.Minify,
			Beautify:        opts.Beautify,
			KeepComments:    opts.KeepComments,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at path. An empty path returns Default()
// without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills string settings the file set to empty values.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Compile.ValidationLevel) == "" {
		cfg.Compile.ValidationLevel = string(compiler.ValidationSoft)
	}
	if strings.TrimSpace(cfg.Logging.Level) == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var result error

	if _, err := compiler.ParseValidationLevel(c.Compile.ValidationLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("compile.validation_level: %w", err))
	}

	if c.Compile.Minify && c.Compile.Beautify {
		result = multierror.Append(result, fmt.Errorf("compile: minify and beautify cannot both be enabled"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return result
}

// CompileOptions converts the compile settings to compiler.Options.
// The configuration must have passed Validate.
func (c *Config) CompileOptions() compiler.Options {
	level, err := compiler.ParseValidationLevel(c.Compile.ValidationLevel)
	if err != nil {
		level = compiler.ValidationSoft
	}

	return compiler.Options{
		ValidationLevel: level,
		Minify:          c.Compile.Minify,
		Beautify:        c.Compile.Beautify,
		KeepComments:    c.Compile.KeepComments,
	}
}
