// Package config loads the configuration of the calc command from TOML or
// YAML files.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/tsatke/calc"
)

// Format is the format of a configuration file.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Division values.
const (
	DivisionFloat = "float"
	DivisionExact = "exact"
)

// Config is the configuration of the calculator.
type Config struct {
	// NegativeStyle is "minus" or "parens".
	NegativeStyle string `toml:"negative_style" yaml:"negative_style"`
	// Division is "float" or "exact".
	Division string `toml:"division" yaml:"division"`
	// Explain prints the calculation steps along with the result.
	Explain bool `toml:"explain" yaml:"explain"`
	// Normalize cleans up input before it is validated.
	Normalize bool `toml:"normalize" yaml:"normalize"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		NegativeStyle: calc.NegativeMinus.String(),
		Division:      DivisionFloat,
		Explain:       false,
		Normalize:     true,
	}
}

// DetectFormat determines the format from the file extension. Files that are
// not named .yaml or .yml are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads the configuration file at path from fs. Values that are missing
// in the file keep their defaults. The loaded configuration is validated.
func Load(fs afero.Fs, path string) (Config, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates the configuration from content.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("toml parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all values are known.
func (c Config) Validate() error {
	if _, err := calc.ParseNegativeStyle(c.NegativeStyle); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch strings.ToLower(c.Division) {
	case "", DivisionFloat, DivisionExact:
	default:
		return fmt.Errorf("invalid config: unknown division %q", c.Division)
	}
	return nil
}

// Options returns the calculator options for the configuration. The
// configuration must be valid.
func (c Config) Options() []calc.Option {
	var opts []calc.Option

	if style, err := calc.ParseNegativeStyle(c.NegativeStyle); err == nil && style != calc.NegativeMinus {
		opts = append(opts, calc.WithNegativeStyle(style))
	}
	if strings.EqualFold(c.Division, DivisionExact) {
		opts = append(opts, calc.WithExactDivision())
	}
	if !c.Normalize {
		opts = append(opts, calc.WithoutNormalization())
	}
	return opts
}
