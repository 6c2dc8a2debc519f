// Package config loads the TOML run configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/scan"
	"github.com/tanakhlab/mesologia/core/stats"
)

//go:embed sample_config.toml
var sampleConfig string

// Corpus selects the corpus source.
type Corpus struct {
	// Path to the corpus file.
	Path string `toml:"path"`

	// Format is one of "tsv", "osis", or "sqlite". Empty means detect
	// from the file extension.
	Format string `toml:"format"`

	// Book restricts the run to a single book when non-empty.
	Book string `toml:"book"`
}

// Normalization controls text normalization.
type Normalization struct {
	KeepFinalForms bool `toml:"keep_final_forms"`
}

// Search configures the target pattern and significance parameters.
type Search struct {
	// Target is a pattern expression: a word, word@N, or suffix+prefix.
	Target string `toml:"target"`

	// ContextWindow is the number of context tokens on each side of a
	// match.
	ContextWindow int `toml:"context_window"`

	// Threshold is the significance level for the boolean flag.
	Threshold float64 `toml:"threshold"`
}

// Controls configures the comparison battery.
type Controls struct {
	// Words is an inline list of control pattern expressions.
	Words []string `toml:"words"`

	// CSVPath points at a control-word CSV file (label, word, optional
	// split index). Rows are appended after Words.
	CSVPath string `toml:"csv_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the complete run configuration.
type Config struct {
	Corpus        Corpus        `toml:"corpus"`
	Normalization Normalization `toml:"normalization"`
	Search        Search        `toml:"search"`
	Controls      Controls      `toml:"controls"`
	Logging       Logging       `toml:"logging"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Search: Search{
			ContextWindow: scan.DefaultContextWindow,
			Threshold:     stats.DefaultThreshold,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and validates a TOML config file, applying defaults for
// unset fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &errors.ConfigError{
			Field:   "config file",
			Message: fmt.Sprintf("cannot parse %s", path),
			Err:     err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Path/target presence is checked by the
// commands that need them, since some commands run without either.
func (c Config) Validate() error {
	if c.Search.ContextWindow < 0 {
		return errors.NewConfig("context_window", "must not be negative")
	}
	if c.Search.Threshold < 0 || c.Search.Threshold >= 1 {
		return errors.NewConfig("threshold", "must be in [0, 1)")
	}
	switch c.Corpus.Format {
	case "", "tsv", "osis", "sqlite":
	default:
		return errors.NewConfig("corpus format",
			fmt.Sprintf("unknown format %q (want tsv, osis, or sqlite)", c.Corpus.Format))
	}
	return nil
}

// WriteSample writes the annotated sample configuration to path.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.NewConfig("config path", fmt.Sprintf("%s already exists", path))
	}
	return os.WriteFile(path, []byte(sampleConfig), 0644)
}
