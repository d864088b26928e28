// SPDX-License-Identifier: MIT
// Package: intergen/harness
//
// config.go: run configuration: defaults, YAML loading, validation.
//
// Precedence (lowest first): DefaultConfig, the YAML file, CLI flags.

package harness

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intergen/probas"
	"github.com/katalvlaran/intergen/sampler"
)

// Defaults of the generation command.
const (
	DefaultNumInts    = 350
	DefaultMaxDepth   = 10
	DefaultMinSymbols = 100
	DefaultFolder     = "gen_ints"
	DefaultProbas     = probas.PresetDefault
	SinkDir           = "dir"
	SinkBadger        = "badger"
)

// Config is everything a generation run needs.
type Config struct {
	// Context is the path of the YAML signature (lifelines, messages).
	Context string `yaml:"context" validate:"required"`
	// NumInts is the number of distinct interactions to produce.
	NumInts    int `yaml:"num_ints" validate:"gte=0"`
	MaxDepth   int `yaml:"max_depth" validate:"gte=1"`
	MinSymbols int `yaml:"min_symbols" validate:"gte=1"`
	// NumTries overrides the derived retry budget when set.
	NumTries *int   `yaml:"num_tries,omitempty" validate:"omitempty,gte=0"`
	Seed     uint64 `yaml:"seed"`
	// Folder is the output directory (or badger database directory).
	Folder string `yaml:"folder" validate:"required"`
	// Probas names a preset, or "custom" to use Weights.
	Probas  string         `yaml:"probas" validate:"required"`
	Weights probas.Weights `yaml:"weights"`
	Sink    string         `yaml:"sink" validate:"oneof=dir badger"`
	// MetricsOut, when set, receives a Prometheus text dump after the run.
	MetricsOut string `yaml:"metrics_out,omitempty"`
}

// DefaultCustomWeights is the custom profile before any per-category
// override: half empty, half action.
func DefaultCustomWeights() probas.Weights {
	return probas.Weights{Empty: 0.5, Action: 0.5}
}

// DefaultConfig returns the command defaults. Context is left empty.
func DefaultConfig() Config {
	return Config{
		NumInts:    DefaultNumInts,
		MaxDepth:   DefaultMaxDepth,
		MinSymbols: DefaultMinSymbols,
		Folder:     DefaultFolder,
		Probas:     DefaultProbas,
		Weights:    DefaultCustomWeights(),
		Sink:       SinkDir,
	}
}

// LoadConfig decodes the YAML file at path over DefaultConfig. Unknown keys
// are rejected. The result is not validated; Run does that.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%s: %v: %w", methodLoadConfig, err, ErrInvalidConfig)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %s: %v: %w", methodLoadConfig, path, err, ErrInvalidConfig)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges and the sink name.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: field %s fails %q (value %v): %w",
				methodValidate, fe.Field(), fe.Tag(), fe.Value(), ErrInvalidConfig)
		}
		return fmt.Errorf("%s: %v: %w", methodValidate, err, ErrInvalidConfig)
	}
	return nil
}

// RetryBudget returns NumTries when set, the derived default otherwise.
func (c Config) RetryBudget() int {
	if c.NumTries != nil {
		return *c.NumTries
	}
	return sampler.DefaultRetryBudget(c.NumInts, c.MinSymbols)
}

// SamplingConfig projects c onto the sampler's configuration.
func (c Config) SamplingConfig() sampler.Config {
	return sampler.Config{
		Target:      c.NumInts,
		MaxDepth:    c.MaxDepth,
		MinSymbols:  c.MinSymbols,
		RetryBudget: c.RetryBudget(),
		Seed:        c.Seed,
	}
}
