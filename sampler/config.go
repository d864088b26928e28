// SPDX-License-Identifier: MIT
// Package: intergen/sampler
//
// config.go: sampling configuration and its deterministic defaults.

package sampler

import (
	"fmt"
	"math"
)

// RetryMultiplier scales the default retry budget: generating large
// interactions gets harder with both the number requested and their minimum
// size.
const RetryMultiplier = 100

// Config parameterises one run.
type Config struct {
	// Target is the number of distinct artifacts to persist (≥ 0).
	Target int
	// MaxDepth and MinSymbols are handed to the generator untouched (≥ 1).
	MaxDepth   int
	MinSymbols int
	// RetryBudget is the number of non-productive attempts tolerated (≥ 0).
	RetryBudget int
	// Seed initialises the run's RNG.
	Seed uint64
}

// DefaultRetryBudget returns target × RetryMultiplier × minSymbols,
// saturating at math.MaxInt. Negative inputs yield 0.
func DefaultRetryBudget(target, minSymbols int) int {
	if target <= 0 || minSymbols <= 0 {
		return 0
	}
	budget := target
	for _, f := range [...]int{RetryMultiplier, minSymbols} {
		if budget > math.MaxInt/f {
			return math.MaxInt
		}
		budget *= f
	}
	return budget
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch {
	case c.Target < 0:
		return fmt.Errorf("%s: target must be ≥ 0, got %d: %w", methodValidate, c.Target, ErrInvalidConfig)
	case c.MaxDepth < 1:
		return fmt.Errorf("%s: max depth must be ≥ 1, got %d: %w", methodValidate, c.MaxDepth, ErrInvalidConfig)
	case c.MinSymbols < 1:
		return fmt.Errorf("%s: min symbols must be ≥ 1, got %d: %w", methodValidate, c.MinSymbols, ErrInvalidConfig)
	case c.RetryBudget < 0:
		return fmt.Errorf("%s: retry budget must be ≥ 0, got %d: %w", methodValidate, c.RetryBudget, ErrInvalidConfig)
	}
	return nil
}

const (
	methodNew      = "New"
	methodRun      = "Run"
	methodValidate = "Validate"
)
