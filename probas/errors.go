// SPDX-License-Identifier: MIT
// Package: intergen/probas
//
// errors.go: sentinel errors for the probas package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name and the offending value with %w.
//   • Nothing in this package panics on user input.

package probas

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset indicates that FromPreset received a name outside the
// closed preset set. The wrapped message carries the rejected name.
var ErrUnknownPreset = errors.New("probas: unknown preset")

// ErrInvalidDistribution indicates that the supplied weights do not form a
// categorical distribution: a weight lies outside [0,1], is NaN, or the
// weights do not sum to 1 within Epsilon.
var ErrInvalidDistribution = errors.New("probas: invalid distribution")

// ErrUnknownCategory indicates a category name that is not part of the
// closed category set (see Categories).
var ErrUnknownCategory = errors.New("probas: unknown category")

// probasErrorf prefixes a formatted message with the method name and wraps
// the sentinel so errors.Is keeps working.
func probasErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
