// SPDX-License-Identifier: MIT
// Package: intergen/harness
//
// errors.go: sentinel errors for run configuration.

package harness

import "errors"

// ErrInvalidConfig indicates a run configuration that cannot be loaded or
// fails validation. Context, profile and sampler errors keep their own
// sentinels and are wrapped as they are.
var ErrInvalidConfig = errors.New("harness: invalid configuration")

const (
	methodLoadConfig = "LoadConfig"
	methodValidate   = "Validate"
	methodRun        = "Run"
)
