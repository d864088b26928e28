// SPDX-License-Identifier: MIT
// Package: intergen/sampler
//
// errors.go: sentinel errors for the sampler package.
//
// Callers branch with errors.Is. Failures and duplicates are outcomes, not
// errors, and budget exhaustion is a terminal state; none of them surface here.

package sampler

import "errors"

// ErrInvalidConfig indicates a Config field out of range, a nil collaborator,
// or an invalid Profile handed to New.
var ErrInvalidConfig = errors.New("sampler: invalid config")

// ErrPersist wraps the error of a Persister. The run is aborted on the
// attempt that produced it; the artifact is not counted.
var ErrPersist = errors.New("sampler: persist failed")

// ErrAlreadyRun indicates Run was called on a Sampler that already ran.
var ErrAlreadyRun = errors.New("sampler: already run")
