// SPDX-License-Identifier: MIT
// Package: intergen/sampler
//
// options.go: functional options for New.
//
// Option constructors panic on nil arguments; New itself never panics.

package sampler

import (
	"io"
	"log/slog"
	"math/rand"
)

// Option customises a Sampler.
type Option func(*settings)

type settings struct {
	logger   *slog.Logger
	recorder Recorder
	rng      *rand.Rand
}

func newSettings(opts ...Option) settings {
	s := settings{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger routes per-attempt debug lines and the run summary to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}

// WithRecorder attaches an observer of attempts and termination.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("sampler: WithRecorder(nil)")
	}
	return func(s *settings) {
		s.recorder = r
	}
}

// WithRand replaces the seed-derived RNG. The sampler becomes the RNG's
// only user for the run; Config.Seed is then only reported.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(s *settings) {
		s.rng = r
	}
}
