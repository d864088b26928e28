// SPDX-License-Identifier: MIT
// Package: intergen/sampler
//
// sampler.go: the bounded-retry unique-sampling loop.
//
// Loop (single-threaded, one attempt fully completes before the next):
//   1. Generate with the run's RNG.
//   2. none      → Failure,   budget − 1.
//   3. duplicate → Duplicate, budget − 1, discarded.
//   4. novel     → persist(ordinal), insert, produced + 1, Success.
//   5. produced == target → Succeeded; after a charged attempt,
//      remaining == 0 → Exhausted.
//
// Complexity: O(attempts × (generate + hash)); DedupSet memory O(target).

package sampler

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/intergen/probas"
)

// Sampler runs the loop once for a fixed configuration.
type Sampler[A Artifact[A]] struct {
	cfg     Config
	profile probas.Profile
	gen     Generator[A]
	persist Persister[A]

	logger   *slog.Logger
	recorder Recorder
	rng      *rand.Rand

	ran bool
}

// New validates cfg and the profile and wires the collaborators.
// The RNG is created here from cfg.Seed unless WithRand is given.
func New[A Artifact[A]](cfg Config, p probas.Profile, gen Generator[A], persist Persister[A], opts ...Option) (*Sampler[A], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: profile: %v: %w", methodNew, err, ErrInvalidConfig)
	}
	if gen == nil {
		return nil, fmt.Errorf("%s: nil generator: %w", methodNew, ErrInvalidConfig)
	}
	if persist == nil {
		return nil, fmt.Errorf("%s: nil persister: %w", methodNew, ErrInvalidConfig)
	}

	s := newSettings(opts...)
	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(cfg.Seed)))
	}

	return &Sampler[A]{
		cfg:      cfg,
		profile:  p,
		gen:      gen,
		persist:  persist,
		logger:   s.logger,
		recorder: s.recorder,
		rng:      rng,
	}, nil
}

// Config returns the configuration the sampler was built with.
func (s *Sampler[A]) Config() Config {
	return s.cfg
}

// Run executes the loop to a terminal state. On a persistence error it
// returns the partial result (State still Running) together with an error
// wrapping ErrPersist.
func (s *Sampler[A]) Run() (RunResult, error) {
	if s.ran {
		return RunResult{}, fmt.Errorf("%s: %w", methodRun, ErrAlreadyRun)
	}
	s.ran = true

	res := RunResult{
		State:     Running,
		Target:    s.cfg.Target,
		Budget:    s.cfg.RetryBudget,
		Remaining: s.cfg.RetryBudget,
		Outcomes:  make([]Outcome, 0, s.cfg.Target),
		Persisted: make([]string, 0, s.cfg.Target),
	}
	seen := NewDedupSet[A]()

	switch {
	case res.Target == 0:
		res.State = Succeeded
	case res.Remaining == 0:
		res.State = Exhausted
	}

	for res.State == Running {
		res.Attempts++
		s.logger.Debug("trying to generate artifact",
			"ordinal", res.Produced, "target", res.Target, "attempt", res.Attempts)

		outcome := Failure
		if a, ok := s.gen.Generate(s.rng, s.cfg.MaxDepth, s.cfg.MinSymbols, s.profile); ok {
			if seen.Contains(a) {
				outcome = Duplicate
			} else {
				loc, err := s.persist.Persist(res.Produced, a)
				if err != nil {
					res.Status = s.status(res)
					return res, fmt.Errorf("%s: ordinal %d: %w: %w", methodRun, res.Produced, ErrPersist, err)
				}
				seen.Insert(a)
				res.Persisted = append(res.Persisted, loc)
				outcome = Success
				s.logger.Debug("persisted artifact", "ordinal", res.Produced, "location", loc)
			}
		}
		res.Outcomes = append(res.Outcomes, outcome)
		s.recorder.ObserveAttempt(outcome)

		switch outcome {
		case Success:
			res.Produced++
			if res.Produced == res.Target {
				res.State = Succeeded
			}
		case Duplicate:
			res.Duplicates++
			s.charge(&res, outcome)
		case Failure:
			res.Failures++
			s.charge(&res, outcome)
		}
	}

	res.Status = s.status(res)
	s.recorder.ObserveTermination(res.State, res.Produced)
	s.logger.Info("sampling finished",
		"state", res.State.String(),
		"produced", res.Produced,
		"target", res.Target,
		"attempts", res.Attempts,
		"failures", res.Failures,
		"duplicates", res.Duplicates,
		"remaining_budget", res.Remaining)
	return res, nil
}

// charge spends one unit of budget and moves to Exhausted on the last one.
// It is only called while produced < target.
func (s *Sampler[A]) charge(res *RunResult, o Outcome) {
	res.Remaining--
	s.logger.Debug("retrying", "outcome", o.String(), "remaining", res.Remaining)
	if res.Remaining == 0 {
		s.logger.Debug("max retries exceeded")
		res.State = Exhausted
	}
}

// status renders the summary lines of res.
func (s *Sampler[A]) status(res RunResult) []string {
	lines := []string{
		fmt.Sprintf("produced %d of %d artifacts in %d attempts (%d failures, %d duplicates)",
			res.Produced, res.Target, res.Attempts, res.Failures, res.Duplicates),
	}
	switch res.State {
	case Succeeded:
		lines = append(lines, "target reached")
	case Exhausted:
		lines = append(lines, fmt.Sprintf("max retries exceeded: partial result, %d out of %d", res.Produced, res.Target))
	default:
		lines = append(lines, "aborted")
	}
	return lines
}
