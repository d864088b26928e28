package sampler

import (
	"math/rand"

	"github.com/katalvlaran/intergen/probas"
)

// Artifact is the equality/hash contract the DedupSet relies on.
// Hash must agree with Equal: a.Equal(b) implies a.Hash() == b.Hash().
type Artifact[A any] interface {
	Hash() uint64
	Equal(other A) bool
}

// Generator produces one artifact per call, or reports false when it could
// not produce one. It must read r deterministically.
type Generator[A any] interface {
	Generate(r *rand.Rand, maxDepth, minSymbols int, p probas.Profile) (A, bool)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc[A any] func(r *rand.Rand, maxDepth, minSymbols int, p probas.Profile) (A, bool)

// Generate calls f.
func (f GeneratorFunc[A]) Generate(r *rand.Rand, maxDepth, minSymbols int, p probas.Profile) (A, bool) {
	return f(r, maxDepth, minSymbols, p)
}

// Persister stores one accepted artifact under its ordinal and returns where
// it went (a path, a key). Ordinals start at 0 and grow by one per Success.
type Persister[A any] interface {
	Persist(ordinal int, artifact A) (string, error)
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc[A any] func(ordinal int, artifact A) (string, error)

// Persist calls f.
func (f PersisterFunc[A]) Persist(ordinal int, artifact A) (string, error) {
	return f(ordinal, artifact)
}

// Recorder observes a run; see package metrics for the Prometheus one.
type Recorder interface {
	ObserveAttempt(o Outcome)
	ObserveTermination(s State, produced int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt(Outcome)        {}
func (nopRecorder) ObserveTermination(State, int) {}

// State is the sampler's lifecycle state.
type State int

const (
	// Running is the initial state.
	Running State = iota
	// Succeeded means Target distinct artifacts were persisted.
	Succeeded
	// Exhausted means the retry budget ran out before Target was reached.
	Exhausted
)

// String returns "running", "succeeded" or "exhausted".
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends the run.
func (s State) Terminal() bool {
	return s == Succeeded || s == Exhausted
}

// Outcome classifies one attempt.
type Outcome int

const (
	// Success is a novel, persisted artifact.
	Success Outcome = iota
	// Duplicate is an artifact equal to one already accepted.
	Duplicate
	// Failure is an attempt where the generator produced nothing.
	Failure
)

// String returns "success", "duplicate" or "failure".
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Duplicate:
		return "duplicate"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// ConsumesBudget reports whether o is charged to the retry budget.
func (o Outcome) ConsumesBudget() bool {
	return o == Duplicate || o == Failure
}

// RunResult reports a run.
type RunResult struct {
	// Status holds human-readable summary lines.
	Status []string
	// State is Succeeded or Exhausted; it stays Running only when Run
	// returned an error.
	State State
	// Target and Budget echo the configuration.
	Target int
	Budget int
	// Produced counts persisted artifacts.
	Produced int
	// Attempts counts generator calls; Failures and Duplicates split the
	// non-productive ones.
	Attempts   int
	Failures   int
	Duplicates int
	// Remaining is the unspent retry budget.
	Remaining int
	// Outcomes lists every attempt in order.
	Outcomes []Outcome
	// Persisted lists the locations returned by the Persister, by ordinal.
	Persisted []string
}

// Complete reports whether the run reached its target.
func (r RunResult) Complete() bool {
	return r.State == Succeeded
}
