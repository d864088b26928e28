// Package sampler implements the bounded-retry unique-sampling loop.
//
// A Sampler drives a Generator with a single seeded *rand.Rand until it has
// persisted Config.Target distinct artifacts or spent Config.RetryBudget
// non-productive attempts, whichever comes first.
//
// Every attempt has exactly one Outcome:
//
//	Success    novel artifact: inserted in the DedupSet, persisted under the
//	           next ordinal, no budget consumed.
//	Duplicate  artifact already accepted in this run: discarded, budget − 1.
//	Failure    the generator produced nothing: budget − 1.
//
// The run starts in Running and ends in Succeeded (target reached) or
// Exhausted (budget spent with produced < target). Budget is global to the
// run and is only consumed by Duplicate and Failure, so for every run
//
//	produced ≤ target
//	attempts ≤ RetryBudget + produced
//
// Budget-zero policy: RetryBudget counts the non-productive attempts a run
// tolerates, so an attempt only starts while at least one unit remains. A
// run with Target == 0 succeeds without attempting; a run with Target > 0 and
// RetryBudget == 0 is Exhausted without attempting.
//
// Determinism: for a fixed Config (seed included), Profile and a generator
// that is a pure function of the RNG stream, the outcome sequence, the
// persisted artifacts and their ordinals are identical across runs.
//
// Errors:
//
//	ErrInvalidConfig  - Config or Profile rejected by New.
//	ErrPersist        - the Persister failed; Run stops at once.
//	ErrAlreadyRun     - Run called twice on the same Sampler.
package sampler
