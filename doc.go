// Package intergen generates random interactions (sequence-diagram terms over
// lifelines and messages) and keeps a target number of distinct ones.
//
// The work is split across small packages:
//
//	probas/        ProbabilityProfile: categorical weights over the 13 symbol categories, presets
//	interaction/   interaction terms, canonical hash, signature loading, encoder, random generator
//	sampler/       BoundedUniqueSampler: the retry-budgeted dedup loop, generic over the artifact
//	store/         sinks for encoded artifacts: a directory or an embedded BadgerDB
//	metrics/       Prometheus recorder for attempts and run outcomes
//	logging/       slog setup shared by the command and the library
//	harness/       one configured run end to end (YAML config, sink, metrics, status lines)
//	cmd/intergen   the cobra command line
//
// A run draws from the generator until Target distinct artifacts were
// persisted or the retry budget, spent only by failed and duplicate draws,
// runs out. The same seed and configuration always produce the same files.
//
//	intergen generate sig.yaml --num-ints 50 --max-depth 5 --min-symbols 10 --seed 1
package intergen
