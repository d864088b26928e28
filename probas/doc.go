// Package probas holds the categorical probability model that steers random
// interaction generation.
//
// A Profile assigns one weight in [0,1] to each generation-choice Category
// (empty, action, strict, sequence, co-region, parallel, the three loop kinds,
// alternative, leaf, transmission, broadcast). The weights of a valid Profile
// sum to 1 within Epsilon; constructors refuse anything else, so a Profile
// obtained from this package is always usable as-is.
//
// Construction paths:
//
//   - FromPreset(name):   one of the named presets (PresetDefault,
//     PresetConservative, PresetProtocolsWithCoReg).
//   - FromExplicit(w):    one weight per category via the Weights struct.
//   - FromMap(m):         category-name → weight, missing names mean 0.
//   - Resolve(name, w):   PresetCustom routes to FromExplicit, anything else
//     to FromPreset.
//
// Profiles are values: there is no mutator, copies are independent, and
// Draw/DrawAmong only read the weights while consuming the caller's RNG.
//
// Errors:
//
//	ErrUnknownPreset        - preset name not recognised.
//	ErrInvalidDistribution  - weight outside [0,1], NaN, or Σ ≠ 1.
//	ErrUnknownCategory      - category name not part of the closed set.
package probas
