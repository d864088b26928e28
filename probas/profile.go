// SPDX-License-Identifier: MIT
// Package: intergen/probas
//
// profile.go: Profile constructors, validation and read-only accessors.
//
// Contract:
//   • Constructors validate before returning; an invalid Profile never escapes.
//   • Validation order: per-weight range (first offending category in
//     canonical order) → total mass.
//   • Summation runs in canonical order so the same inputs always produce
//     the same verdict.

package probas

import (
	"math"
	"sort"
)

// FromPreset returns the profile registered under name.
// An empty name selects PresetDefault. PresetCustom is rejected here: it has
// no fixed weights, use Resolve or FromExplicit.
func FromPreset(name string) (Profile, error) {
	if name == "" {
		name = PresetDefault
	}
	w, ok := presetWeights(name)
	if !ok {
		return Profile{}, probasErrorf(methodFromPreset, ErrUnknownPreset, "%q", name)
	}
	p := Profile{name: name, weights: w.vector()}
	if err := p.Validate(); err != nil {
		// Presets are constants; reaching this means the table is broken.
		return Profile{}, probasErrorf(methodFromPreset, ErrInvalidDistribution, "preset %q: %v", name, err)
	}
	return p, nil
}

// FromExplicit builds a PresetCustom profile from one weight per category.
func FromExplicit(w Weights) (Profile, error) {
	p := Profile{name: PresetCustom, weights: w.vector()}
	if err := p.check(methodFromExplicit); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// FromMap builds a PresetCustom profile from category names to weights.
// Categories absent from m weigh 0. Unknown names fail with ErrUnknownCategory,
// reported in sorted key order so the error is stable.
func FromMap(m map[string]float64) (Profile, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := Profile{name: PresetCustom}
	for _, k := range keys {
		c, err := ParseCategory(k)
		if err != nil {
			return Profile{}, probasErrorf(methodFromMap, ErrUnknownCategory, "%q", k)
		}
		p.weights[c] = m[k]
	}
	if err := p.check(methodFromMap); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Resolve picks the construction path for a run configuration:
// PresetCustom uses w, every other name goes through FromPreset.
func Resolve(name string, w Weights) (Profile, error) {
	if name == PresetCustom {
		return FromExplicit(w)
	}
	return FromPreset(name)
}

// Validate reports whether p is a categorical distribution. It is mostly
// useful for consumers that receive a Profile by value and want to reject
// the zero Profile.
func (p Profile) Validate() error {
	return p.check(methodValidate)
}

// check runs the range and sum checks with method as the error prefix.
func (p Profile) check(method string) error {
	for c, w := range p.weights {
		if math.IsNaN(w) || w < MinWeight || w > MaxWeight {
			return probasErrorf(method, ErrInvalidDistribution,
				"weight of %s must be in [%.1f,%.1f], got %v", Category(c), MinWeight, MaxWeight, w)
		}
	}
	if sum := p.Sum(); math.Abs(sum-1.0) > Epsilon {
		return probasErrorf(method, ErrInvalidDistribution, "weights sum to %v, want 1", sum)
	}
	return nil
}

// Name returns the preset name, or PresetCustom for explicit weights.
func (p Profile) Name() string {
	return p.name
}

// Weight returns the weight of c, or 0 for categories outside the set.
func (p Profile) Weight(c Category) float64 {
	if c < 0 || c >= numCategories {
		return 0
	}
	return p.weights[c]
}

// Weights returns a copy of the weights as a Weights struct.
func (p Profile) Weights() Weights {
	var w Weights
	for c, v := range p.weights {
		*w.Ptr(Category(c)) = v
	}
	return w
}

// Sum returns Σ weights in canonical order.
func (p Profile) Sum() float64 {
	var sum float64
	for _, w := range p.weights {
		sum += w
	}
	return sum
}

// Support returns the categories with a strictly positive weight, in
// canonical order.
func (p Profile) Support() []Category {
	out := make([]Category, 0, numCategories)
	for c, w := range p.weights {
		if w > 0 {
			out = append(out, Category(c))
		}
	}
	return out
}
