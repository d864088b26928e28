package probas

import "math/rand"

// Draw picks a category with probability equal to its weight.
// It consumes exactly one r.Float64() so callers can reason about the RNG
// stream. Zero-weight categories are never returned.
// Complexity: O(|Categories|).
func (p Profile) Draw(r *rand.Rand) Category {
	u := r.Float64()
	acc := 0.0
	last := Empty
	for c, w := range p.weights {
		if w <= 0 {
			continue
		}
		last = Category(c)
		acc += w
		if u < acc {
			return last
		}
	}
	// Rounding left u above the running total: fall back to the last
	// category that carries mass.
	return last
}

// DrawAmong picks one of cats with probability proportional to its weight,
// i.e. the profile renormalised over the subset. It returns false, without
// touching r, when the subset carries no mass.
func (p Profile) DrawAmong(r *rand.Rand, cats ...Category) (Category, bool) {
	total := 0.0
	for _, c := range cats {
		total += p.Weight(c)
	}
	if total <= 0 {
		return 0, false
	}

	u := r.Float64() * total
	acc := 0.0
	var last Category
	for _, c := range cats {
		w := p.Weight(c)
		if w <= 0 {
			continue
		}
		last = c
		acc += w
		if u < acc {
			return c, true
		}
	}
	return last, true
}
