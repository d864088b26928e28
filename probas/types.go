// SPDX-License-Identifier: MIT
// Package: intergen/probas
//
// types.go: Category, Weights and Profile.

package probas

// Category is one generation choice the interaction generator can make at a
// node. The set is closed; Categories lists it in canonical order.
type Category int

const (
	// Empty produces the empty interaction.
	Empty Category = iota
	// Action produces a single emission on one lifeline.
	Action
	// Strict composes two sub-interactions with strict sequencing.
	Strict
	// Sequence composes two sub-interactions with weak sequencing.
	Sequence
	// CoRegion composes two sub-interactions with a co-region on a lifeline subset.
	CoRegion
	// Parallel composes two sub-interactions with interleaving.
	Parallel
	// LoopStrict repeats a sub-interaction under strict sequencing.
	LoopStrict
	// LoopWeak repeats a sub-interaction under weak sequencing.
	LoopWeak
	// LoopInterleaved repeats a sub-interaction under interleaving.
	LoopInterleaved
	// Alternative chooses between two sub-interactions.
	Alternative
	// Leaf produces a single reception on one lifeline.
	Leaf
	// Transmission produces an emission strictly followed by its reception.
	Transmission
	// Broadcast produces an emission followed by several receptions.
	Broadcast

	numCategories
)

// categoryNames is indexed by Category; names are the external spelling used
// in YAML files, flags and FromMap.
var categoryNames = [numCategories]string{
	Empty:           "empty",
	Action:          "action",
	Strict:          "strict",
	Sequence:        "sequence",
	CoRegion:        "co-region",
	Parallel:        "parallel",
	LoopStrict:      "loop-strict",
	LoopWeak:        "loop-weak",
	LoopInterleaved: "loop-interleaved",
	Alternative:     "alternative",
	Leaf:            "leaf",
	Transmission:    "transmission",
	Broadcast:       "broadcast",
}

// String returns the external name of c, or "unknown" for values outside the set.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Terminal reports whether c produces a node without sub-interactions.
func (c Category) Terminal() bool {
	switch c {
	case Empty, Action, Leaf, Transmission, Broadcast:
		return true
	default:
		return false
	}
}

// Categories returns the closed category set in canonical order.
// The returned slice is fresh; callers may modify it.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// TerminalCategories returns the categories for which Terminal is true,
// in canonical order.
func TerminalCategories() []Category {
	out := make([]Category, 0, 5)
	for _, c := range Categories() {
		if c.Terminal() {
			out = append(out, c)
		}
	}
	return out
}

// ParseCategory maps an external name back to its Category.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, probasErrorf(methodParse, ErrUnknownCategory, "%q", name)
}

// Weights carries one explicit weight per category. It is the input of
// FromExplicit and the shape used in YAML run configurations.
type Weights struct {
	Empty           float64 `yaml:"empty"`
	Action          float64 `yaml:"action"`
	Strict          float64 `yaml:"strict"`
	Sequence        float64 `yaml:"sequence"`
	CoRegion        float64 `yaml:"co-region"`
	Parallel        float64 `yaml:"parallel"`
	LoopStrict      float64 `yaml:"loop-strict"`
	LoopWeak        float64 `yaml:"loop-weak"`
	LoopInterleaved float64 `yaml:"loop-interleaved"`
	Alternative     float64 `yaml:"alternative"`
	Leaf            float64 `yaml:"leaf"`
	Transmission    float64 `yaml:"transmission"`
	Broadcast       float64 `yaml:"broadcast"`
}

// vector lays w out in canonical category order.
func (w Weights) vector() [numCategories]float64 {
	return [numCategories]float64{
		Empty:           w.Empty,
		Action:          w.Action,
		Strict:          w.Strict,
		Sequence:        w.Sequence,
		CoRegion:        w.CoRegion,
		Parallel:        w.Parallel,
		LoopStrict:      w.LoopStrict,
		LoopWeak:        w.LoopWeak,
		LoopInterleaved: w.LoopInterleaved,
		Alternative:     w.Alternative,
		Leaf:            w.Leaf,
		Transmission:    w.Transmission,
		Broadcast:       w.Broadcast,
	}
}

// Ptr returns a pointer to the field of w that holds category c, or nil when
// c is outside the set. It lets flag parsers bind one flag per category.
func (w *Weights) Ptr(c Category) *float64 {
	switch c {
	case Empty:
		return &w.Empty
	case Action:
		return &w.Action
	case Strict:
		return &w.Strict
	case Sequence:
		return &w.Sequence
	case CoRegion:
		return &w.CoRegion
	case Parallel:
		return &w.Parallel
	case LoopStrict:
		return &w.LoopStrict
	case LoopWeak:
		return &w.LoopWeak
	case LoopInterleaved:
		return &w.LoopInterleaved
	case Alternative:
		return &w.Alternative
	case Leaf:
		return &w.Leaf
	case Transmission:
		return &w.Transmission
	case Broadcast:
		return &w.Broadcast
	default:
		return nil
	}
}

// Profile is a validated categorical distribution over Categories.
//
// The zero Profile is not valid (its weights sum to 0); Validate reports it.
// Every Profile returned by a constructor of this package is valid.
type Profile struct {
	// name is the preset name, or PresetCustom for explicit weights.
	name string
	// weights is indexed by Category.
	weights [numCategories]float64
}
