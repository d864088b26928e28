// Package interaction defines the artifact produced by the sampler: an
// interaction term over a signature of lifelines and messages.
//
// An Interaction is an immutable tree. Leaves are the empty interaction,
// emissions and receptions; inner nodes are binary operators (strict and
// weak sequencing, co-region, parallel, alternative) or loops. Structural
// equality is Equal; Hash is an xxhash of the canonical form, so equal
// interactions always share a hash.
//
// The package also ships the collaborators the sampler needs to run end to
// end: a Context (the signature) with its YAML parser, a Generator that
// draws random interactions from a probas.Profile, and Encode, the text form
// written to ".hif" files.
package interaction

// Kind tags the node type of an Interaction.
type Kind int

const (
	KindEmpty Kind = iota
	KindEmission
	KindReception
	KindStrict
	KindSeq
	KindCoReg
	KindPar
	KindAlt
	KindLoopStrict
	KindLoopWeak
	KindLoopInterleaved
)

// kindTags are the operator names used by both the canonical form and the
// text encoding.
var kindTags = [...]string{
	KindEmpty:           "o",
	KindEmission:        "e",
	KindReception:       "r",
	KindStrict:          "strict",
	KindSeq:             "seq",
	KindCoReg:           "coreg",
	KindPar:             "par",
	KindAlt:             "alt",
	KindLoopStrict:      "loopS",
	KindLoopWeak:        "loopW",
	KindLoopInterleaved: "loopP",
}

// String returns the operator tag of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindTags) {
		return "unknown"
	}
	return kindTags[k]
}

// IsAction reports whether k is an emission or a reception.
func (k Kind) IsAction() bool {
	return k == KindEmission || k == KindReception
}

// IsBinary reports whether k combines exactly two sub-interactions.
func (k Kind) IsBinary() bool {
	switch k {
	case KindStrict, KindSeq, KindCoReg, KindPar, KindAlt:
		return true
	default:
		return false
	}
}

// IsLoop reports whether k repeats a single sub-interaction.
func (k Kind) IsLoop() bool {
	return k == KindLoopStrict || k == KindLoopWeak || k == KindLoopInterleaved
}

// Interaction is one node of an interaction term.
//
// Lifeline and Message index into the Context of the run and are meaningful
// for actions only. CoReg lists, sorted and without duplicates, the lifelines
// of a co-region. Children holds two sub-terms for binary kinds and one for
// loops. Values built through the constructors below must not be mutated.
type Interaction struct {
	Kind     Kind
	Lifeline int
	Message  int
	CoReg    []int
	Children []*Interaction
}

// NewEmpty returns the empty interaction.
func NewEmpty() *Interaction {
	return &Interaction{Kind: KindEmpty}
}

// NewEmission returns lifeline l emitting message m.
func NewEmission(l, m int) *Interaction {
	return &Interaction{Kind: KindEmission, Lifeline: l, Message: m}
}

// NewReception returns lifeline l receiving message m.
func NewReception(l, m int) *Interaction {
	return &Interaction{Kind: KindReception, Lifeline: l, Message: m}
}

// NewBinary combines left and right with a binary operator other than
// co-region. It returns nil when k is not binary or is KindCoReg.
func NewBinary(k Kind, left, right *Interaction) *Interaction {
	if !k.IsBinary() || k == KindCoReg {
		return nil
	}
	return &Interaction{Kind: k, Children: []*Interaction{left, right}}
}

// NewCoReg combines left and right under a co-region on lifelines.
// lifelines is copied, sorted and deduplicated.
func NewCoReg(lifelines []int, left, right *Interaction) *Interaction {
	return &Interaction{Kind: KindCoReg, CoReg: normalizeLifelines(lifelines), Children: []*Interaction{left, right}}
}

// NewLoop repeats body. It returns nil when k is not a loop kind.
func NewLoop(k Kind, body *Interaction) *Interaction {
	if !k.IsLoop() {
		return nil
	}
	return &Interaction{Kind: k, Children: []*Interaction{body}}
}

// normalizeLifelines returns a sorted copy of ls without duplicates.
func normalizeLifelines(ls []int) []int {
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		i := 0
		for i < len(out) && out[i] < l {
			i++
		}
		if i < len(out) && out[i] == l {
			continue
		}
		out = append(out, 0)
		copy(out[i+1:], out[i:])
		out[i] = l
	}
	return out
}
