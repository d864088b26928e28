package interaction

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Canonical returns a compact, context-free rendering of i that is equal
// for two interactions exactly when Equal holds. Actions render as
// "e(l,m)"/"r(l,m)", co-regions as "coreg[l1,l2](a,b)".
func (i *Interaction) Canonical() string {
	var b strings.Builder
	i.writeCanonical(&b)
	return b.String()
}

func (i *Interaction) writeCanonical(b *strings.Builder) {
	if i == nil {
		b.WriteString("nil")
		return
	}
	b.WriteString(i.Kind.String())
	switch {
	case i.Kind == KindEmpty:
		return
	case i.Kind.IsAction():
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(i.Lifeline))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(i.Message))
		b.WriteByte(')')
		return
	case i.Kind == KindCoReg:
		b.WriteByte('[')
		for k, l := range i.CoReg {
			if k > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(l))
		}
		b.WriteByte(']')
	}
	b.WriteByte('(')
	for k, c := range i.Children {
		if k > 0 {
			b.WriteByte(',')
		}
		c.writeCanonical(b)
	}
	b.WriteByte(')')
}

// Hash returns the xxhash-64 digest of the canonical form.
func (i *Interaction) Hash() uint64 {
	return xxhash.Sum64String(i.Canonical())
}

// Equal reports structural equality.
func (i *Interaction) Equal(o *Interaction) bool {
	if i == nil || o == nil {
		return i == o
	}
	if i.Kind != o.Kind {
		return false
	}
	if i.Kind.IsAction() && (i.Lifeline != o.Lifeline || i.Message != o.Message) {
		return false
	}
	if len(i.CoReg) != len(o.CoReg) || len(i.Children) != len(o.Children) {
		return false
	}
	for k := range i.CoReg {
		if i.CoReg[k] != o.CoReg[k] {
			return false
		}
	}
	for k := range i.Children {
		if !i.Children[k].Equal(o.Children[k]) {
			return false
		}
	}
	return true
}

// Symbols counts the nodes of the term, operators and leaves alike.
func (i *Interaction) Symbols() int {
	if i == nil {
		return 0
	}
	n := 1
	for _, c := range i.Children {
		n += c.Symbols()
	}
	return n
}

// Depth is the operator nesting depth; a leaf has depth 0.
func (i *Interaction) Depth() int {
	if i == nil {
		return 0
	}
	d := 0
	for _, c := range i.Children {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}
