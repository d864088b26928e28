// SPDX-License-Identifier: MIT
// Package: intergen/interaction
//
// generator.go: random interaction generator driven by a probas.Profile.
//
// Model:
//   • Each node draws a category from the profile. Once depth reaches
//     maxDepth only terminal categories are eligible (profile renormalised
//     over them); if they carry no mass the attempt yields nothing.
//   • Binary categories recurse twice, loops once, left to right.
//   • A term with fewer than minSymbols nodes is discarded.
//
// Determinism:
//   • Every random choice reads r in a fixed order, so identical RNG
//     streams give identical terms.
//   • The generator never panics and never returns an error: "no artifact"
//     is reported through the boolean result.

package interaction

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/intergen/probas"
)

// Generator draws random interactions over a fixed Context.
type Generator struct {
	ctx *Context
}

// NewGenerator returns a generator over ctx. ctx needs at least one lifeline
// and one message.
func NewGenerator(ctx *Context) (*Generator, error) {
	if ctx == nil || len(ctx.Lifelines) == 0 || len(ctx.Messages) == 0 {
		return nil, fmt.Errorf("NewGenerator: %w", ErrEmptyContext)
	}
	return &Generator{ctx: ctx}, nil
}

// Context returns the signature the generator draws from.
func (g *Generator) Context() *Context {
	return g.ctx
}

// Generate draws one interaction. It returns false when the profile cannot
// close the term within maxDepth or when the term is smaller than minSymbols.
func (g *Generator) Generate(r *rand.Rand, maxDepth, minSymbols int, p probas.Profile) (*Interaction, bool) {
	term, ok := g.node(r, 0, maxDepth, p)
	if !ok {
		return nil, false
	}
	if term.Symbols() < minSymbols {
		return nil, false
	}
	return term, true
}

func (g *Generator) node(r *rand.Rand, depth, maxDepth int, p probas.Profile) (*Interaction, bool) {
	var c probas.Category
	if depth >= maxDepth {
		var ok bool
		if c, ok = p.DrawAmong(r, probas.TerminalCategories()...); !ok {
			return nil, false
		}
	} else {
		c = p.Draw(r)
	}

	switch c {
	case probas.Empty:
		return NewEmpty(), true
	case probas.Action:
		return NewEmission(g.lifeline(r), g.message(r)), true
	case probas.Leaf:
		return NewReception(g.lifeline(r), g.message(r)), true
	case probas.Transmission:
		return g.transmission(r), true
	case probas.Broadcast:
		return g.broadcast(r), true
	case probas.CoRegion:
		lifelines := g.coRegion(r)
		left, right, ok := g.pair(r, depth, maxDepth, p)
		if !ok {
			return nil, false
		}
		return NewCoReg(lifelines, left, right), true
	case probas.Strict, probas.Sequence, probas.Parallel, probas.Alternative:
		left, right, ok := g.pair(r, depth, maxDepth, p)
		if !ok {
			return nil, false
		}
		return NewBinary(binaryKind(c), left, right), true
	case probas.LoopStrict, probas.LoopWeak, probas.LoopInterleaved:
		body, ok := g.node(r, depth+1, maxDepth, p)
		if !ok {
			return nil, false
		}
		return NewLoop(loopKind(c), body), true
	default:
		return nil, false
	}
}

func (g *Generator) pair(r *rand.Rand, depth, maxDepth int, p probas.Profile) (*Interaction, *Interaction, bool) {
	left, ok := g.node(r, depth+1, maxDepth, p)
	if !ok {
		return nil, nil, false
	}
	right, ok := g.node(r, depth+1, maxDepth, p)
	if !ok {
		return nil, nil, false
	}
	return left, right, true
}

func (g *Generator) lifeline(r *rand.Rand) int { return r.Intn(len(g.ctx.Lifelines)) }
func (g *Generator) message(r *rand.Rand) int  { return r.Intn(len(g.ctx.Messages)) }

// otherLifeline picks a lifeline different from l when the signature has
// more than one.
func (g *Generator) otherLifeline(r *rand.Rand, l int) int {
	n := len(g.ctx.Lifelines)
	if n < 2 {
		return l
	}
	o := r.Intn(n - 1)
	if o >= l {
		o++
	}
	return o
}

// transmission builds strict(emission, reception) of the same message.
func (g *Generator) transmission(r *rand.Rand) *Interaction {
	from, m := g.lifeline(r), g.message(r)
	to := g.otherLifeline(r, from)
	return NewBinary(KindStrict, NewEmission(from, m), NewReception(to, m))
}

// broadcast builds strict(emission, seq(reception, ...)) with receivers
// drawn among the other lifelines.
func (g *Generator) broadcast(r *rand.Rand) *Interaction {
	from, m := g.lifeline(r), g.message(r)
	others := make([]int, 0, len(g.ctx.Lifelines))
	for l := range g.ctx.Lifelines {
		if l != from {
			others = append(others, l)
		}
	}
	if len(others) == 0 {
		return NewBinary(KindStrict, NewEmission(from, m), NewReception(from, m))
	}
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	receivers := others[:1+r.Intn(len(others))]

	var tail *Interaction
	for k := len(receivers) - 1; k >= 0; k-- {
		rcv := NewReception(receivers[k], m)
		if tail == nil {
			tail = rcv
			continue
		}
		tail = NewBinary(KindSeq, rcv, tail)
	}
	return NewBinary(KindStrict, NewEmission(from, m), tail)
}

// coRegion draws each lifeline with probability 1/2; an empty draw keeps
// one lifeline so the co-region is never vacuous.
func (g *Generator) coRegion(r *rand.Rand) []int {
	out := make([]int, 0, len(g.ctx.Lifelines))
	for l := range g.ctx.Lifelines {
		if r.Intn(2) == 1 {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		out = append(out, g.lifeline(r))
	}
	return out
}

func binaryKind(c probas.Category) Kind {
	switch c {
	case probas.Strict:
		return KindStrict
	case probas.Sequence:
		return KindSeq
	case probas.Parallel:
		return KindPar
	default:
		return KindAlt
	}
}

func loopKind(c probas.Category) Kind {
	switch c {
	case probas.LoopStrict:
		return KindLoopStrict
	case probas.LoopWeak:
		return KindLoopWeak
	default:
		return KindLoopInterleaved
	}
}
