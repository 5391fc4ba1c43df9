// Package lalr computes LALR(1) lookaheads for the canonical LR(0)
// collection (C5), via the DeRemer-Pennello "generate / propagate"
// algorithm: rather than build the full canonical LR(1) collection and
// merge states with identical cores (which the teacher's
// NewLALR1ViablePrefixDFA does, and which is correct but needlessly
// expensive), this computes each kernel item's lookahead set directly
// against the already-built LR(0) automaton.
//
// This package completes work the teacher left unfinished: its own
// parse/lalr.go contains a computeLALR1Kernels function implementing the
// same textbook algorithm (Algorithm 4.62/4.63), but its propagation pass
// is commented out and the function returns an empty kernel set with a
// "TODO: actually convert the table results to this" left in place; the
// teacher's actually-used LALR(1) construction goes through the
// full-LR(1)-then-merge-by-core path instead. The steps below (A-D) are
// the completed version of that abandoned attempt.
package lalr

import (
	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/collect"
	"github.com/dekarrin/ictiobus/item"
)

// edge names a single kernel item within a single LR(0) state: the unit
// the propagation graph is built over.
type edge = collect.Key2[int, string]

// lookaheadSet maps an edge to the set of terminal tags established for
// it so far (spontaneous generation, then propagation).
type lookaheadSet = collect.Grouped[int, string, map[string]bool]

// Build computes the LALR(1) automaton for g: an automaton.Graph[item.LR1Set]
// with the same shape (same states, same transitions) as lr0, but with
// each state's kernel carrying the LALR(1) lookaheads computed by
// propagation rather than the full canonical LR(1) construction.
//
// lr0 and aug must be the values returned by automaton.Build(g) for the
// same g.
func Build(lr0 *automaton.Graph[item.LR0Set], aug *grammar.Grammar) *automaton.Graph[item.LR1Set] {
	ff := aug.FirstFollow()
	sentinel := uniqueSentinel(aug)

	lookaheads := collect.NewGrouped[int, string, map[string]bool]()
	var propagations []struct{ from, to edge }

	// Step A: per-state relationships.
	for idx := 0; idx < lr0.Len(); idx++ {
		state := lr0.State(idx)
		for _, k := range state.Kernel {
			seed := item.LR1Item{LR0Item: k, Lookahead: sentinel}
			closed := item.KernelOf1(seed).Closure(aug, ff)

			for _, it := range closed.All() {
				if it.Complete() {
					continue
				}
				x := it.NextSymbol()
				toIdx, ok := lr0.Next(idx, x)
				if !ok {
					continue
				}
				shifted, err := it.LR0Item.Advance()
				if err != nil {
					continue
				}

				if it.Lookahead.Equal(sentinel) {
					from := edge{Outer: idx, Inner: k.String()}
					to := edge{Outer: toIdx, Inner: shifted.String()}
					propagations = append(propagations, struct{ from, to edge }{from, to})
				} else {
					addLookahead(lookaheads, toIdx, shifted.String(), it.Lookahead.Tag())
				}
			}
		}
	}

	// Step B: seeding.
	startState := lr0.State(lr0.Start())
	if len(startState.Kernel) == 1 {
		addLookahead(lookaheads, lr0.Start(), startState.Kernel[0].String(), grammar.EndOfInput.Tag())
	}

	// Step C: fixed-point propagation.
	changed := true
	for changed {
		changed = false
		for _, p := range propagations {
			fromSet, ok := lookaheads.Get(p.from.Outer, p.from.Inner)
			if !ok || len(fromSet) == 0 {
				continue
			}
			for term := range fromSet {
				if addLookahead(lookaheads, p.to.Outer, p.to.Inner, term) {
					changed = true
				}
			}
		}
	}

	// Step D: materialize LALR(1) states, carrying transitions over
	// verbatim from the LR(0) graph.
	lalr := automaton.NewGraph[item.LR1Set]()
	for idx := 0; idx < lr0.Len(); idx++ {
		state := lr0.State(idx)
		var kernel []item.LR1Item
		for _, k := range state.Kernel {
			terms, _ := lookaheads.Get(idx, k.String())
			for tag := range terms {
				kernel = append(kernel, item.LR1Item{LR0Item: k, Lookahead: grammar.Term(tag)})
			}
		}
		lalrState := item.KernelOf1(kernel...).Closure(aug, ff)
		lalr.AddState(lalrState)
	}
	lalr.SetStart(lr0.Start())

	for idx := 0; idx < lr0.Len(); idx++ {
		lalr.CopyTransitions(idx, lr0.Transitions(idx))
	}

	return lalr
}

// addLookahead unions term into the set at (state, core), creating the
// entry if needed, and reports whether the set actually grew.
func addLookahead(g lookaheadSet, state int, core, term string) bool {
	set, ok := g.Get(state, core)
	if !ok {
		set = map[string]bool{}
		g.Set(state, core, set)
	}
	if set[term] {
		return false
	}
	set[term] = true
	return true
}

// uniqueSentinel returns a terminal symbol guaranteed not to collide with
// any terminal already registered in g: the "#" generator-local sentinel
// used to seed the spontaneous/propagated distinction in Step A.
func uniqueSentinel(g *grammar.Grammar) grammar.Symbol {
	tag := "#"
	for g.IsTerminal(tag) {
		tag += "#"
	}
	return grammar.Term(tag)
}
