// Package automaton builds the canonical LR(0) collection (C4): a
// deterministic state machine whose states are closed item sets and whose
// transitions are goto edges, keyed by kernel identity so that two states
// reachable by different paths but with the same kernel collapse into one.
package automaton

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
)

// Transition is one outgoing edge of a Graph state: on Symbol, move to
// state To.
type Transition struct {
	Symbol grammar.Symbol
	To     int
}

// Graph is a generic transition-table automaton: a sequence of states of
// type E plus a (from-state, symbol) -> to-state transition function. It
// plays the same role as the teacher's DFA[E] type, trimmed to exactly
// what a canonical LR(0)/LR(1) collection needs — a transition table over
// already-deduplicated states — with the NFA/epsilon-closure/subset-
// construction machinery the teacher used to get from an NFA to a DFA
// removed, since canonical-collection construction builds the DFA states
// directly (see build.go) and never passes through an NFA representation.
type Graph[E any] struct {
	states []E
	trans  []map[string]Transition
	start  int
}

// NewGraph returns an empty Graph.
func NewGraph[E any]() *Graph[E] {
	return &Graph[E]{}
}

// AddState appends value as a new state and returns its index.
func (g *Graph[E]) AddState(value E) int {
	g.states = append(g.states, value)
	g.trans = append(g.trans, map[string]Transition{})
	return len(g.states) - 1
}

// SetStart records which state index is the automaton's start state.
func (g *Graph[E]) SetStart(idx int) {
	g.start = idx
}

// Start returns the start state's index.
func (g *Graph[E]) Start() int {
	return g.start
}

// AddTransition records that, from state `from` on symbol sym, the
// automaton moves to state `to`.
func (g *Graph[E]) AddTransition(from int, sym grammar.Symbol, to int) {
	g.trans[from][symKey(sym)] = Transition{Symbol: sym, To: to}
}

// CopyTransitions adds every transition in t to state from's transition
// table, replacing any existing transition on the same symbol and keeping
// the others, for
// copying a transition table computed over one state-value type onto a
// Graph built over a different one but with matching state indices (as
// lalr.Build does from an LR(0) graph to its LALR(1) counterpart).
func (g *Graph[E]) CopyTransitions(from int, t []Transition) {
	for _, tr := range t {
		g.trans[from][symKey(tr.Symbol)] = tr
	}
}

// Next returns the state reached from `from` on sym, and whether a
// transition for that pair exists.
func (g *Graph[E]) Next(from int, sym grammar.Symbol) (int, bool) {
	tr, ok := g.trans[from][symKey(sym)]
	return tr.To, ok
}

// State returns the value stored at index idx.
func (g *Graph[E]) State(idx int) E {
	return g.states[idx]
}

// States returns every state's value, in the order states were added
// (which is also the order they were first discovered by the work-queue
// construction in build.go).
func (g *Graph[E]) States() []E {
	out := make([]E, len(g.states))
	copy(out, g.states)
	return out
}

// Len returns the number of states in the automaton.
func (g *Graph[E]) Len() int {
	return len(g.states)
}

// Transitions returns the outgoing transitions of state idx.
func (g *Graph[E]) Transitions(idx int) []Transition {
	out := make([]Transition, 0, len(g.trans[idx]))
	for _, tr := range g.trans[idx] {
		out = append(out, tr)
	}
	return out
}

func symKey(sym grammar.Symbol) string {
	return fmt.Sprintf("%d:%s", sym.Kind(), sym.Tag())
}

// String renders a simple "idx: state" listing with transitions, useful for
// -t/--trace output and test failure messages.
func (g *Graph[E]) String() string {
	var sb strings.Builder
	for i, st := range g.states {
		fmt.Fprintf(&sb, "%d: %v\n", i, st)
		for _, tr := range g.trans[i] {
			fmt.Fprintf(&sb, "    %s -> %d\n", tr.Symbol, tr.To)
		}
	}
	return sb.String()
}
