package grammar

import "github.com/dekarrin/ictiobus/gerrors"

// ProductionLine pairs a nonterminal with one right-hand-side Chain: one
// alternative of a Production, with its head symbol attached. Most grammar
// operations work in terms of Production (all alternatives of one
// nonterminal at once); ProductionLine exists for call sites that need a
// single alternative without the rest of its siblings, such as item
// construction.
type ProductionLine struct {
	Head Symbol
	Body Chain
}

// String renders the line in "HEAD -> a b c" form, or "HEAD -> ε" if Body is
// empty.
func (pl ProductionLine) String() string {
	return pl.Head.String() + " -> " + pl.Body.String()
}

// Production groups every alternative right-hand side sharing one left-hand
// nonterminal. Alternatives are a set: adding the same Chain twice is
// rejected rather than silently deduplicated, since a grammar author who
// wrote the same alternative twice almost certainly made a mistake.
type Production struct {
	head         Symbol
	alternatives []Chain
	nullable     bool
}

// newProduction returns an empty Production for head, with no alternatives
// yet. Callers must add at least one alternative with addAlternative before
// the production is valid; Grammar.Validate checks this.
func newProduction(head Symbol) *Production {
	return &Production{head: head}
}

// Head returns the nonterminal this production derives from.
func (p *Production) Head() Symbol {
	return p.head
}

// Alternatives returns the right-hand-side chains of this production, in
// the order they were added.
func (p *Production) Alternatives() []Chain {
	out := make([]Chain, len(p.alternatives))
	copy(out, p.alternatives)
	return out
}

// Lines returns every alternative as a ProductionLine with Head already
// filled in.
func (p *Production) Lines() []ProductionLine {
	lines := make([]ProductionLine, len(p.alternatives))
	for i, alt := range p.alternatives {
		lines[i] = ProductionLine{Head: p.head, Body: alt}
	}
	return lines
}

// HasAlternative reports whether chain is already one of this production's
// alternatives.
func (p *Production) HasAlternative(chain Chain) bool {
	for _, alt := range p.alternatives {
		if alt.Equal(chain) {
			return true
		}
	}
	return false
}

// Nullable reports whether this nonterminal can derive ε, directly or
// transitively through other nullable nonterminals. It is only meaningful
// after Grammar.FirstFollow (or an operation that calls it, such as
// lalr.Build) has run; before that it is always false. Validate does not
// compute it.
func (p *Production) Nullable() bool {
	return p.nullable
}

// addAlternative appends chain as a new alternative, rejecting an exact
// duplicate of one already present and rejecting an attempt to mix an empty
// (ε) alternative in among others when done via direct duplicate chains;
// empty alternatives are otherwise permitted and are how ε-productions are
// expressed.
func (p *Production) addAlternative(chain Chain) error {
	if p.HasAlternative(chain) {
		return gerrors.DuplicateDerivation(p.head.Tag(), chain.String())
	}
	p.alternatives = append(p.alternatives, chain)
	return nil
}

// validate reports whether this production has at least one alternative.
func (p *Production) validate() error {
	if len(p.alternatives) == 0 {
		return gerrors.EmptyProduction(p.head.Tag())
	}
	return nil
}
