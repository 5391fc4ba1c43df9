package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/internal/collect"
)

// Grammar is a context-free grammar: a set of productions, one per
// nonterminal, plus a distinguished start nonterminal. It is built
// incrementally with AddProduction and AddTerminal, then checked with
// Validate before any analysis (FIRST/FOLLOW, automaton construction) is
// attempted on it.
//
// Productions are uniquely keyed by their head nonterminal's tag: a second
// call to AddProduction for an already-known head adds another alternative
// to the existing Production rather than replacing it, mirroring how a
// grammar author writes "A -> x | y" across two separate rule lines.
type Grammar struct {
	productions map[string]*Production
	order       []string
	terminals   map[string]bool
	start       string
}

// New returns an empty Grammar with the given start nonterminal tag. start
// need not have a production yet; Validate will reject the grammar if one
// is never added.
func New(start string) *Grammar {
	return &Grammar{
		productions: map[string]*Production{},
		terminals:   map[string]bool{},
		start:       start,
	}
}

// StartSymbol returns the grammar's distinguished start nonterminal.
func (g *Grammar) StartSymbol() Symbol {
	return NonTerm(g.start)
}

// AddTerminal registers tag as a terminal symbol of the grammar's alphabet.
// A terminal used on a production's right-hand side must be registered
// here by the time Validate runs (AddProduction itself does not check
// terminals, so the two calls may come in either order); this mirrors the teacher's
// AddTerm/AddRule split, which catches typos that would otherwise silently
// introduce an undefined nonterminal instead.
func (g *Grammar) AddTerminal(tag string) {
	g.terminals[tag] = true
}

// AddProduction adds body as a new alternative of head's production,
// creating the production if this is the first time head has been used.
// Returns a gerrors KindDuplicateDerivation error if body is already an
// alternative of head, or KindUndefinedNonterminal if head is not a
// nonterminal. A production left with no alternatives is reported by
// Validate (KindEmptyProduction), never by this method.
func (g *Grammar) AddProduction(head Symbol, body Chain) error {
	if !head.IsNonterminal() {
		return gerrors.UndefinedNonterminal(head.Tag())
	}

	prod, ok := g.productions[head.Tag()]
	if !ok {
		prod = newProduction(head)
		g.productions[head.Tag()] = prod
		g.order = append(g.order, head.Tag())
	}

	return prod.addAlternative(body)
}

// Production returns the production for the nonterminal with the given tag,
// and whether one exists.
func (g *Grammar) Production(tag string) (*Production, bool) {
	p, ok := g.productions[tag]
	return p, ok
}

// Productions returns every production in the grammar, in the order their
// heads were first introduced via AddProduction.
func (g *Grammar) Productions() []*Production {
	out := make([]*Production, len(g.order))
	for i, tag := range g.order {
		out[i] = g.productions[tag]
	}
	return out
}

// Nonterminals returns the tags of every nonterminal with a production, in
// the order they were introduced.
func (g *Grammar) Nonterminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns the tags of every registered terminal, sorted for
// deterministic output.
func (g *Grammar) Terminals() []string {
	return collect.OrderedKeys(g.terminals)
}

// IsTerminal reports whether tag was registered with AddTerminal.
func (g *Grammar) IsTerminal(tag string) bool {
	return g.terminals[tag]
}

// Augmented returns a new Grammar equal to g but with a fresh start symbol
// S' and a single production S' -> S added, where S is g's old start
// symbol. This guarantees the new start symbol derives nothing else and
// appears on no right-hand side, which canonical LR(0)/LALR(1) automaton
// construction requires so that acceptance can be detected by a single
// distinguished reduction. If g is already augmented (as reported by
// isAugmented), g is returned as-is.
func (g *Grammar) Augmented() *Grammar {
	if g.isAugmented() {
		return g
	}

	newStart := g.start + "'"
	for _, used := g.productions[newStart]; used; _, used = g.productions[newStart] {
		newStart += "'"
	}

	aug := New(newStart)
	for t := range g.terminals {
		aug.AddTerminal(t)
	}
	for _, tag := range g.order {
		aug.productions[tag] = g.productions[tag]
		aug.order = append(aug.order, tag)
	}
	aug.productions[newStart] = newProduction(NonTerm(newStart))
	// addAlternative cannot fail here: newStart was just minted and has no
	// existing alternatives to collide with.
	_ = aug.productions[newStart].addAlternative(Chain{NonTerm(g.start)})
	aug.order = append([]string{newStart}, aug.order...)

	return aug
}

// isAugmented reports whether the grammar's start symbol has exactly one
// derivation, consisting of a single nonterminal, and does not itself
// appear on any production's right-hand side.
func (g *Grammar) isAugmented() bool {
	prod, ok := g.productions[g.start]
	if !ok {
		return false
	}
	if len(prod.alternatives) != 1 {
		return false
	}
	alt := prod.alternatives[0]
	if len(alt) != 1 || !alt[0].IsNonterminal() {
		return false
	}

	for _, tag := range g.order {
		if tag == g.start {
			continue
		}
		for _, alt := range g.productions[tag].alternatives {
			for _, sym := range alt {
				if sym.IsNonterminal() && sym.Tag() == g.start {
					return false
				}
			}
		}
	}
	return true
}

// Validate checks structural well-formedness: every nonterminal referenced
// on a right-hand side has a production, every terminal referenced on a
// right-hand side was registered with AddTerminal, every production has at
// least one alternative, and the start symbol has a production.
func (g *Grammar) Validate() error {
	if _, ok := g.productions[g.start]; !ok {
		return gerrors.UndefinedNonterminal(g.start)
	}

	for _, tag := range g.order {
		prod := g.productions[tag]
		if err := prod.validate(); err != nil {
			return err
		}
		for _, alt := range prod.alternatives {
			for _, sym := range alt {
				if sym.IsNonterminal() {
					if _, ok := g.productions[sym.Tag()]; !ok {
						return gerrors.UndefinedNonterminal(sym.Tag())
					}
				} else if !g.terminals[sym.Tag()] && sym.Tag() != EndOfInput.Tag() {
					return fmt.Errorf("undefined terminal %q referenced by %q", sym.Tag(), tag)
				}
			}
		}
	}

	return nil
}

// String renders the grammar as one "HEAD -> alt1 | alt2 | ..." line per
// production, in declaration order.
func (g *Grammar) String() string {
	var sb strings.Builder
	for i, tag := range g.order {
		if i > 0 {
			sb.WriteByte('\n')
		}
		prod := g.productions[tag]
		sb.WriteString(tag)
		sb.WriteString(" -> ")
		for j, alt := range prod.alternatives {
			if j > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(alt.String())
		}
	}
	return sb.String()
}
