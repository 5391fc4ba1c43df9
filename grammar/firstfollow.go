package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// symbolComparator orders Symbols by Kind then Tag, giving treeset a total
// order to sort by. Terminals sort before nonterminals so FIRST sets (which
// hold only terminals, plus the synthetic "$") print in a stable, readable
// order without depending on insertion history.
func symbolComparator(a, b interface{}) int {
	sa, sb := a.(Symbol), b.(Symbol)
	if sa.kind != sb.kind {
		return int(sa.kind) - int(sb.kind)
	}
	return strings.Compare(sa.tag, sb.tag)
}

// FirstSet is the FIRST set of some Chain or Symbol: the terminals that can
// begin a string it derives, plus a separate Nullable flag recording
// whether ε is also derivable. Nullability is tracked as a flag rather than
// as a member of the terminal set (the teacher's grammar package folds
// Epsilon into the set itself as a sentinel member) so that FirstSet.Terms
// never needs a caller to filter out a non-terminal sentinel before using
// it as an actual lookahead set.
type FirstSet struct {
	terms    *treeset.Set
	Nullable bool
}

func newFirstSet() *FirstSet {
	return &FirstSet{terms: treeset.NewWith(symbolComparator)}
}

// Terms returns the terminal symbols in the set, ordered deterministically.
func (f *FirstSet) Terms() []Symbol {
	return toSymbols(f.terms)
}

// Has reports whether t is in the set.
func (f *FirstSet) Has(t Symbol) bool {
	return f.terms.Contains(t)
}

func (f *FirstSet) add(t Symbol) bool {
	if f.terms.Contains(t) {
		return false
	}
	f.terms.Add(t)
	return true
}

// union merges other into f, returning whether f changed. Used by the
// FIRST fixed-point loop in Grammar.FirstFollow.
func (f *FirstSet) union(other *FirstSet) bool {
	changed := false
	other.terms.Each(func(_ int, t interface{}) {
		if f.add(t.(Symbol)) {
			changed = true
		}
	})
	if other.Nullable && !f.Nullable {
		f.Nullable = true
		changed = true
	}
	return changed
}

// FollowSet is the FOLLOW set of some nonterminal: the terminals that can
// immediately follow it in some derivation from the start symbol. The
// end-of-input sentinel EndOfInput ("$") is stored as an ordinary member,
// for the start symbol and for every nonterminal that can end a sentential
// form; there is no separate flag for it.
type FollowSet struct {
	terms *treeset.Set
}

func newFollowSet() *FollowSet {
	return &FollowSet{terms: treeset.NewWith(symbolComparator)}
}

// Terms returns the terminals in the set, ordered deterministically.
func (f *FollowSet) Terms() []Symbol {
	return toSymbols(f.terms)
}

// Has reports whether t is in the set.
func (f *FollowSet) Has(t Symbol) bool {
	return f.terms.Contains(t)
}

func (f *FollowSet) add(t Symbol) bool {
	if f.terms.Contains(t) {
		return false
	}
	f.terms.Add(t)
	return true
}

func (f *FollowSet) union(other *FollowSet) bool {
	changed := false
	other.terms.Each(func(_ int, t interface{}) {
		if f.add(t.(Symbol)) {
			changed = true
		}
	})
	return changed
}

func toSymbols(s *treeset.Set) []Symbol {
	vals := s.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}

// FirstFollow holds the FIRST set of every symbol and the FOLLOW set of
// every nonterminal in a grammar. Call Grammar.FirstFollow to build one;
// that call also records each Production's Nullable flag on the
// Production itself.
type FirstFollow struct {
	first  map[string]*FirstSet
	follow map[string]*FollowSet
}

// First returns the FIRST set of the given symbol. For a terminal this is
// always just {sym}; for a nonterminal it is the computed set.
func (ff *FirstFollow) First(sym Symbol) *FirstSet {
	if sym.IsTerminal() {
		fs := newFirstSet()
		fs.add(sym)
		return fs
	}
	if fs, ok := ff.first[sym.Tag()]; ok {
		return fs
	}
	return newFirstSet()
}

// FirstOfChain returns the FIRST set of an entire right-hand-side chain:
// the union of FIRST(chain[0]), and if that is nullable, FIRST(chain[1]),
// and so on, with Nullable set if every symbol in the chain is nullable (or
// the chain is empty).
func (ff *FirstFollow) FirstOfChain(c Chain) *FirstSet {
	result := newFirstSet()
	if c.Empty() {
		result.Nullable = true
		return result
	}

	for _, sym := range c {
		symFirst := ff.First(sym)
		symFirst.terms.Each(func(_ int, t interface{}) { result.add(t.(Symbol)) })
		if !symFirst.Nullable {
			return result
		}
	}
	result.Nullable = true
	return result
}

// Follow returns the FOLLOW set of the given nonterminal.
func (ff *FirstFollow) Follow(sym Symbol) *FollowSet {
	if fs, ok := ff.follow[sym.Tag()]; ok {
		return fs
	}
	return newFollowSet()
}

// FirstFollow computes the FIRST set of every symbol, the FOLLOW set of
// every nonterminal, and the Nullable flag of every Production, via the
// standard monotonic fixed-point iteration (repeatedly union new
// information into every set until a full pass makes no change). This is
// the same "changed := true; for changed { ... }" shape the teacher's
// automaton construction uses for its own worklist convergence, applied
// here to set contents instead of to automaton states.
//
// g must already satisfy Validate; FirstFollow does not re-check
// structural well-formedness.
func (g *Grammar) FirstFollow() *FirstFollow {
	ff := &FirstFollow{
		first:  map[string]*FirstSet{},
		follow: map[string]*FollowSet{},
	}
	for _, tag := range g.order {
		ff.first[tag] = newFirstSet()
		ff.follow[tag] = newFollowSet()
	}

	changed := true
	for changed {
		changed = false
		for _, tag := range g.order {
			prod := g.productions[tag]
			ntFirst := ff.first[tag]

			for _, alt := range prod.alternatives {
				altFirst := newFirstSet()
				reachedEnd := true
				for _, sym := range alt {
					var symFirst *FirstSet
					if sym.IsTerminal() {
						symFirst = newFirstSet()
						symFirst.add(sym)
					} else {
						symFirst = ff.first[sym.Tag()]
					}
					symFirst.terms.Each(func(_ int, t interface{}) { altFirst.add(t.(Symbol)) })
					if !symFirst.Nullable {
						reachedEnd = false
						break
					}
				}
				if alt.Empty() || reachedEnd {
					altFirst.Nullable = true
				}
				if ntFirst.union(altFirst) {
					changed = true
				}
			}

			if ntFirst.Nullable {
				prod.nullable = true
			}
		}
	}

	startFollow := ff.follow[g.start]
	if startFollow.add(EndOfInput) {
		changed = true
	}

	changed = true
	for changed {
		changed = false
		for _, tag := range g.order {
			prod := g.productions[tag]
			for _, alt := range prod.alternatives {
				for i, sym := range alt {
					if !sym.IsNonterminal() {
						continue
					}
					beta := alt[i+1:]
					betaFirst := ff.FirstOfChain(beta)

					symFollow := ff.follow[sym.Tag()]
					betaFirst.terms.Each(func(_ int, t interface{}) {
						if symFollow.add(t.(Symbol)) {
							changed = true
						}
					})
					if betaFirst.Nullable {
						if symFollow.union(ff.follow[tag]) {
							changed = true
						}
					}
				}
			}
		}
	}

	return ff
}
