package item

import (
	"sort"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
)

// LR0Set is an LR(0) item set partitioned into kernel items (the dot is not
// at position 0, or the item is the augmented start item) and nonkernel
// items (everything added purely by Closure). Equality and the set's hash
// key are defined on the kernel alone: two sets with the same kernel are
// the same automaton state, regardless of what Closure happened to add,
// since the nonkernel is always a deterministic function of the kernel
// under a fixed grammar.
type LR0Set struct {
	Kernel    []LR0Item
	Nonkernel []LR0Item
}

// KernelOf returns a new, unclosed LR0Set whose kernel is exactly the given
// items (deduplicated) and whose nonkernel is empty. Call Closure to
// populate the nonkernel before using the set for goto.
func KernelOf(items ...LR0Item) LR0Set {
	var kernel []LR0Item
	for _, it := range items {
		dup := false
		for _, k := range kernel {
			if k.Equal(it) {
				dup = true
				break
			}
		}
		if !dup {
			kernel = append(kernel, it)
		}
	}
	return LR0Set{Kernel: kernel}
}

// All returns every item in the set, kernel first then nonkernel.
func (s LR0Set) All() []LR0Item {
	out := make([]LR0Item, 0, len(s.Kernel)+len(s.Nonkernel))
	out = append(out, s.Kernel...)
	out = append(out, s.Nonkernel...)
	return out
}

// CoreKey returns a string uniquely determined by the set's kernel (and by
// nothing else), suitable for use as a map key when deduplicating states in
// the canonical-collection work queue. Per spec invariant 5, two LR0Sets
// with the same kernel (in any order) must produce the same CoreKey.
func (s LR0Set) CoreKey() string {
	keys := make([]string, len(s.Kernel))
	for i, it := range s.Kernel {
		keys[i] = it.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

// Closure computes the closure of s's kernel under g: repeatedly, for every
// item A -> alpha . B beta with B a nonterminal, add every item B -> . gamma
// for each alternative gamma of B's production, until the set stops
// growing. Returns a new LR0Set with the same kernel and a populated
// nonkernel; s itself is not modified.
func (s LR0Set) Closure(g *grammar.Grammar) LR0Set {
	seen := map[string]LR0Item{}
	for _, it := range s.Kernel {
		seen[it.String()] = it
	}

	work := append([]LR0Item{}, s.Kernel...)
	for len(work) > 0 {
		it := work[0]
		work = work[1:]

		if it.Complete() {
			continue
		}
		next := it.NextSymbol()
		if !next.IsNonterminal() {
			continue
		}
		prod, ok := g.Production(next.Tag())
		if !ok {
			continue
		}
		for _, alt := range prod.Alternatives() {
			newItem, err := New(next, alt, 0)
			if err != nil {
				continue
			}
			key := newItem.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = newItem
			work = append(work, newItem)
		}
	}

	var nonkernel []LR0Item
	for key, it := range seen {
		isKernel := false
		for _, k := range s.Kernel {
			if k.String() == key {
				isKernel = true
				break
			}
		}
		if !isKernel {
			nonkernel = append(nonkernel, it)
		}
	}
	sort.Slice(nonkernel, func(i, j int) bool { return nonkernel[i].String() < nonkernel[j].String() })

	return LR0Set{Kernel: append([]LR0Item{}, s.Kernel...), Nonkernel: nonkernel}
}

// Goto computes goto(s, X): from s (assumed already closed), collect the
// dot-advanced form of every incomplete item whose NextSymbol is X, forming
// the kernel of the successor state. The result is unclosed; call Closure
// on it before further use.
func (s LR0Set) Goto(x grammar.Symbol) LR0Set {
	var kernel []LR0Item
	for _, it := range s.All() {
		if it.Complete() || !it.NextSymbol().Equal(x) {
			continue
		}
		advanced, err := it.Advance()
		if err != nil {
			continue
		}
		kernel = append(kernel, advanced)
	}
	return KernelOf(kernel...)
}

// NextSymbols returns, in deterministic order, every symbol that appears
// immediately after the dot of some incomplete item in the set: the set of
// symbols goto must be computed for.
func (s LR0Set) NextSymbols() []grammar.Symbol {
	seen := map[string]grammar.Symbol{}
	for _, it := range s.All() {
		if it.Complete() {
			continue
		}
		sym := it.NextSymbol()
		seen[string(sym.Kind())+"\x00"+sym.Tag()] = sym
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]grammar.Symbol, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}

// LR1Set is the LR(1) analogue of LR0Set: item identity for kernel/hash
// purposes is still defined on the LR0 cores alone (CoreKey), since two
// LR(1) states with the same core items but different lookaheads are
// exactly what the LALR(1) merge step (package lalr) unifies.
type LR1Set struct {
	Kernel    []LR1Item
	Nonkernel []LR1Item
}

// KernelOf1 returns a new, unclosed LR1Set whose kernel is exactly the
// given items (deduplicated).
func KernelOf1(items ...LR1Item) LR1Set {
	var kernel []LR1Item
	for _, it := range items {
		dup := false
		for _, k := range kernel {
			if k.Equal(it) {
				dup = true
				break
			}
		}
		if !dup {
			kernel = append(kernel, it)
		}
	}
	return LR1Set{Kernel: kernel}
}

// All returns every item in the set, kernel first then nonkernel.
func (s LR1Set) All() []LR1Item {
	out := make([]LR1Item, 0, len(s.Kernel)+len(s.Nonkernel))
	out = append(out, s.Kernel...)
	out = append(out, s.Nonkernel...)
	return out
}

// CoreKey returns the same kernel-derived key an LR0Set with the same core
// items (lookaheads stripped) would return, so an LR1Set's automaton state
// can be compared against an LR0Set's.
func (s LR1Set) CoreKey() string {
	keys := make([]string, len(s.Kernel))
	for i, it := range s.Kernel {
		keys[i] = it.LR0Item.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

// Closure computes the LR(1) closure of s's kernel under g: repeatedly,
// for every item A -> alpha . B beta, a with B a nonterminal, add every
// item B -> . gamma, b for each alternative gamma of B's production and
// each terminal b in FIRST(beta a), until the set stops growing.
func (s LR1Set) Closure(g *grammar.Grammar, ff *grammar.FirstFollow) LR1Set {
	seen := map[string]LR1Item{}
	for _, it := range s.Kernel {
		seen[it.String()] = it
	}

	work := append([]LR1Item{}, s.Kernel...)
	for len(work) > 0 {
		it := work[0]
		work = work[1:]

		if it.Complete() {
			continue
		}
		next := it.NextSymbol()
		if !next.IsNonterminal() {
			continue
		}
		prod, ok := g.Production(next.Tag())
		if !ok {
			continue
		}

		beta := it.Right[1:]
		betaLookahead := append(grammar.Chain{}, beta...)
		betaLookahead = append(betaLookahead, it.Lookahead)
		lookaheads := ff.FirstOfChain(betaLookahead)

		for _, alt := range prod.Alternatives() {
			core, err := New(next, alt, 0)
			if err != nil {
				continue
			}
			for _, la := range lookaheads.Terms() {
				newItem := LR1Item{LR0Item: core, Lookahead: la}
				key := newItem.String()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = newItem
				work = append(work, newItem)
			}
		}
	}

	var nonkernel []LR1Item
	for key, it := range seen {
		isKernel := false
		for _, k := range s.Kernel {
			if k.String() == key {
				isKernel = true
				break
			}
		}
		if !isKernel {
			nonkernel = append(nonkernel, it)
		}
	}
	sort.Slice(nonkernel, func(i, j int) bool { return nonkernel[i].String() < nonkernel[j].String() })

	return LR1Set{Kernel: append([]LR1Item{}, s.Kernel...), Nonkernel: nonkernel}
}

// Goto computes goto(s, X) for an LR(1) set the same way LR0Set.Goto does,
// carrying lookaheads through unchanged.
func (s LR1Set) Goto(x grammar.Symbol) LR1Set {
	var kernel []LR1Item
	for _, it := range s.All() {
		if it.Complete() || !it.NextSymbol().Equal(x) {
			continue
		}
		advanced, err := it.Advance()
		if err != nil {
			continue
		}
		kernel = append(kernel, advanced)
	}
	return KernelOf1(kernel...)
}
