package automaton

import (
	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/item"
)

// Build constructs the canonical LR(0) collection of g (spec Algorithm,
// §4.3): starting from the singleton kernel {S' -> . S} of g's augmented
// grammar, repeatedly close the current state, group its incomplete items
// by next symbol, and goto each one, enqueuing any state whose kernel
// hasn't been seen before. The work queue is deduped by LR0Set.CoreKey,
// which depends only on each state's kernel, so two paths that reach the
// same kernel collapse into a single state as required by the kernel-only
// identity invariant.
//
// Build augments g itself (via Grammar.Augmented) rather than requiring an
// already-augmented grammar, and returns the augmented grammar alongside
// the automaton since later stages (lalr, ptable) need to refer to the
// fresh start symbol.
func Build(g *grammar.Grammar) (*Graph[item.LR0Set], *grammar.Grammar, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	aug := g.Augmented()
	if err := aug.Validate(); err != nil {
		return nil, nil, err
	}

	startProd, ok := aug.Production(aug.StartSymbol().Tag())
	if !ok || len(startProd.Alternatives()) != 1 {
		return nil, nil, gerrors.NonAugmentedGrammar("augmented start symbol must have exactly one derivation")
	}

	startItem, err := item.New(aug.StartSymbol(), startProd.Alternatives()[0], 0)
	if err != nil {
		return nil, nil, err
	}
	startSet := item.KernelOf(startItem).Closure(aug)

	graph := NewGraph[item.LR0Set]()
	index := map[string]int{}

	startIdx := graph.AddState(startSet)
	graph.SetStart(startIdx)
	index[startSet.CoreKey()] = startIdx

	queue := []int{startIdx}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		state := graph.State(idx)
		for _, x := range state.NextSymbols() {
			successor := state.Goto(x).Closure(aug)
			key := successor.CoreKey()

			target, exists := index[key]
			if !exists {
				target = graph.AddState(successor)
				index[key] = target
				queue = append(queue, target)
			}
			graph.AddTransition(idx, x, target)
		}
	}

	return graph, aug, nil
}
