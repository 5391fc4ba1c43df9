// Package item implements LR(0) and LR(1) items (C3): a production
// alternative with a dot marking how much of it has been recognized so
// far, plus, for LR(1), a single lookahead terminal.
package item

import (
	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
)

// LR0Item is a production alternative with a dot position: Left holds the
// symbols already recognized, Right holds the symbols still to come. The
// next symbol to recognize, if any, is Right[0].
type LR0Item struct {
	Head  grammar.Symbol
	Left  grammar.Chain
	Right grammar.Chain
}

// New returns the LR0Item for head -> body with the dot at position dot
// (0 <= dot <= len(body)). Returns a gerrors KindInvalidStackPosition error
// if dot is out of range.
func New(head grammar.Symbol, body grammar.Chain, dot int) (LR0Item, error) {
	if dot < 0 || dot > len(body) {
		return LR0Item{}, gerrors.InvalidStackPosition(dot, len(body))
	}
	return LR0Item{
		Head:  head,
		Left:  append(grammar.Chain{}, body[:dot]...),
		Right: append(grammar.Chain{}, body[dot:]...),
	}, nil
}

// AllOf returns every LR0Item obtainable from head -> body by placing the
// dot at each of its len(body)+1 positions, in order from dot-at-start to
// dot-at-end.
func AllOf(head grammar.Symbol, body grammar.Chain) []LR0Item {
	items := make([]LR0Item, 0, len(body)+1)
	for dot := 0; dot <= len(body); dot++ {
		it, _ := New(head, body, dot) // dot is always in range here
		items = append(items, it)
	}
	return items
}

// Complete reports whether the dot has reached the end of the production
// (Right is empty): the item represents a fully recognized alternative,
// ready to reduce.
func (it LR0Item) Complete() bool {
	return len(it.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot. If the item is
// complete, it returns the zero Symbol; callers should check Complete
// first.
func (it LR0Item) NextSymbol() grammar.Symbol {
	if it.Complete() {
		return grammar.Symbol{}
	}
	return it.Right[0]
}

// Body reconstructs the full right-hand side this item's dot sits within.
func (it LR0Item) Body() grammar.Chain {
	body := make(grammar.Chain, 0, len(it.Left)+len(it.Right))
	body = append(body, it.Left...)
	body = append(body, it.Right...)
	return body
}

// Advance returns the item with the dot moved one position to the right,
// past NextSymbol. Returns a gerrors KindInvalidStackPosition error if the
// item is already complete.
func (it LR0Item) Advance() (LR0Item, error) {
	if it.Complete() {
		return LR0Item{}, gerrors.InvalidStackPosition(len(it.Left)+1, len(it.Left))
	}
	return LR0Item{
		Head:  it.Head,
		Left:  append(append(grammar.Chain{}, it.Left...), it.Right[0]),
		Right: it.Right[1:],
	}, nil
}

// Equal reports whether it and o are the same item: same head, same left
// and right chains.
func (it LR0Item) Equal(o LR0Item) bool {
	return it.Head.Equal(o.Head) && it.Left.Equal(o.Left) && it.Right.Equal(o.Right)
}

// String renders the item in classic dotted notation, "Head -> left . right".
func (it LR0Item) String() string {
	s := it.Head.String() + " -> "
	if len(it.Left) > 0 {
		s += it.Left.String() + " "
	}
	s += "."
	if len(it.Right) > 0 {
		s += " " + it.Right.String()
	}
	return s
}

// LR1Item is an LR0Item annotated with a single lookahead terminal: the
// core unit of canonical LR(1) and LALR(1) automaton construction.
type LR1Item struct {
	LR0Item
	Lookahead grammar.Symbol
}

// Advance returns the LR1Item with the dot moved one position to the
// right, keeping the same lookahead.
func (it LR1Item) Advance() (LR1Item, error) {
	core, err := it.LR0Item.Advance()
	if err != nil {
		return LR1Item{}, err
	}
	return LR1Item{LR0Item: core, Lookahead: it.Lookahead}, nil
}

// Equal reports whether it and o are the same item with the same
// lookahead.
func (it LR1Item) Equal(o LR1Item) bool {
	return it.LR0Item.Equal(o.LR0Item) && it.Lookahead.Equal(o.Lookahead)
}

// String renders the item as "Head -> left . right, lookahead".
func (it LR1Item) String() string {
	return it.LR0Item.String() + ", " + it.Lookahead.String()
}
