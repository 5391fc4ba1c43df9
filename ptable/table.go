// Package ptable assembles the SHIFT/REDUCE/ACCEPT/GOTO parsing table
// (C6) from a completed LALR(1) automaton, detecting conflicts along the
// way.
package ptable

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/item"
	"github.com/dekarrin/rosed"
)

// ActionType names which of the four productive parser actions a cell
// holds, or that the cell is unset (Error).
type ActionType int

const (
	// Error is the zero value: no action recorded for (state, terminal).
	// Every unrecorded terminal key reads as Error; looking up an
	// unrecorded nonterminal key is a programmer error (see Table.Goto).
	Error ActionType = iota
	Shift
	Reduce
	Goto
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Goto:
		return "goto"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one cell of the parsing table.
type Action struct {
	Type ActionType

	// State is the target state for Shift and Goto.
	State int

	// Line is the production to reduce by, for Reduce.
	Line grammar.ProductionLine
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("shift %d", a.State)
	case Goto:
		return fmt.Sprintf("goto %d", a.State)
	case Reduce:
		return "reduce " + a.Line.String()
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Table is the assembled parsing table: a partial function from (state,
// symbol) to Action.
type Table struct {
	cells      map[int]map[string]Action
	start      int
	startHead  grammar.Symbol
	numStates  int
	terminals  []string
	nonterms   []string
}

// Build assembles the parsing table from a completed LALR(1) automaton
// lalr (as returned by lalr.Build) and the augmented grammar aug it was
// built against.
//
// For every state I and incomplete kernel/nonkernel item A -> alpha . a
// beta with a terminal: Shift(goto(I,a)). For every complete item
// A -> alpha ., a: Reduce(A -> alpha) at terminal a, unless A is the
// augmented start symbol, in which case it is Accept instead. For every
// transition (I, X) -> J with X nonterminal: Goto(J). A different action
// landing on an already-filled cell is a gerrors KindGrammarConflict
// error; writing the identical action again is allowed.
func Build(lalr *automaton.Graph[item.LR1Set], aug *grammar.Grammar) (*Table, error) {
	t := &Table{
		cells:     map[int]map[string]Action{},
		start:     lalr.Start(),
		startHead: aug.StartSymbol(),
		numStates: lalr.Len(),
		terminals: aug.Terminals(),
		nonterms:  aug.Nonterminals(),
	}

	for idx := 0; idx < lalr.Len(); idx++ {
		t.cells[idx] = map[string]Action{}
	}

	for idx := 0; idx < lalr.Len(); idx++ {
		state := lalr.State(idx)

		for _, it := range state.All() {
			if it.Complete() {
				var act Action
				if it.Head.Equal(aug.StartSymbol()) {
					act = Action{Type: Accept}
				} else {
					act = Action{Type: Reduce, Line: grammar.ProductionLine{Head: it.Head, Body: it.Body()}}
				}
				if err := t.set(idx, it.Lookahead.Tag(), act); err != nil {
					return nil, err
				}
			}
		}

		for _, tr := range lalr.Transitions(idx) {
			if tr.Symbol.IsTerminal() {
				if err := t.set(idx, tr.Symbol.Tag(), Action{Type: Shift, State: tr.To}); err != nil {
					return nil, err
				}
			} else {
				if err := t.set(idx, tr.Symbol.Tag(), Action{Type: Goto, State: tr.To}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func (t *Table) set(state int, symTag string, act Action) error {
	existing, ok := t.cells[state][symTag]
	if ok && !actionsEqual(existing, act) {
		return gerrors.GrammarConflict(strconv.Itoa(state), symTag, existing.String(), act.String())
	}
	t.cells[state][symTag] = act
	return nil
}

func actionsEqual(a, b Action) bool {
	if a.Type != b.Type || a.State != b.State {
		return false
	}
	if a.Type == Reduce {
		return a.Line.Head.Equal(b.Line.Head) && a.Line.Body.Equal(b.Line.Body)
	}
	return true
}

// Action returns the action for (state, terminal). An unrecorded terminal
// reads as Action{Type: Error}.
func (t *Table) Action(state int, terminal grammar.Symbol) Action {
	act, ok := t.cells[state][terminal.Tag()]
	if !ok {
		return Action{Type: Error}
	}
	return act
}

// Goto returns the state to transition to after reducing to nonterminal,
// from state. Callers must only call this after confirming a Goto action
// is expected at this cell (via a prior Reduce's Action.Line.Head); an
// unrecorded nonterminal key is a programmer error and Goto panics.
func (t *Table) Goto(state int, nonterminal grammar.Symbol) int {
	act, ok := t.cells[state][nonterminal.Tag()]
	if !ok || act.Type != Goto {
		panic(fmt.Sprintf("no GOTO entry for state %d on %q", state, nonterminal.Tag()))
	}
	return act.State
}

// Initial returns the automaton's start state index.
func (t *Table) Initial() int {
	return t.start
}

// TerminalTags returns every terminal tag the table was built over, in the
// same order columns appear in String(). Used by package parser to build
// an "expected X, Y, or Z" message without needing the source grammar.
func (t *Table) TerminalTags() []string {
	return append([]string(nil), t.terminals...)
}

// String renders the table as a bordered grid, terminals then
// nonterminals across the top, states down the side.
func (t *Table) String() string {
	header := append([]string{""}, t.terminals...)
	header = append(header, t.nonterms...)

	data := [][]string{header}
	for i := 0; i < t.numStates; i++ {
		row := []string{strconv.Itoa(i)}
		for _, term := range t.terminals {
			row = append(row, t.cellString(i, term))
		}
		for _, nt := range t.nonterms {
			row = append(row, t.cellString(i, nt))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 120, rosed.Options{TableBorders: true}).
		String()
}

func (t *Table) cellString(state int, symTag string) string {
	act, ok := t.cells[state][symTag]
	if !ok {
		return ""
	}
	return act.String()
}
