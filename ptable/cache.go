package ptable

import (
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
)

// Entry is a flattened, fully-exported mirror of a Table, suitable for
// rezi's reflection-based binary encoding (Table itself keeps its fields
// unexported, same as the teacher keeps game.State's). cmd/ictiobus uses
// this to cache a compiled table to disk and skip recompiling the grammar
// when a decodable cache file is present. The Entry records nothing about
// the grammar source, so a cache is not checked against later edits to it.
type Entry struct {
	Cells     map[int]map[string]CachedAction
	Start     int
	StartHead string
	NumStates int
	Terminals []string
	Nonterms  []string
}

// CachedAction is the exported mirror of Action; Line is flattened to its
// head tag and body tags since grammar.Symbol itself carries no exported
// fields for rezi to walk. Each body entry is prefixed "t:" or "n:" to
// preserve whether it names a terminal or nonterminal.
type CachedAction struct {
	Type     int
	State    int
	LineHead string
	LineBody []string
}

// ToCache flattens t into an Entry.
func (t *Table) ToCache() Entry {
	e := Entry{
		Cells:     map[int]map[string]CachedAction{},
		Start:     t.start,
		StartHead: t.startHead.Tag(),
		NumStates: t.numStates,
		Terminals: append([]string(nil), t.terminals...),
		Nonterms:  append([]string(nil), t.nonterms...),
	}

	for state, row := range t.cells {
		cachedRow := map[string]CachedAction{}
		for symTag, act := range row {
			body := make([]string, len(act.Line.Body))
			for i, sym := range act.Line.Body {
				if sym.IsTerminal() {
					body[i] = "t:" + sym.Tag()
				} else {
					body[i] = "n:" + sym.Tag()
				}
			}
			headTag := ""
			if act.Type == Reduce || act.Type == Accept {
				headTag = act.Line.Head.Tag()
			}
			cachedRow[symTag] = CachedAction{
				Type:     int(act.Type),
				State:    act.State,
				LineHead: headTag,
				LineBody: body,
			}
		}
		e.Cells[state] = cachedRow
	}

	return e
}

// FromCache rebuilds a Table from a previously-cached Entry, without
// needing to re-run FIRST/FOLLOW, automaton construction, or lookahead
// propagation against the original grammar.
func FromCache(e Entry) *Table {
	t := &Table{
		cells:     map[int]map[string]Action{},
		start:     e.Start,
		startHead: grammar.NonTerm(e.StartHead),
		numStates: e.NumStates,
		terminals: append([]string(nil), e.Terminals...),
		nonterms:  append([]string(nil), e.Nonterms...),
	}

	for state, row := range e.Cells {
		cells := map[string]Action{}
		for symTag, ca := range row {
			act := Action{Type: ActionType(ca.Type), State: ca.State}
			if act.Type == Reduce || act.Type == Accept {
				body := make(grammar.Chain, len(ca.LineBody))
				for i, tagged := range ca.LineBody {
					if strings.HasPrefix(tagged, "t:") {
						body[i] = grammar.Term(strings.TrimPrefix(tagged, "t:"))
					} else {
						body[i] = grammar.NonTerm(strings.TrimPrefix(tagged, "n:"))
					}
				}
				if act.Type == Reduce {
					act.Line = grammar.ProductionLine{Head: grammar.NonTerm(ca.LineHead), Body: body}
				}
			}
			cells[symTag] = act
		}
		t.cells[state] = cells
	}

	return t
}
