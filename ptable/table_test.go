package ptable

import (
	"testing"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lalr"
	"github.com/stretchr/testify/assert"
)

// buildArithGrammar mirrors package grammar's test fixture: the classic
// expression grammar E -> E + T | T, T -> T * F | F, F -> ( E ) | id.
func buildArithGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New("E")
	for _, term := range []string{"+", "*", "(", ")", "id"} {
		g.AddTerminal(term)
	}
	must := func(err error) {
		if err != nil {
			t.Fatalf("unexpected AddProduction error: %v", err)
		}
	}
	must(g.AddProduction(grammar.NonTerm("E"), grammar.Chain{grammar.NonTerm("E"), grammar.Term("+"), grammar.NonTerm("T")}))
	must(g.AddProduction(grammar.NonTerm("E"), grammar.Chain{grammar.NonTerm("T")}))
	must(g.AddProduction(grammar.NonTerm("T"), grammar.Chain{grammar.NonTerm("T"), grammar.Term("*"), grammar.NonTerm("F")}))
	must(g.AddProduction(grammar.NonTerm("T"), grammar.Chain{grammar.NonTerm("F")}))
	must(g.AddProduction(grammar.NonTerm("F"), grammar.Chain{grammar.Term("("), grammar.NonTerm("E"), grammar.Term(")")}))
	must(g.AddProduction(grammar.NonTerm("F"), grammar.Chain{grammar.Term("id")}))
	return g
}

func buildArithTable(t *testing.T) *Table {
	t.Helper()
	g := buildArithGrammar(t)
	lr0, aug, err := automaton.Build(g)
	if err != nil {
		t.Fatal(err)
	}
	lalrGraph := lalr.Build(lr0, aug)
	table, err := Build(lalrGraph, aug)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func Test_Build_ShiftAndGoto(t *testing.T) {
	assert := assert.New(t)

	table := buildArithTable(t)
	start := table.Initial()

	act := table.Action(start, grammar.Term("id"))
	assert.Equal(Shift, act.Type)

	act = table.Action(start, grammar.Term("+"))
	assert.Equal(Error, act.Type)

	assert.NotPanics(func() { table.Goto(start, grammar.NonTerm("E")) })
}

func Test_Build_AcceptOnEndOfInput(t *testing.T) {
	assert := assert.New(t)

	table := buildArithTable(t)

	// drive "id" then "$" by hand: shift id, reduce up through F/T/E, then
	// accept on $.
	s0 := table.Initial()
	shiftID := table.Action(s0, grammar.Term("id"))
	assert.Equal(Shift, shiftID.Type)

	reduceF := table.Action(shiftID.State, grammar.EndOfInput)
	assert.Equal(Reduce, reduceF.Type)
	assert.Equal("F", reduceF.Line.Head.Tag())

	gotoF := table.Goto(s0, grammar.NonTerm("F"))
	reduceT := table.Action(gotoF, grammar.EndOfInput)
	assert.Equal(Reduce, reduceT.Type)
	assert.Equal("T", reduceT.Line.Head.Tag())

	gotoT := table.Goto(s0, grammar.NonTerm("T"))
	reduceE := table.Action(gotoT, grammar.EndOfInput)
	assert.Equal(Reduce, reduceE.Type)
	assert.Equal("E", reduceE.Line.Head.Tag())

	gotoE := table.Goto(s0, grammar.NonTerm("E"))
	accept := table.Action(gotoE, grammar.EndOfInput)
	assert.Equal(Accept, accept.Type)
}

func Test_Cache_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := buildArithTable(t)
	entry := table.ToCache()
	restored := FromCache(entry)

	assert.Equal(table.Initial(), restored.Initial())
	assert.ElementsMatch(table.TerminalTags(), restored.TerminalTags())

	act := table.Action(table.Initial(), grammar.Term("id"))
	restoredAct := restored.Action(restored.Initial(), grammar.Term("id"))
	assert.Equal(act.Type, restoredAct.Type)
	assert.Equal(act.State, restoredAct.State)
}
