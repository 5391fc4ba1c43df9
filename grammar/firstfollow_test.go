package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildArithGrammar builds the classic expression grammar:
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
func buildArithGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := New("E")
	for _, term := range []string{"+", "*", "(", ")", "id"} {
		g.AddTerminal(term)
	}
	must := func(err error) {
		if err != nil {
			t.Fatalf("unexpected AddProduction error: %v", err)
		}
	}
	must(g.AddProduction(NonTerm("E"), Chain{NonTerm("E"), Term("+"), NonTerm("T")}))
	must(g.AddProduction(NonTerm("E"), Chain{NonTerm("T")}))
	must(g.AddProduction(NonTerm("T"), Chain{NonTerm("T"), Term("*"), NonTerm("F")}))
	must(g.AddProduction(NonTerm("T"), Chain{NonTerm("F")}))
	must(g.AddProduction(NonTerm("F"), Chain{Term("("), NonTerm("E"), Term(")")}))
	must(g.AddProduction(NonTerm("F"), Chain{Term("id")}))
	return g
}

func Test_FirstFollow_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	g := buildArithGrammar(t)
	ff := g.FirstFollow()

	firstE := ff.First(NonTerm("E"))
	assert.False(firstE.Nullable)
	assert.ElementsMatch([]string{"(", "id"}, tagsOf(firstE.Terms()))

	followE := ff.Follow(NonTerm("E"))
	assert.ElementsMatch([]string{"+", ")", "$"}, tagsOf(followE.Terms()))

	followF := ff.Follow(NonTerm("F"))
	assert.ElementsMatch([]string{"+", "*", ")", "$"}, tagsOf(followF.Terms()))
}

func Test_FirstFollow_NullableProduction(t *testing.T) {
	assert := assert.New(t)

	// S -> A B
	// A -> a | ε
	// B -> b
	g := New("S")
	g.AddTerminal("a")
	g.AddTerminal("b")
	must := func(err error) {
		if err != nil {
			t.Fatalf("unexpected AddProduction error: %v", err)
		}
	}
	must(g.AddProduction(NonTerm("S"), Chain{NonTerm("A"), NonTerm("B")}))
	must(g.AddProduction(NonTerm("A"), Chain{Term("a")}))
	must(g.AddProduction(NonTerm("A"), Chain{}))
	must(g.AddProduction(NonTerm("B"), Chain{Term("b")}))

	ff := g.FirstFollow()

	firstA := ff.First(NonTerm("A"))
	assert.True(firstA.Nullable)
	assert.ElementsMatch([]string{"a"}, tagsOf(firstA.Terms()))

	firstS := ff.First(NonTerm("S"))
	assert.False(firstS.Nullable)
	assert.ElementsMatch([]string{"a", "b"}, tagsOf(firstS.Terms()))

	followA := ff.Follow(NonTerm("A"))
	assert.ElementsMatch([]string{"b"}, tagsOf(followA.Terms()))

	aProd, ok := g.Production("A")
	assert.True(ok)
	assert.True(aProd.Nullable())
}

func tagsOf(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.Tag()
	}
	return out
}
