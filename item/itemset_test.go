package item

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

// buildParenGrammar is the classic "(" balanced-pointer grammar used to
// exercise the canonical LR(0) construction:
//
//	S -> ( S ) | a
func buildParenGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New("S")
	g.AddTerminal("(")
	g.AddTerminal(")")
	g.AddTerminal("a")
	if err := g.AddProduction(grammar.NonTerm("S"), grammar.Chain{grammar.Term("("), grammar.NonTerm("S"), grammar.Term(")")}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddProduction(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}); err != nil {
		t.Fatal(err)
	}
	return g
}

func Test_LR0Set_CoreKey_IgnoresNonkernelAndOrder(t *testing.T) {
	assert := assert.New(t)

	g := buildParenGrammar(t)
	body := grammar.Chain{grammar.Term("("), grammar.NonTerm("S"), grammar.Term(")")}
	inner, _ := New(grammar.NonTerm("S"), body, 1) // S -> ( . S )
	done, _ := New(grammar.NonTerm("S"), body, 3)  // S -> ( S ) .
	closed := KernelOf(inner, done).Closure(g)

	assert.NotEmpty(closed.Nonkernel)

	// a set built from the same kernel in a different order, unclosed,
	// must have the same CoreKey.
	reordered := KernelOf(done, inner)
	assert.Equal(closed.CoreKey(), reordered.CoreKey())
}

func Test_LR0Set_Goto(t *testing.T) {
	assert := assert.New(t)

	g := buildParenGrammar(t)
	start, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("("), grammar.NonTerm("S"), grammar.Term(")")}, 0)
	second, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 0)
	closed := KernelOf(start, second).Closure(g)

	onParen := closed.Goto(grammar.Term("(")).Closure(g)
	assert.Len(onParen.Kernel, 1)
	assert.Equal("S -> ( . S )", onParen.Kernel[0].String())

	onA := closed.Goto(grammar.Term("a")).Closure(g)
	assert.Len(onA.Kernel, 1)
	assert.True(onA.Kernel[0].Complete())
}

func Test_LR0Set_Closure_Idempotent(t *testing.T) {
	assert := assert.New(t)

	g := buildParenGrammar(t)
	start, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("("), grammar.NonTerm("S"), grammar.Term(")")}, 0)

	once := KernelOf(start).Closure(g)
	twice := LR0Set{Kernel: once.Kernel}.Closure(g)

	assert.Equal(once.CoreKey(), twice.CoreKey())
	assert.ElementsMatch(stringsOf(once.All()), stringsOf(twice.All()))
}

func Test_LR1Set_Closure_Lookaheads(t *testing.T) {
	assert := assert.New(t)

	g := buildParenGrammar(t)
	ff := g.FirstFollow()

	// closing S -> ( . S ), $ adds both alternatives of S with the
	// lookahead FIRST(") $") = ")".
	start, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("("), grammar.NonTerm("S"), grammar.Term(")")}, 1)
	seed := LR1Item{LR0Item: start, Lookahead: grammar.EndOfInput}
	closed := KernelOf1(seed).Closure(g, ff)

	var sawA, sawOpenParen bool
	for _, it := range closed.All() {
		if it.Head.Tag() == "S" && it.Left.Empty() && it.Lookahead.Tag() == ")" {
			switch it.Right[0].Tag() {
			case "a":
				sawA = true
			case "(":
				sawOpenParen = true
			}
		}
	}
	assert.True(sawA)
	assert.True(sawOpenParen)
}

func Test_LR1Set_CoreKey_MatchesLR0(t *testing.T) {
	assert := assert.New(t)

	start, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 0)
	lr0 := KernelOf(start)
	lr1 := KernelOf1(LR1Item{LR0Item: start, Lookahead: grammar.EndOfInput})

	assert.Equal(lr0.CoreKey(), lr1.CoreKey())
}

func stringsOf(items []LR0Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}
