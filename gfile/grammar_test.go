package gfile

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_ParseGrammarString_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	src := `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`
	g, err := ParseGrammarString(src)
	assert.NoError(err)
	assert.NoError(g.Validate())

	assert.Equal("E", g.StartSymbol().Tag())
	assert.True(g.IsTerminal("id"))
	assert.True(g.IsTerminal("+"))

	prod, ok := g.Production("F")
	assert.True(ok)
	assert.Len(prod.Alternatives(), 2)
}

func Test_ParseGrammarString_Epsilon(t *testing.T) {
	assert := assert.New(t)

	src := `
S -> A B
A -> a | ε
B -> b
`
	g, err := ParseGrammarString(src)
	assert.NoError(err)
	assert.NoError(g.Validate())

	prod, ok := g.Production("A")
	assert.True(ok)

	var sawEpsilon bool
	for _, alt := range prod.Alternatives() {
		if alt.Empty() {
			sawEpsilon = true
		}
	}
	assert.True(sawEpsilon)
}

func Test_ParseGrammarString_MalformedLine(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseGrammarString("this is not a rule")
	assert.Error(err)
}

func Test_ParseGrammarString_InvalidNonterminalName(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseGrammarString("lowercaseHead -> a")
	assert.Error(err)
}

func Test_ParseGrammarString_BlankLinesIgnored(t *testing.T) {
	assert := assert.New(t)

	src := "S -> a\n\n\nS -> b\n"
	g, err := ParseGrammarString(src)
	assert.NoError(err)

	prod, ok := g.Production("S")
	assert.True(ok)
	assert.Len(prod.Alternatives(), 2)
	assert.True(prod.HasAlternative(grammar.Chain{grammar.Term("a")}))
}
