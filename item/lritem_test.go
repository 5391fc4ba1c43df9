package item

import (
	"testing"

	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_New_InvalidDot(t *testing.T) {
	assert := assert.New(t)

	_, err := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 2)
	assert.Error(err)
	assert.True(gerrors.Is(err, gerrors.KindInvalidStackPosition))
}

func Test_LR0Item_Advance(t *testing.T) {
	assert := assert.New(t)

	it, err := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a"), grammar.Term("b")}, 0)
	assert.NoError(err)
	assert.False(it.Complete())
	assert.Equal(grammar.Term("a"), it.NextSymbol())

	it, err = it.Advance()
	assert.NoError(err)
	assert.False(it.Complete())
	assert.Equal(grammar.Term("b"), it.NextSymbol())

	it, err = it.Advance()
	assert.NoError(err)
	assert.True(it.Complete())

	_, err = it.Advance()
	assert.Error(err)
	assert.True(gerrors.Is(err, gerrors.KindInvalidStackPosition))
}

func Test_AllOf(t *testing.T) {
	assert := assert.New(t)

	items := AllOf(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a"), grammar.Term("b")})
	assert.Len(items, 3)
	assert.False(items[0].Complete())
	assert.True(items[2].Complete())
}

func Test_LR0Item_String(t *testing.T) {
	assert := assert.New(t)

	it, err := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a"), grammar.Term("b")}, 1)
	assert.NoError(err)
	assert.Equal("S -> a . b", it.String())
}

func Test_LR1Item_String(t *testing.T) {
	assert := assert.New(t)

	it, err := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 0)
	assert.NoError(err)
	lr1 := LR1Item{LR0Item: it, Lookahead: grammar.EndOfInput}
	assert.Equal("S -> . a, $", lr1.String())
}

func Test_LR0Item_Equal(t *testing.T) {
	assert := assert.New(t)

	a, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 0)
	b, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 0)
	c, _ := New(grammar.NonTerm("S"), grammar.Chain{grammar.Term("a")}, 1)

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}
