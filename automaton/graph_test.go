package automaton

import (
	"testing"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Graph_AddStateAndTransition(t *testing.T) {
	assert := assert.New(t)

	g := NewGraph[string]()
	s0 := g.AddState("state0")
	s1 := g.AddState("state1")
	g.SetStart(s0)
	g.AddTransition(s0, grammar.Term("a"), s1)

	assert.Equal(s0, g.Start())
	assert.Equal(2, g.Len())
	assert.Equal("state1", g.State(s1))

	target, ok := g.Next(s0, grammar.Term("a"))
	assert.True(ok)
	assert.Equal(s1, target)

	_, ok = g.Next(s0, grammar.Term("b"))
	assert.False(ok)
}

func Test_Graph_CopyTransitions(t *testing.T) {
	assert := assert.New(t)

	src := NewGraph[string]()
	a := src.AddState("a")
	b := src.AddState("b")
	src.AddTransition(a, grammar.Term("x"), b)

	dst := NewGraph[int]()
	dst.AddState(0)
	dst.AddState(1)
	dst.CopyTransitions(a, src.Transitions(a))

	target, ok := dst.Next(a, grammar.Term("x"))
	assert.True(ok)
	assert.Equal(b, target)
}
