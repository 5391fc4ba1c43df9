package grammar

import (
	"testing"

	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/stretchr/testify/assert"
)

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(g *Grammar)
		expectErr bool
	}{
		{
			name:      "empty grammar",
			build:     func(g *Grammar) {},
			expectErr: true,
		},
		{
			name: "undefined nonterminal reference",
			build: func(g *Grammar) {
				g.AddTerminal("num")
				_ = g.AddProduction(NonTerm("S"), Chain{NonTerm("E")})
			},
			expectErr: true,
		},
		{
			name: "undefined terminal reference",
			build: func(g *Grammar) {
				_ = g.AddProduction(NonTerm("S"), Chain{Term("num")})
			},
			expectErr: true,
		},
		{
			name: "valid single-rule grammar",
			build: func(g *Grammar) {
				g.AddTerminal("num")
				_ = g.AddProduction(NonTerm("S"), Chain{Term("num")})
			},
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := New("S")
			tc.build(g)

			err := g.Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Grammar_AddProduction_DuplicateDerivation(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.AddTerminal("num")

	assert.NoError(g.AddProduction(NonTerm("S"), Chain{Term("num")}))
	err := g.AddProduction(NonTerm("S"), Chain{Term("num")})
	assert.Error(err)
	assert.True(gerrors.Is(err, gerrors.KindDuplicateDerivation))
}

func Test_Grammar_Augmented(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.AddTerminal("num")
	assert.NoError(g.AddProduction(NonTerm("S"), Chain{Term("num")}))

	aug := g.Augmented()
	assert.True(aug.isAugmented())
	assert.Equal("S'", aug.StartSymbol().Tag())

	prod, ok := aug.Production("S'")
	assert.True(ok)
	assert.Len(prod.Alternatives(), 1)
	assert.True(prod.Alternatives()[0].Equal(Chain{NonTerm("S")}))

	// augmenting an already-augmented grammar is a no-op
	assert.Same(aug, aug.Augmented())
}

func Test_Grammar_Augmented_NameCollision(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.AddTerminal("num")
	assert.NoError(g.AddProduction(NonTerm("S"), Chain{Term("num")}))
	assert.NoError(g.AddProduction(NonTerm("S'"), Chain{Term("num")}))

	aug := g.Augmented()
	assert.Equal("S''", aug.StartSymbol().Tag())
}

func Test_Grammar_EmptyProduction(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.productions["S"] = newProduction(NonTerm("S"))
	g.order = append(g.order, "S")

	err := g.Validate()
	assert.Error(err)
	assert.True(gerrors.Is(err, gerrors.KindEmptyProduction))
}
