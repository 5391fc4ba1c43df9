package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_PushPopPeek(t *testing.T) {
	assert := assert.New(t)

	s := Stack[int]{}
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(3, s.Len())
	assert.Equal(3, s.Peek())

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
}

func Test_Stack_PopEmpty_Panics(t *testing.T) {
	s := Stack[int]{}
	assert.Panics(t, func() { s.Pop() })
}

func Test_Stack_PeekEmpty_Panics(t *testing.T) {
	s := Stack[int]{}
	assert.Panics(t, func() { s.Peek() })
}

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"c": 3, "a": 1, "b": 2}
	assert.Equal([]string{"a", "b", "c"}, OrderedKeys(m))
}

func Test_Flatten(t *testing.T) {
	assert := assert.New(t)

	got := Flatten([][]int{{1, 2}, {}, {3}})
	assert.Equal([]int{1, 2, 3}, got)
}

func Test_ArticleFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a thing", ArticleFor("thing", false))
	assert.Equal("an object", ArticleFor("object", false))
	assert.Equal("An object", ArticleFor("object", true))
}

func Test_Grouped_GetSet(t *testing.T) {
	assert := assert.New(t)

	g := NewGrouped[int, string, bool]()
	_, ok := g.Get(1, "a")
	assert.False(ok)

	g.Set(1, "a", true)
	v, ok := g.Get(1, "a")
	assert.True(ok)
	assert.True(v)
}
