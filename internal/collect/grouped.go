package collect

// Key2 is a plain two-part key for grouped maps indexed by (outer, inner)
// pairs, e.g. (state, item) -> lookaheads in the lookahead propagator
// (package ptable keeps its own nested map instead). This collapses the
// teacher's dual-indexing VSet API (which offered both (symbol, item) ->
// set(terminal) and (symbol, terminal) -> set(item) views of the same data)
// into the single shape the LALR algorithm actually needs: per spec §9,
// "per-item lookahead sets" is the correct, and only, shape required.
type Key2[A, B comparable] struct {
	Outer A
	Inner B
}

// Grouped is a map keyed by a two-part key, with Get/Set accessors taking
// the two parts separately. Accumulating into an existing value is left to
// the caller (see lalr's addLookahead).
type Grouped[A, B comparable, V any] map[Key2[A, B]]V

// NewGrouped returns an empty Grouped map.
func NewGrouped[A, B comparable, V any]() Grouped[A, B, V] {
	return make(Grouped[A, B, V])
}

// Get returns the value at (a, b) and whether it was present.
func (g Grouped[A, B, V]) Get(a A, b B) (V, bool) {
	v, ok := g[Key2[A, B]{a, b}]
	return v, ok
}

// Set assigns the value at (a, b).
func (g Grouped[A, B, V]) Set(a A, b B, v V) {
	g[Key2[A, B]{a, b}] = v
}
