// Package parser implements the LR stack-machine driver (C7): given a
// parsing table and a token stream, it produces a concrete parse tree or a
// syntax error.
package parser

// Token is a lexeme read from input, tagged with the terminal symbol it
// matches. Class must equal the tag of some grammar.Term the driver's
// table knows about, or the driver treats it as unexpected input.
type Token interface {
	// Class is the terminal tag this token matches.
	Class() string

	// Lexeme is the literal text the token was read from.
	Lexeme() string

	// Position is a caller-defined human-readable location (e.g.
	// "line 3, col 7"), used only for error messages.
	Position() string
}

// Stream yields Tokens one at a time. The final token yielded before
// exhaustion must have Class() equal to the end-of-input terminal's tag
// ("$"); a Stream that runs out without one is a driver error
// (gerrors.NoEndOfInputToken).
type Stream interface {
	// Next returns the next token, or false if the stream is exhausted.
	Next() (Token, bool)
}

// simpleToken is a minimal Token implementation for callers that only have
// a class and lexeme in hand (e.g. the REPL and tests), with no richer
// position tracking to offer.
type simpleToken struct {
	class  string
	lexeme string
	pos    string
}

// NewToken returns a Token with the given class, lexeme, and position
// string.
func NewToken(class, lexeme, pos string) Token {
	return simpleToken{class: class, lexeme: lexeme, pos: pos}
}

func (t simpleToken) Class() string    { return t.class }
func (t simpleToken) Lexeme() string   { return t.lexeme }
func (t simpleToken) Position() string { return t.pos }

// SliceStream adapts a pre-built slice of Tokens into a Stream, for tests
// and any caller that already has its whole token list in memory.
type SliceStream struct {
	toks []Token
	pos  int
}

// NewSliceStream returns a Stream over toks, in order.
func NewSliceStream(toks []Token) *SliceStream {
	return &SliceStream{toks: toks}
}

func (s *SliceStream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return nil, false
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true
}
