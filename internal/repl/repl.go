// Package repl is an interactive, line-oriented front end for feeding
// tokens to a parser.Driver, adapted from the teacher's
// internal/input.InteractiveCommandReader (readline-backed command input)
// but yielding parser.Tokens instead of raw command strings.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/ictiobus/parser"
)

// Stream is an interactive parser.Stream backed by GNU-readline-style line
// editing: each line the user enters is parsed as one token in the
// "CLASS[ lexeme]" notation cmd/ictiobus reads token files in, so a grammar
// can be exercised by hand at a prompt. Stream must have Close called on it
// before disposal to tear down readline's terminal state.
//
// Stream should not be constructed directly; use New.
type Stream struct {
	rl     *readline.Instance
	line   int
	ateEnd bool
}

// New starts a new interactive Stream reading from the controlling
// terminal, prompting with prompt.
func New(prompt string) (*Stream, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &Stream{rl: rl}, nil
}

// Close tears down the underlying readline instance.
func (s *Stream) Close() error {
	return s.rl.Close()
}

// SetPrompt updates the prompt shown before the next read.
func (s *Stream) SetPrompt(p string) {
	s.rl.SetPrompt(p)
}

// Next reads the next non-blank line and parses it into a token. Once a
// line naming the end-of-input class ("$") has been read, Next always
// returns false afterward: there is nothing sensible left to feed the
// driver past acceptance or error.
func (s *Stream) Next() (parser.Token, bool) {
	if s.ateEnd {
		return nil, false
	}

	var line string
	var err error
	for line == "" {
		line, err = s.rl.Readline()
		if err != nil {
			return nil, false
		}
		line = strings.TrimSpace(line)
	}
	s.line++

	class, lexeme := splitTokenLine(line)
	if class == "$" {
		s.ateEnd = true
	}

	return parser.NewToken(class, lexeme, fmt.Sprintf("line %d", s.line)), true
}

// tokenFileStream adapts an io.Reader of "CLASS[ lexeme]" lines (a token
// file, as opposed to an interactive terminal) into a parser.Stream; it is
// the non-interactive counterpart to Stream, grounded on the same
// DirectCommandReader/InteractiveCommandReader split the teacher draws
// between batch and terminal input.
type tokenFileStream struct {
	lines   []string
	pos     int
	lineNum int
}

// NewTokenFile reads every line of r up front and returns a parser.Stream
// over it. A token file's lines are already whole; no readline editing is
// needed for batch input.
func NewTokenFile(r io.Reader) (parser.Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return &tokenFileStream{lines: lines}, nil
}

func (t *tokenFileStream) Next() (parser.Token, bool) {
	if t.pos >= len(t.lines) {
		return nil, false
	}
	line := t.lines[t.pos]
	t.pos++
	t.lineNum++

	class, lexeme := splitTokenLine(line)
	return parser.NewToken(class, lexeme, fmt.Sprintf("line %d", t.lineNum)), true
}

func splitTokenLine(line string) (class, lexeme string) {
	fields := strings.SplitN(line, " ", 2)
	class = fields[0]
	if len(fields) == 2 {
		lexeme = strings.TrimSpace(fields[1])
	}
	return class, lexeme
}
