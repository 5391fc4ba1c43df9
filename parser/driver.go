package parser

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/collect"
	"github.com/dekarrin/ictiobus/ptable"
)

// Trace, if set on a Driver, receives one line per driver step: tokens
// read, state peeks and pushes, and the action taken (pops are not traced
// individually; a reduce is traced once), mirroring the teacher's
// RegisterTraceListener hook for the -t/--trace CLI flag.
type Trace func(line string)

// Driver runs the LR stack-machine algorithm (Algorithm 4.44) against a
// parsing table built by package ptable.
type Driver struct {
	Table *ptable.Table
	Trace Trace
}

// New returns a Driver for table.
func New(table *ptable.Table) *Driver {
	return &Driver{Table: table}
}

func (d *Driver) trace(format string, args ...interface{}) {
	if d.Trace != nil {
		d.Trace(fmt.Sprintf(format, args...))
	}
}

// Parse consumes stream and returns the resulting parse tree, or an error
// if the input does not derive from the grammar the driver's table was
// built for. stream must yield a final token whose Class is the
// end-of-input terminal tag "$"; if it is exhausted without one, Parse
// returns a gerrors KindNoEndOfInputToken error.
func (d *Driver) Parse(stream Stream) (*ParseTree, error) {
	states := collect.Stack[int]{}
	states.Push(d.Table.Initial())

	tokens := collect.Stack[Token]{}
	trees := collect.Stack[*ParseTree]{}

	a, ok := stream.Next()
	if !ok {
		return nil, gerrors.NoEndOfInputToken()
	}
	d.trace("next token: %s (%s)", a.Lexeme(), a.Class())

	for {
		s := states.Peek()
		d.trace("state peek: %d", s)

		act := d.Table.Action(s, grammar.Term(a.Class()))
		d.trace("action: %s", act.Type)

		switch act.Type {
		case ptable.Shift:
			tokens.Push(a)
			states.Push(act.State)
			d.trace("state push: %d", act.State)

			a, ok = stream.Next()
			if !ok {
				return nil, gerrors.NoEndOfInputToken()
			}
			d.trace("next token: %s (%s)", a.Lexeme(), a.Class())

		case ptable.Reduce:
			line := act.Line
			node := &ParseTree{Symbol: line.Head.Tag(), Children: make([]*ParseTree, len(line.Body))}

			for i := len(line.Body) - 1; i >= 0; i-- {
				sym := line.Body[i]
				if sym.IsTerminal() {
					tok := tokens.Pop()
					node.Children[i] = &ParseTree{Terminal: true, Symbol: tok.Class(), Source: tok}
				} else {
					node.Children[i] = trees.Pop()
				}
			}
			trees.Push(node)

			for range line.Body {
				states.Pop()
			}

			t := states.Peek()
			toPush := d.Table.Goto(t, line.Head)
			states.Push(toPush)
			d.trace("reduced %s, state push: %d", line.Head, toPush)

		case ptable.Accept:
			return trees.Pop(), nil

		case ptable.Error:
			expected := d.expectedString(s)
			human := fmt.Sprintf("unexpected %s; expected %s", a.Class(), expected)
			return nil, gerrors.UnexpectedToken(a.Class(), a.Position(), human)
		}
	}
}

func (d *Driver) expectedString(state int) string {
	var expected []string
	for _, tag := range d.Table.TerminalTags() {
		act := d.Table.Action(state, grammar.Term(tag))
		if act.Type != ptable.Error {
			expected = append(expected, tag)
		}
	}

	if len(expected) == 0 {
		return "nothing (no valid continuation from this state)"
	}

	var sb strings.Builder
	for i, tag := range expected {
		switch {
		case i == 0:
			sb.WriteString(collect.ArticleFor(tag, false))
		case i == len(expected)-1:
			if len(expected) > 2 {
				sb.WriteString(", or ")
			} else {
				sb.WriteString(" or ")
			}
			sb.WriteString(tag)
		default:
			sb.WriteString(", ")
			sb.WriteString(tag)
		}
	}
	return sb.String()
}
