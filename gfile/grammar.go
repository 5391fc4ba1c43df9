// Package gfile reads a grammar's ambient on-disk representations: the
// plain-text BNF-like notation grammar sources are authored in, and the
// optional TOML sidecar config that tunes generator behavior for a given
// grammar file.
package gfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/ictiobus/gerrors"
	"github.com/dekarrin/ictiobus/grammar"
)

// ParseGrammar reads a plain-text grammar description from r and builds a
// *grammar.Grammar from it.
//
// Each non-blank line is a rule of the form:
//
//	HEAD -> alt1 sym | alt2 | ε
//
// HEAD and every nonterminal symbol referenced must be all-uppercase (plus
// "_", "-" and "'"); every other symbol is a terminal, registered automatically the
// first time it is seen on a right-hand side. "ε" (or the literal word
// "epsilon") denotes the empty alternative. Blank lines are pure
// whitespace for a reader's eyes and carry no meaning to the parser; they
// exist so a grammar source can group a nonterminal's alternatives
// visually without the notation needing a line-continuation rule. The
// start symbol is the head of the first rule in the file.
//
// This generalizes the single-item "NONTERM -> ALPHA.BETA" notation a
// dotted LR item is rendered in (item.LR0Item.String) to whole grammars:
// same arrow, same space-separated symbol list, just without a dot and
// with "|" alternation added.
func ParseGrammar(r io.Reader) (*grammar.Grammar, error) {
	scanner := bufio.NewScanner(r)

	var g *grammar.Grammar
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		head, alts, err := parseRuleLine(line)
		if err != nil {
			return nil, gerrors.MalformedSource(lineNo, err.Error())
		}

		if g == nil {
			g = grammar.New(head)
		}

		for _, alt := range alts {
			chain, err := toChain(head, alt)
			if err != nil {
				return nil, gerrors.MalformedSource(lineNo, err.Error())
			}
			for _, sym := range chain {
				if sym.IsTerminal() {
					g.AddTerminal(sym.Tag())
				}
			}
			if err := g.AddProduction(grammar.NonTerm(head), chain); err != nil {
				return nil, gerrors.MalformedSource(lineNo, err.Error())
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, gerrors.MalformedSource(lineNo, "no rules found in grammar source")
	}

	return g, nil
}

// ParseGrammarString is a convenience wrapper for callers that already have
// the whole source in memory, such as tests.
func ParseGrammarString(src string) (*grammar.Grammar, error) {
	return ParseGrammar(strings.NewReader(src))
}

func parseRuleLine(line string) (head string, alts []string, err error) {
	sides := strings.SplitN(line, "->", 2)
	if len(sides) != 2 {
		return "", nil, fmt.Errorf("not a rule of form 'HEAD -> alt1 | alt2': %q", line)
	}

	head = strings.TrimSpace(sides[0])
	if head == "" {
		return "", nil, fmt.Errorf("empty nonterminal name not allowed for rule head")
	}
	if err := checkNonterminalName(head); err != nil {
		return "", nil, err
	}

	for _, alt := range strings.Split(sides[1], "|") {
		alts = append(alts, strings.TrimSpace(alt))
	}

	return head, alts, nil
}

func toChain(head, alt string) (grammar.Chain, error) {
	if alt == "" || strings.EqualFold(alt, "epsilon") || alt == "ε" {
		return grammar.Chain{}, nil
	}

	fields := strings.Fields(alt)
	chain := make(grammar.Chain, 0, len(fields))
	for _, f := range fields {
		if f == "ε" || strings.EqualFold(f, "epsilon") {
			continue
		}
		if isNonterminalName(f) {
			if err := checkNonterminalName(f); err != nil {
				return nil, err
			}
			chain = append(chain, grammar.NonTerm(f))
		} else {
			chain = append(chain, grammar.Term(f))
		}
	}
	return chain, nil
}

// isNonterminalName reports whether s reads as a nonterminal name: it has
// at least one uppercase letter among its letters and no lowercase ones.
func isNonterminalName(s string) bool {
	sawUpper := false
	for _, ch := range s {
		switch {
		case ch >= 'A' && ch <= 'Z':
			sawUpper = true
		case ch >= 'a' && ch <= 'z':
			return false
		}
	}
	return sawUpper
}

func checkNonterminalName(s string) error {
	for _, ch := range s {
		ok := (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '-' || ch == '\''
		if !ok {
			return fmt.Errorf("invalid nonterminal name %q: must contain only A-Z, \"_\", \"-\", or \"'\"", s)
		}
	}
	return nil
}
