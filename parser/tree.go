package parser

import (
	"fmt"
	"strings"
)

const (
	treeLevelEmpty      = "        "
	treeLevelOngoing    = "  |     "
	treeLevelPrefix     = "  |%s: "
	treeLevelPrefixLast = `  \%s: `
	treeLevelPadChar    = '-'
	treeLevelPadAmount  = 3
)

// ParseTree is a concrete parse tree node: either a terminal leaf (holding the
// Token it was shifted from) or a nonterminal interior node (holding its
// children in original left-to-right production order).
type ParseTree struct {
	// Terminal is whether this node is a leaf for a shifted terminal.
	Terminal bool

	// Symbol is the grammar symbol this node stands for: a terminal tag
	// for a leaf, a nonterminal tag for an interior node.
	Symbol string

	// Source is populated only when Terminal is true.
	Source Token

	// Children holds every child of this node, in left-to-right order.
	Children []*ParseTree
}

// String returns a prettified, line-oriented representation of the whole
// tree. Two trees with identical structure produce identical output.
func (t *ParseTree) String() string {
	return t.leveledStr("", "")
}

func (t *ParseTree) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if t.Terminal {
		fmt.Fprintf(&sb, "(TERM %q)", t.Symbol)
	} else {
		fmt.Fprintf(&sb, "( %s )", t.Symbol)
	}

	for i, child := range t.Children {
		sb.WriteByte('\n')
		var nextFirst, nextCont string
		if i+1 < len(t.Children) {
			nextFirst = contPrefix + padPrefix(treeLevelPrefix, "")
			nextCont = contPrefix + treeLevelOngoing
		} else {
			nextFirst = contPrefix + padPrefix(treeLevelPrefixLast, "")
			nextCont = contPrefix + treeLevelEmpty
		}
		sb.WriteString(child.leveledStr(nextFirst, nextCont))
	}

	return sb.String()
}

func padPrefix(format, msg string) string {
	for len([]rune(msg)) < treeLevelPadAmount {
		msg = string(treeLevelPadChar) + msg
	}
	return fmt.Sprintf(format, msg)
}

// Copy returns a deep copy of the tree.
func (t *ParseTree) Copy() *ParseTree {
	cp := &ParseTree{
		Terminal: t.Terminal,
		Symbol:   t.Symbol,
		Source:   t.Source,
		Children: make([]*ParseTree, len(t.Children)),
	}
	for i, c := range t.Children {
		if c != nil {
			cp.Children[i] = c.Copy()
		}
	}
	return cp
}

// Equal reports whether t and o have the same structure: same Terminal
// flag, same Symbol, and recursively equal Children. Source is not
// compared, since two parses of different (but lexically equivalent)
// input should be considered the same tree.
func (t *ParseTree) Equal(o *ParseTree) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Terminal != o.Terminal || t.Symbol != o.Symbol {
		return false
	}
	if len(t.Children) != len(o.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
