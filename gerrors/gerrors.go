// Package gerrors defines the named error kinds of the generator and driver,
// in the same house style as the teacher's tqerrors/icterrors packages:
// unexported struct types implementing error, constructor functions, and
// Unwrap support where a wrapped cause exists.
package gerrors

import "fmt"

// Kind identifies which of the named error kinds an error is. Use Is(err,
// kind) rather than type-asserting the concrete error types, which are
// unexported.
type Kind int

const (
	// KindUndefinedNonterminal: a symbol on a right-hand side has no
	// production. Fails at grammar construction.
	KindUndefinedNonterminal Kind = iota

	// KindNonAugmentedGrammar: the start symbol has more than one derivation
	// or appears on some right-hand side. Fails at automaton construction.
	KindNonAugmentedGrammar

	// KindDuplicateDerivation: two identical right-hand sides were given for
	// one production. Fails at production construction.
	KindDuplicateDerivation

	// KindEmptyProduction: a production has zero derivations. Fails at
	// production construction.
	KindEmptyProduction

	// KindGrammarConflict: two differing actions were derived for one
	// (state, terminal) pair. Fails at table construction.
	KindGrammarConflict

	// KindUnexpectedToken: the driver landed on an Error table cell. Fails
	// the parse.
	KindUnexpectedToken

	// KindNoEndOfInputToken: the token stream ran out without a final $
	// token. Fails the parse.
	KindNoEndOfInputToken

	// KindInvalidStackPosition: an item was constructed with a dot position
	// outside [0, len(derivation)]. Fails at item construction.
	KindInvalidStackPosition

	// KindMalformedSource: a plain-text grammar or config file could not be
	// parsed. Fails at gfile load time.
	KindMalformedSource
)

func (k Kind) String() string {
	switch k {
	case KindUndefinedNonterminal:
		return "UndefinedNonterminal"
	case KindNonAugmentedGrammar:
		return "NonAugmentedGrammar"
	case KindDuplicateDerivation:
		return "DuplicateDerivation"
	case KindEmptyProduction:
		return "EmptyProduction"
	case KindGrammarConflict:
		return "GrammarConflict"
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindNoEndOfInputToken:
		return "NoEndOfInputToken"
	case KindInvalidStackPosition:
		return "InvalidStackPosition"
	case KindMalformedSource:
		return "MalformedSource"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// genError is the concrete type backing every error kind this package
// produces. msg is the technical Error() string; human, if non-empty, is a
// separate reader-facing phrasing (used for UnexpectedToken's "expected X or
// Y" message).
type genError struct {
	kind  Kind
	msg   string
	human string
	wrap  error
}

func (e *genError) Error() string {
	return e.msg
}

// Human returns the reader-facing message, falling back to Error() if none
// was set.
func (e *genError) Human() string {
	if e.human == "" {
		return e.msg
	}
	return e.human
}

func (e *genError) Unwrap() error {
	return e.wrap
}

// Kind reports which named error kind e is.
func (e *genError) Kind() Kind {
	return e.kind
}

// Is supports errors.Is(err, SomeKind) by matching on Kind values placed in
// a genError-shaped sentinel; see the Is package function below for the
// normal calling convention.
func (e *genError) Is(target error) bool {
	asGen, ok := target.(*genError)
	return ok && asGen.kind == e.kind
}

// Is reports whether err is a gerrors error of the given kind.
func Is(err error, kind Kind) bool {
	ge, ok := err.(*genError)
	if !ok {
		return false
	}
	return ge.kind == kind
}

// KindOf returns the Kind of err and whether err is a gerrors error at all.
func KindOf(err error) (Kind, bool) {
	ge, ok := err.(*genError)
	if !ok {
		return 0, false
	}
	return ge.kind, true
}

func UndefinedNonterminal(name string) error {
	return &genError{kind: KindUndefinedNonterminal, msg: fmt.Sprintf("undefined nonterminal %q: referenced on a right-hand side but has no production", name)}
}

func NonAugmentedGrammar(reason string) error {
	return &genError{kind: KindNonAugmentedGrammar, msg: fmt.Sprintf("grammar is not properly augmented: %s", reason)}
}

func DuplicateDerivation(nonterminal, derivation string) error {
	return &genError{kind: KindDuplicateDerivation, msg: fmt.Sprintf("duplicate derivation for %q: %q already given as an alternative", nonterminal, derivation)}
}

func EmptyProduction(nonterminal string) error {
	return &genError{kind: KindEmptyProduction, msg: fmt.Sprintf("production for %q has zero derivations", nonterminal)}
}

func GrammarConflict(state, symbol, existing, incoming string) error {
	return &genError{
		kind: KindGrammarConflict,
		msg:  fmt.Sprintf("grammar conflict in state %s on symbol %q: %s vs %s", state, symbol, existing, incoming),
	}
}

// UnexpectedToken describes the offending token (its class ID and position)
// plus a human-readable "expected ..." phrase built by the driver.
func UnexpectedToken(tokenClass string, position string, human string) error {
	return &genError{
		kind:  KindUnexpectedToken,
		msg:   fmt.Sprintf("unexpected token %q at %s", tokenClass, position),
		human: human,
	}
}

func NoEndOfInputToken() error {
	return &genError{kind: KindNoEndOfInputToken, msg: "token stream exhausted without a final end-of-input ($) token"}
}

func InvalidStackPosition(dot, length int) error {
	return &genError{kind: KindInvalidStackPosition, msg: fmt.Sprintf("invalid dot position %d for derivation of length %d", dot, length)}
}

// MalformedSource describes a syntax error at a given line of a plain-text
// grammar or config source file.
func MalformedSource(line int, reason string) error {
	return &genError{kind: KindMalformedSource, msg: fmt.Sprintf("line %d: %s", line, reason)}
}

// Wrap attaches a cause to an existing gerrors error, preserving its Kind.
// If err is not a gerrors error, it is returned unchanged.
func Wrap(err error, cause error) error {
	ge, ok := err.(*genError)
	if !ok {
		return err
	}
	wrapped := *ge
	wrapped.wrap = cause
	return &wrapped
}
