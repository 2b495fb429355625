package parser

import (
	"errors"
	"fmt"
	"strings"
)

type ExpectKind uint8

const (
	ExpectTag ExpectKind = iota
	ExpectChar
	ExpectSpace
	ExpectDigit
	ExpectIdentifier
	ExpectUntil
	ExpectEOF
	ExpectOther
)

// Expectation describes what a parser wanted to see at the failure point.
type Expectation struct {
	Kind ExpectKind
	Text string
}

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectTag:
		return fmt.Sprintf("expected %q", e.Text)
	case ExpectChar:
		return fmt.Sprintf("expected '%s'", e.Text)
	case ExpectSpace:
		return "expected whitespace"
	case ExpectDigit:
		return "expected a digit"
	case ExpectIdentifier:
		return "expected an identifier"
	case ExpectUntil:
		return fmt.Sprintf("expected %q before end of input", e.Text)
	case ExpectEOF:
		return "expected end of input"
	default:
		return e.Text
	}
}

// ErrorTree is a raw parse failure: a *BaseError, a *StackError or an *AltError.
type ErrorTree interface {
	error
	errorTree()
}

// BaseError is unexpected input at Location.
type BaseError struct {
	Location Input
	Expected Expectation
}

func (*BaseError) errorTree() {}

func (e *BaseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Expected, e.Location.Offset())
}

// StackFrame is a named checkpoint the parser had entered at Location.
type StackFrame struct {
	Location Input
	Context  string
}

// StackError is a failure annotated with the contexts it happened in,
// innermost first.
type StackError struct {
	Base     ErrorTree
	Contexts []StackFrame
}

func (*StackError) errorTree() {}

func (e *StackError) Error() string {
	names := make([]string, len(e.Contexts))
	for i, c := range e.Contexts {
		names[i] = c.Context
	}
	return fmt.Sprintf("%s (in %s)", e.Base, strings.Join(names, " < "))
}

// AltError holds one failure per branch of an ordered choice, in branch order.
type AltError struct {
	Siblings []ErrorTree
}

func (*AltError) errorTree() {}

func (e *AltError) Error() string {
	msgs := make([]string, len(e.Siblings))
	for i, s := range e.Siblings {
		msgs[i] = s.Error()
	}
	return "no alternative matched: " + strings.Join(msgs, "; ")
}

// cutError marks a failure that ordered choice must not recover from.
type cutError struct {
	tree ErrorTree
}

func (c *cutError) Error() string { return c.tree.Error() }

func (c *cutError) Unwrap() error { return c.tree }

func isCut(err error) bool {
	var c *cutError
	return errors.As(err, &c)
}

func cut(err error) error {
	if isCut(err) {
		return err
	}
	return &cutError{tree: treeOf(err)}
}

func treeOf(err error) ErrorTree {
	var c *cutError
	if errors.As(err, &c) {
		return c.tree
	}
	var t ErrorTree
	if errors.As(err, &t) {
		return t
	}
	return &BaseError{Expected: Expectation{Kind: ExpectOther, Text: err.Error()}}
}

func addContext(err error, at Input, name string) error {
	frame := StackFrame{Location: at, Context: name}

	var tree ErrorTree
	switch t := treeOf(err).(type) {
	case *StackError:
		ctxs := make([]StackFrame, 0, len(t.Contexts)+1)
		ctxs = append(ctxs, t.Contexts...)
		tree = &StackError{Base: t.Base, Contexts: append(ctxs, frame)}
	default:
		tree = &StackError{Base: t, Contexts: []StackFrame{frame}}
	}

	if isCut(err) {
		return &cutError{tree: tree}
	}
	return tree
}

// or merges the failures of two branches, flattening nested alternatives.
func or(a, b ErrorTree) ErrorTree {
	if a == nil {
		return b
	}
	var siblings []ErrorTree
	if alt, ok := a.(*AltError); ok {
		siblings = append(siblings, alt.Siblings...)
	} else {
		siblings = append(siblings, a)
	}
	if alt, ok := b.(*AltError); ok {
		siblings = append(siblings, alt.Siblings...)
	} else {
		siblings = append(siblings, b)
	}
	return &AltError{Siblings: siblings}
}
