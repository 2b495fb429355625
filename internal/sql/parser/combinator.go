package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser consumes a prefix of in. On success it returns the remaining input and
// its output; on failure it returns in unchanged and an ErrorTree.
type Parser[T any] func(in Input) (Input, T, error)

func expect(in Input, kind ExpectKind, text string) error {
	return &BaseError{Location: in, Expected: Expectation{Kind: kind, Text: text}}
}

// tag matches s exactly.
func tag(s string) Parser[string] {
	return func(in Input) (Input, string, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return in, "", expect(in, ExpectTag, s)
		}
		rest, out := in.take(len(s))
		return rest, out, nil
	}
}

// tagNoCase matches the ASCII word s ignoring case.
func tagNoCase(s string) Parser[string] {
	return func(in Input) (Input, string, error) {
		r := in.Rest()
		if len(r) < len(s) || !strings.EqualFold(r[:len(s)], s) {
			return in, "", expect(in, ExpectTag, s)
		}
		rest, out := in.take(len(s))
		return rest, out, nil
	}
}

func char(c byte) Parser[string] {
	return func(in Input) (Input, string, error) {
		r := in.Rest()
		if r == "" || r[0] != c {
			return in, "", expect(in, ExpectChar, string(c))
		}
		rest, out := in.take(1)
		return rest, out, nil
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func spanWhile(s string, pred func(rune) bool) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	return n
}

func multispace0(in Input) (Input, string, error) {
	rest, out := in.take(spanWhile(in.Rest(), isSpace))
	return rest, out, nil
}

func multispace1(in Input) (Input, string, error) {
	n := spanWhile(in.Rest(), isSpace)
	if n == 0 {
		return in, "", expect(in, ExpectSpace, "")
	}
	rest, out := in.take(n)
	return rest, out, nil
}

// takeWhile1 consumes at least one rune matching pred.
func takeWhile1(pred func(rune) bool, kind ExpectKind) Parser[string] {
	return func(in Input) (Input, string, error) {
		n := spanWhile(in.Rest(), pred)
		if n == 0 {
			return in, "", expect(in, kind, "")
		}
		rest, out := in.take(n)
		return rest, out, nil
	}
}

// takeUntil consumes everything before the first occurrence of s.
func takeUntil(s string) Parser[string] {
	return func(in Input) (Input, string, error) {
		i := strings.Index(in.Rest(), s)
		if i < 0 {
			return in, "", expect(in, ExpectUntil, s)
		}
		rest, out := in.take(i)
		return rest, out, nil
	}
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// context names the checkpoint p runs under; failures carry the name and the
// position p started at.
func context[T any](name string, p Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero T
			return in, zero, addContext(err, in, name)
		}
		return rest, out, nil
	}
}

// alt tries each parser in order and returns the first success. A cut failure
// is returned as is; otherwise all branch failures are merged.
func alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		var acc ErrorTree
		for _, p := range ps {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if isCut(err) {
				var zero T
				return in, zero, err
			}
			acc = or(acc, treeOf(err))
		}
		var zero T
		return in, zero, acc
	}
}

func mapP[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (Input, B, error) {
		rest, a, err := p(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return rest, f(a), nil
	}
}

func preceded[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return func(in Input) (Input, B, error) {
		var zero B
		rest, _, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

func terminated[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return func(in Input) (Input, A, error) {
		var zero A
		rest, out, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// separatedList1 parses one or more p separated by sep. A separator not
// followed by a p is left unconsumed.
func separatedList1[T, S any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return func(in Input) (Input, []T, error) {
		rest, first, err := p(in)
		if err != nil {
			return in, nil, err
		}
		out := []T{first}
		for {
			next, _, err := sep(rest)
			if err != nil {
				if isCut(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			next, item, err := p(next)
			if err != nil {
				if isCut(err) {
					return in, nil, err
				}
				return rest, out, nil
			}
			out = append(out, item)
			rest = next
		}
	}
}

// peekThenCut runs p only if the input starts with prefix; once it does, a
// failure of p is a cut.
func peekThenCut[T any](prefix string, p Parser[T]) Parser[T] {
	return func(in Input) (Input, T, error) {
		var zero T
		if !strings.HasPrefix(in.Rest(), prefix) {
			return in, zero, expect(in, ExpectTag, prefix)
		}
		rest, out, err := p(in)
		if err != nil {
			return in, zero, cut(err)
		}
		return rest, out, nil
	}
}

func eof(in Input) (Input, struct{}, error) {
	if !in.AtEOF() {
		return in, struct{}{}, expect(in, ExpectEOF, "")
	}
	return in, struct{}{}, nil
}

// skip runs ps in order and discards their output.
func skip(in Input, ps ...Parser[string]) (Input, error) {
	rest := in
	for _, p := range ps {
		var err error
		rest, _, err = p(rest)
		if err != nil {
			return in, err
		}
	}
	return rest, nil
}
