package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(src string, off int, text string) *BaseError {
	in := NewInput(src)
	in, _ = in.take(off)
	return &BaseError{Location: in, Expected: Expectation{Kind: ExpectTag, Text: text}}
}

func stack(b ErrorTree, src string, names ...string) *StackError {
	st := &StackError{Base: b}
	for _, n := range names {
		st.Contexts = append(st.Contexts, StackFrame{Location: NewInput(src), Context: n})
	}
	return st
}

func TestFormatError_Base(t *testing.T) {
	src := "abc def"
	d := FormatError(src, base(src, 4, "x"))
	require.NotNil(t, d)
	assert.Equal(t, 4, d.Offset)
	assert.Equal(t, `expected "x"`, d.Kind)
	assert.Empty(t, d.Contexts)
}

func TestFormatError_AltPicksDeepest(t *testing.T) {
	src := "abc def"
	tree := &AltError{Siblings: []ErrorTree{
		stack(base(src, 1, "shallow"), src, "one"),
		stack(base(src, 5, "deep"), src, "one", "two"),
	}}

	d := FormatError(src, tree)
	assert.Equal(t, 5, d.Offset)
	assert.Equal(t, []string{"one", "two"}, d.ContextNames())
}

func TestFormatError_AltTieGoesToFirst(t *testing.T) {
	src := "abc def"
	tree := &AltError{Siblings: []ErrorTree{
		stack(base(src, 1, "first"), src, "a"),
		stack(base(src, 2, "second"), src, "b"),
	}}

	d := FormatError(src, tree)
	assert.Equal(t, `expected "first"`, d.Kind)
	assert.Equal(t, []string{"a"}, d.ContextNames())
}

func TestFormatError_StackOverAlt(t *testing.T) {
	src := "abc"
	tree := stack(&AltError{Siblings: []ErrorTree{
		base(src, 0, "p"),
		stack(base(src, 2, "q"), src, "inner"),
	}}, src, "outer")

	d := FormatError(src, tree)
	assert.Equal(t, 2, d.Offset)
	assert.Equal(t, []string{"inner", "outer"}, d.ContextNames())
}

func TestFormatError_Nil(t *testing.T) {
	assert.Nil(t, FormatError("x", nil))
}

func TestDiagnostic_Position(t *testing.T) {
	d := &Diagnostic{Source: "select a\nfrom", Offset: 11}
	line, col := d.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)
	assert.Equal(t, "parse error at 2:3: ", d.Error())
}

func TestDiagnostic_Render(t *testing.T) {
	_, err := ParseQuery("select fart;")
	d := requireDiagnostic(t, err)

	out := d.Render()
	assert.Contains(t, out, "Parse Error: expected \"from\"\n")
	assert.Contains(t, out, " --> 1:12\n")
	assert.Contains(t, out, "1 | select fart;\n")
	assert.Contains(t, out, "  |            ^ expected \"from\"\n")
	assert.Contains(t, out, "  = in Select statement at 1:1\n")
	assert.Contains(t, out, "  = in Query at 1:1\n")
}
