package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/toysql/internal/record"
)

func TestParseValue_String(t *testing.T) {
	v, rest, err := ParseValue("'123abc new' fart '123'")
	require.NoError(t, err)
	assert.True(t, v.Equal(record.StringValue("123abc new")))
	assert.Equal(t, "fart '123'", rest)
}

func TestParseValue_Number(t *testing.T) {
	v, rest, err := ParseValue("  123456  ")
	require.NoError(t, err)
	assert.True(t, v.Equal(record.IntValue(123456)))
	assert.Empty(t, rest)
}

func TestParseValue_HugeNumber(t *testing.T) {
	v, _, err := ParseValue("99999999999999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, "99999999999999999999999999999999", v.String())
}

func TestParseValue_EmptyString(t *testing.T) {
	v, _, err := ParseValue("''")
	require.NoError(t, err)
	assert.True(t, v.Equal(record.StringValue("")))
}

func TestParseValue_Invalid(t *testing.T) {
	_, _, err := ParseValue("abc")
	d := requireDiagnostic(t, err)
	assert.Equal(t, 0, d.Offset)
	assert.Equal(t, []string{"Number Literal", "Value"}, d.ContextNames())

	_, _, err = ParseValue("-5")
	require.Error(t, err)
}

func TestParseColumnType(t *testing.T) {
	cases := []struct {
		in   string
		want record.ColumnType
		ok   bool
	}{
		{"int", record.ColInt, true},
		{"INT", record.ColInt, true},
		{"String", record.ColString, true},
		{"integer", 0, false},
		{"bool", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseColumnType(tc.in)
		if !tc.ok {
			require.Error(t, err, "ParseColumnType(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseColumnType(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseColumnType(%q)", tc.in)
	}
}

func TestParseColumnType_Context(t *testing.T) {
	_, err := ParseColumnType("float")
	d := requireDiagnostic(t, err)
	assert.Equal(t, []string{"Column Type"}, d.ContextNames())
	assert.Equal(t, `expected "string"`, d.Kind)
}
