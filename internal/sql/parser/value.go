package parser

import (
	"github.com/tuannm99/toysql/internal/record"
)

// stringLiteral parses 'text'. There is no escaping: the literal ends at the
// next quote.
func stringLiteral(in Input) (Input, record.Value, error) {
	return context("String Literal", func(in Input) (Input, record.Value, error) {
		rest, _, err := tag("'")(in)
		if err != nil {
			return in, record.Value{}, err
		}
		rest, s, err := takeUntil("'")(rest)
		if err != nil {
			return in, record.Value{}, err
		}
		rest, _, err = tag("'")(rest)
		if err != nil {
			return in, record.Value{}, err
		}
		return rest, record.StringValue(s), nil
	})(in)
}

// numberLiteral parses a run of ASCII digits.
func numberLiteral(in Input) (Input, record.Value, error) {
	return context("Number Literal", func(in Input) (Input, record.Value, error) {
		rest, digits, err := takeWhile1(isASCIIDigit, ExpectDigit)(in)
		if err != nil {
			return in, record.Value{}, err
		}
		v, err := record.ParseNumber(digits)
		if err != nil {
			return in, record.Value{}, expect(in, ExpectDigit, "")
		}
		return rest, v, nil
	})(in)
}

// parseValue parses one literal with optional surrounding whitespace. Input
// starting with a quote must be a complete string literal.
func parseValue(in Input) (Input, record.Value, error) {
	return context("Value",
		preceded(multispace0,
			terminated(
				alt(peekThenCut("'", stringLiteral), numberLiteral),
				multispace0,
			),
		),
	)(in)
}

// parseColumnType parses "string" or "int" in any case.
func parseColumnType(in Input) (Input, record.ColumnType, error) {
	return context("Column Type", alt(
		mapP(tagNoCase("string"), func(string) record.ColumnType { return record.ColString }),
		mapP(tagNoCase("int"), func(string) record.ColumnType { return record.ColInt }),
	))(in)
}

// ParseValue parses a single literal and returns the unconsumed input.
func ParseValue(src string) (record.Value, string, error) {
	rest, v, err := parseValue(NewInput(src))
	if err != nil {
		return record.Value{}, src, FormatError(src, err)
	}
	return v, rest.Rest(), nil
}

// ParseColumnType parses a column type name such as "INT" or "string".
func ParseColumnType(src string) (record.ColumnType, error) {
	rest, t, err := parseColumnType(NewInput(src))
	if err == nil {
		_, _, err = eof(rest)
	}
	if err != nil {
		return 0, FormatError(src, err)
	}
	return t, nil
}
