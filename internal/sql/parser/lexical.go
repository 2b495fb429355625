package parser

// identifier parses a table or column name: a letter or '_' followed by
// letters, digits or '_'.
func identifier(in Input) (Input, string, error) {
	r := in.Rest()
	if spanWhile(r, isIdentStart) == 0 {
		return in, "", expect(in, ExpectIdentifier, "")
	}
	rest, out := in.take(spanWhile(r, isIdentChar))
	return rest, out, nil
}

func commaSeparator(in Input) (Input, string, error) {
	rest, err := skip(in, multispace0, char(','), multispace0)
	if err != nil {
		return in, "", err
	}
	return rest, ",", nil
}

// commaSep parses "p [, p]*" with free whitespace around the commas.
func commaSep[T any](p Parser[T]) Parser[[]T] {
	return separatedList1(commaSeparator, p)
}

// keyword parses mandatory whitespace followed by kw. Either part failing is
// reported as a missing kw at the position before the whitespace.
func keyword(kw string) Parser[string] {
	word := tagNoCase(kw)
	return func(in Input) (Input, string, error) {
		rest, _, err := multispace1(in)
		if err == nil {
			var out string
			if rest, out, err = word(rest); err == nil {
				return rest, out, nil
			}
		}
		return in, "", expect(in, ExpectTag, kw)
	}
}
