package parser

// parseQuery parses one statement and its terminating ';', along with any
// whitespace around it.
func parseQuery(in Input) (Input, Statement, error) {
	return context("Query", func(in Input) (Input, Statement, error) {
		rest, _, _ := multispace0(in)
		rest, stmt, err := alt(parseSelect, parseInsert, parseCreateTable)(rest)
		if err != nil {
			return in, nil, err
		}
		rest, err = skip(rest, multispace0, char(';'), multispace0)
		if err != nil {
			return in, nil, err
		}
		return rest, stmt, nil
	})(in)
}

// ParseQuery parses exactly one ';'-terminated statement.
// Failures are returned as *Diagnostic.
func ParseQuery(sql string) (Statement, error) {
	rest, stmt, err := parseQuery(NewInput(sql))
	if err == nil {
		_, _, err = eof(rest)
	}
	if err != nil {
		return nil, FormatError(sql, err)
	}
	return stmt, nil
}

// ParseQueries parses one or more ';'-terminated statements until the end of
// the input. The first malformed statement fails the whole batch.
func ParseQueries(sql string) ([]Statement, error) {
	in := NewInput(sql)
	var out []Statement
	for {
		rest, stmt, err := parseQuery(in)
		if err != nil {
			return nil, FormatError(sql, err)
		}
		out = append(out, stmt)
		if rest.AtEOF() {
			return out, nil
		}
		in = rest
	}
}
