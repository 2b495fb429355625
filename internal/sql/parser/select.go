package parser

// SELECT col1, col2 FROM foo

func parseSelect(in Input) (Input, Statement, error) {
	return context("Select statement", func(in Input) (Input, Statement, error) {
		rest, err := skip(in, tagNoCase("select"), multispace1)
		if err != nil {
			return in, nil, err
		}
		rest, fields, err := context("Select Columns", commaSep(identifier))(rest)
		if err != nil {
			return in, nil, err
		}
		rest, err = skip(rest, keyword("from"), multispace1)
		if err != nil {
			return in, nil, err
		}
		rest, table, err := context("Table Name", identifier)(rest)
		if err != nil {
			return in, nil, err
		}
		return rest, &SelectStmt{TableName: table, Fields: fields}, nil
	})(in)
}
