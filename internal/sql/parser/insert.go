package parser

import "github.com/tuannm99/toysql/internal/record"

// INSERT INTO foo VALUES (1, 'abc')

func valueList(in Input) (Input, []record.Value, error) {
	return context("Values", func(in Input) (Input, []record.Value, error) {
		rest, err := skip(in, char('('), multispace0)
		if err != nil {
			return in, nil, err
		}
		rest, vals, err := commaSep(parseValue)(rest)
		if err != nil {
			return in, nil, err
		}
		rest, err = skip(rest, multispace0, char(')'))
		if err != nil {
			return in, nil, err
		}
		return rest, vals, nil
	})(in)
}

func parseInsert(in Input) (Input, Statement, error) {
	return context("Insert statement", func(in Input) (Input, Statement, error) {
		rest, err := skip(in, tagNoCase("insert"), multispace1, tagNoCase("into"), multispace1)
		if err != nil {
			return in, nil, err
		}
		rest, table, err := context("Table Name", identifier)(rest)
		if err != nil {
			return in, nil, err
		}
		rest, err = skip(rest, keyword("values"), multispace0)
		if err != nil {
			return in, nil, err
		}
		rest, vals, err := valueList(rest)
		if err != nil {
			return in, nil, err
		}
		return rest, &InsertStmt{TableName: table, Values: vals}, nil
	})(in)
}
