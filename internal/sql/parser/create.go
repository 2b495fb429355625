package parser

import "github.com/tuannm99/toysql/internal/record"

// CREATE TABLE foo (
//     col1 string,
//     col2 int
// )

// parseColumn parses "<name> <type>".
func parseColumn(in Input) (Input, record.Column, error) {
	return context("Create Column", func(in Input) (Input, record.Column, error) {
		rest, name, err := context("Column Name", identifier)(in)
		if err != nil {
			return in, record.Column{}, err
		}
		rest, _, err = multispace1(rest)
		if err != nil {
			return in, record.Column{}, err
		}
		rest, typ, err := parseColumnType(rest)
		if err != nil {
			return in, record.Column{}, err
		}
		return rest, record.Column{Name: name, Type: typ}, nil
	})(in)
}

func columnDefinitions(in Input) (Input, []record.Column, error) {
	return context("Column Definitions", func(in Input) (Input, []record.Column, error) {
		rest, err := skip(in, char('('), multispace0)
		if err != nil {
			return in, nil, err
		}
		rest, cols, err := commaSep(parseColumn)(rest)
		if err != nil {
			return in, nil, err
		}
		rest, err = skip(rest, multispace0, char(')'))
		if err != nil {
			return in, nil, err
		}
		return rest, cols, nil
	})(in)
}

func parseCreateTable(in Input) (Input, Statement, error) {
	return context("Create Table", func(in Input) (Input, Statement, error) {
		rest, err := skip(in, tagNoCase("create"), multispace1, tagNoCase("table"), multispace1)
		if err != nil {
			return in, nil, err
		}
		rest, table, err := context("Table Name", identifier)(rest)
		if err != nil {
			return in, nil, err
		}
		rest, _, _ = multispace0(rest)
		rest, cols, err := columnDefinitions(rest)
		if err != nil {
			return in, nil, err
		}
		return rest, &CreateTableStmt{TableName: table, Columns: cols}, nil
	})(in)
}
