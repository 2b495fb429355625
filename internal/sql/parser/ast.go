package parser

import (
	"fmt"
	"strings"

	"github.com/tuannm99/toysql/internal/record"
)

// Statement is the root interface for all SQL statements.
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// ----- CREATE TABLE -----
type CreateTableStmt struct {
	TableName string
	Columns   []record.Column
}

func (*CreateTableStmt) stmtNode() {}

func (s *CreateTableStmt) String() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = c.Name + " " + strings.ToLower(c.Type.String())
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.TableName, strings.Join(defs, ", "))
}

// ----- INSERT -----
// Values are positional, in the table's column order.
type InsertStmt struct {
	TableName string
	Values    []record.Value
}

func (*InsertStmt) stmtNode() {}

func (s *InsertStmt) String() string {
	vals := make([]string, len(s.Values))
	for i, v := range s.Values {
		vals[i] = v.SQL()
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", s.TableName, strings.Join(vals, ", "))
}

// ----- SELECT -----
type SelectStmt struct {
	TableName string
	Fields    []string
}

func (*SelectStmt) stmtNode() {}

func (s *SelectStmt) String() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.Fields, ", "), s.TableName)
}
