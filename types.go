// Package toysql is the top-level facade for the toysql engine.
package toysql

import (
	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/engine"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

type (
	Database  = engine.Database
	Executor  = executor.Executor
	Result    = executor.Result
	ResultSet = executor.ResultSet
	TableMeta = catalog.TableMeta

	Statement  = parser.Statement
	Diagnostic = parser.Diagnostic
)

// Open returns an empty in-memory database and an executor over it.
func Open(statementCacheSize int) (*Database, *Executor, error) {
	db := engine.NewDatabase(nil)
	ex, err := executor.NewExecutor(db, executor.Options{CacheSize: statementCacheSize})
	if err != nil {
		return nil, nil, err
	}
	return db, ex, nil
}

// Parse parses one or more ';'-terminated statements.
func Parse(sql string) ([]Statement, error) { return parser.ParseQueries(sql) }
