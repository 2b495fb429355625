package executor

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/engine"
	"github.com/tuannm99/toysql/internal/heap"
	"github.com/tuannm99/toysql/internal/record"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

// executorDB is a small seam for unit-testing Executor without a real DB.
type executorDB interface {
	CreateTable(name string, columns []record.Column) (*heap.Table, error)
	Insert(table string, values []record.Value) (uint64, error)
	Select(table string, fields []string) (*heap.TableIter, error)
	ListTables() ([]catalog.TableMeta, error)
}

var _ executorDB = (*engine.Database)(nil)

type Options struct {
	// CacheSize is the number of parsed SQL texts kept; 0 disables the cache.
	CacheSize int
	Logger    *slog.Logger
}

// Executor parses SQL and applies it to a Database.
// Like the Database, it is not safe for concurrent use.
type Executor struct {
	DB executorDB

	cache *lru.Cache[string, []parser.Statement]
	log   *slog.Logger
}

func NewExecutor(db *engine.Database, opts Options) (*Executor, error) {
	return newExecutor(db, opts)
}

// NewExecutorForTest allows injecting a fake executorDB.
func NewExecutorForTest(db executorDB, opts Options) (*Executor, error) {
	return newExecutor(db, opts)
}

func newExecutor(db executorDB, opts Options) (*Executor, error) {
	ex := &Executor{DB: db, log: opts.Logger}
	if ex.log == nil {
		ex.log = slog.Default()
	}
	if opts.CacheSize > 0 {
		c, err := lru.New[string, []parser.Statement](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("executor: statement cache: %w", err)
		}
		ex.cache = c
	}
	return ex, nil
}

// Parse parses a batch of statements, reusing earlier results for the same
// text. Statements are immutable, so cached batches are shared.
func (e *Executor) Parse(sql string) ([]parser.Statement, error) {
	if e.cache != nil {
		if stmts, ok := e.cache.Get(sql); ok {
			return stmts, nil
		}
	}
	stmts, err := parser.ParseQueries(sql)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Add(sql, stmts)
	}
	return stmts, nil
}

// ExecSQL is the top-level entry: SQL text -> one Result per statement.
// Execution stops at the first failing statement; the results of the
// statements before it are returned along with the error.
func (e *Executor) ExecSQL(sql string) ([]*Result, error) {
	stmts, err := e.Parse(sql)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(stmts))
	for _, stmt := range stmts {
		res, err := e.Execute(stmt)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Executor) Execute(stmt parser.Statement) (*Result, error) {
	e.log.Debug("execute", "stmt", stmt.String())

	switch s := stmt.(type) {
	case *parser.CreateTableStmt:
		return e.execCreateTable(s)
	case *parser.InsertStmt:
		return e.execInsert(s)
	case *parser.SelectStmt:
		return e.execSelect(s)
	default:
		return nil, fmt.Errorf("executor: unsupported statement type %T", stmt)
	}
}

func (e *Executor) execCreateTable(s *parser.CreateTableStmt) (*Result, error) {
	if _, err := e.DB.CreateTable(s.TableName, s.Columns); err != nil {
		return nil, err
	}
	return &Result{Kind: ResultCreate, Table: s.TableName}, nil
}

func (e *Executor) execInsert(s *parser.InsertStmt) (*Result, error) {
	id, err := e.DB.Insert(s.TableName, s.Values)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: ResultInsert, Table: s.TableName, RowID: id}, nil
}

func (e *Executor) execSelect(s *parser.SelectStmt) (*Result, error) {
	it, err := e.DB.Select(s.TableName, s.Fields)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: ResultSelect, Table: s.TableName, Rows: it}, nil
}

func (e *Executor) ListTables() ([]catalog.TableMeta, error) {
	return e.DB.ListTables()
}

// CollectAll materializes every result in order.
func CollectAll(results []*Result) []*ResultSet {
	out := make([]*ResultSet, len(results))
	for i, r := range results {
		out[i] = r.Collect()
	}
	return out
}
