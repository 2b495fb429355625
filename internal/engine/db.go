package engine

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/heap"
	"github.com/tuannm99/toysql/internal/record"
)

var ErrDatabaseClosed = errors.New("toysql: database is closed")

type DatabaseOperation interface {
	CreateTable(name string, columns []record.Column) (*heap.Table, error)
	OpenTable(name string) (*heap.Table, error)
	Insert(table string, values []record.Value) (uint64, error)
	Select(table string, fields []string) (*heap.TableIter, error)
	ListTables() ([]catalog.TableMeta, error)
	Close() error
}

var _ DatabaseOperation = (*Database)(nil)

// Database is the table registry. Tables live only as long as the Database.
//
// A Database is meant for a single caller; it has no locking of its own.
// Callers sharing one (e.g. a server) must serialize access, and must not
// insert into a table while a select iterator over it is still in use from
// another goroutine.
type Database struct {
	tables map[string]*heap.Table
	closed bool
	log    *slog.Logger
}

// NewDatabase creates an empty registry. A nil logger means slog.Default().
func NewDatabase(logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.Default()
	}
	return &Database{
		tables: make(map[string]*heap.Table),
		log:    logger,
	}
}

func (db *Database) CreateTable(name string, columns []record.Column) (*heap.Table, error) {
	if db.closed {
		return nil, ErrDatabaseClosed
	}
	if _, exists := db.tables[name]; exists {
		return nil, record.TableAlreadyExists(name)
	}

	tbl := heap.NewTable(name, columns)
	db.tables[name] = tbl
	db.log.Debug("table created", "table", name, "columns", len(columns))
	return tbl, nil
}

func (db *Database) OpenTable(name string) (*heap.Table, error) {
	if db.closed {
		return nil, ErrDatabaseClosed
	}
	tbl, ok := db.tables[name]
	if !ok {
		return nil, record.TableNotFound(name)
	}
	return tbl, nil
}

// Insert appends one row to table and returns its row id.
func (db *Database) Insert(table string, values []record.Value) (uint64, error) {
	tbl, err := db.OpenTable(table)
	if err != nil {
		return 0, err
	}
	id, err := tbl.Insert(values)
	if err != nil {
		return 0, err
	}
	db.log.Debug("row inserted", "table", table, "row_id", id)
	return id, nil
}

// Select returns a lazy iterator over table projected to fields.
func (db *Database) Select(table string, fields []string) (*heap.TableIter, error) {
	tbl, err := db.OpenTable(table)
	if err != nil {
		return nil, err
	}
	return tbl.Select(fields)
}

// ListTables returns metadata for every table, sorted by name.
func (db *Database) ListTables() ([]catalog.TableMeta, error) {
	if db.closed {
		return nil, ErrDatabaseClosed
	}
	out := make([]catalog.TableMeta, 0, len(db.tables))
	for name, tbl := range db.tables {
		out = append(out, catalog.TableMeta{
			Name:     name,
			Columns:  tbl.Columns().Columns(),
			RowCount: tbl.Len(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Close drops every table. Further calls return ErrDatabaseClosed.
func (db *Database) Close() error {
	if db.closed {
		return nil
	}
	db.log.Info("database closed", "tables", len(db.tables))
	db.tables = nil
	db.closed = true
	return nil
}
