package heap

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/tuannm99/toysql/internal/record"
)

// StoredRow is one physical row: column name => value.
type StoredRow struct {
	data map[string]record.Value
}

// Table is an append-only row store ordered by row id.
// It is not safe for concurrent use.
type Table struct {
	Name    string
	columns record.ColumnInfo

	// row id (uint64) => StoredRow
	rows *treemap.Map
}

func NewTable(name string, columns []record.Column) *Table {
	return &Table{
		Name:    name,
		columns: record.NewColumnInfo(columns),
		rows:    treemap.NewWith(utils.UInt64Comparator),
	}
}

// Columns returns the table's full schema.
func (t *Table) Columns() record.ColumnInfo { return t.columns }

func (t *Table) Len() int { return t.rows.Size() }

// nextID is max(id)+1, or 0 for an empty table. Ids are never reused.
func (t *Table) nextID() uint64 {
	k, _ := t.rows.Max()
	if k == nil {
		return 0
	}
	return k.(uint64) + 1
}

// Insert stores values positionally against the schema and returns the new
// row id. Every value is checked before anything is stored, so a failed
// insert leaves the table unchanged.
func (t *Table) Insert(values []record.Value) (uint64, error) {
	if len(values) != t.columns.NumCols() {
		return 0, record.InsertArityMismatch(t.Name, t.columns.NumCols(), len(values))
	}

	data := make(map[string]record.Value, len(values))
	for i, v := range values {
		col := t.columns.At(i)
		if !col.Type.Accepts(v) {
			return 0, record.InsertTypeMismatch(col.Type, v)
		}
		data[col.Name] = v
	}

	id := t.nextID()
	t.rows.Put(id, &StoredRow{data: data})
	return id, nil
}

// Select validates fields against the schema and returns an iterator over
// the rows that exist right now, projected to fields in the given order.
func (t *Table) Select(fields []string) (*TableIter, error) {
	selected := make([]record.Column, 0, len(fields))
	for _, f := range fields {
		col, err := t.columns.Find(f)
		if err != nil {
			return nil, err
		}
		selected = append(selected, col)
	}
	return t.newIter(record.NewColumnInfo(selected)), nil
}

// Iter returns an iterator over all columns.
func (t *Table) Iter() *TableIter {
	return t.newIter(t.columns)
}

func (t *Table) newIter(columns record.ColumnInfo) *TableIter {
	it := &TableIter{table: t, columns: columns}
	if k, _ := t.rows.Max(); k != nil {
		it.last = k.(uint64)
		it.more = true
	}
	return it
}
