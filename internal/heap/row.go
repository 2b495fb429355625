package heap

import "github.com/tuannm99/toysql/internal/record"

// Row is a projected view of a stored row.
type Row struct {
	id      uint64
	columns record.ColumnInfo
	data    map[string]record.Value
}

func (r Row) ID() uint64 { return r.id }

func (r Row) Columns() record.ColumnInfo { return r.columns }

// Get returns the value of column.
//
// Panics if the row has no such column; use TryGet when the column has not
// been validated already.
func (r Row) Get(column string) record.Value {
	v, err := r.TryGet(column)
	if err != nil {
		panic(err)
	}
	return v
}

func (r Row) TryGet(column string) (record.Value, error) {
	v, ok := r.data[column]
	if !ok {
		return record.Value{}, record.ColumnDoesNotExist(column)
	}
	return v, nil
}

// Values returns the row's values in column order. Missing values are
// reported with ok=false at their position.
func (r Row) Values() (vals []record.Value, ok []bool) {
	n := r.columns.NumCols()
	vals = make([]record.Value, n)
	ok = make([]bool, n)
	for i := 0; i < n; i++ {
		vals[i], ok[i] = r.data[r.columns.At(i).Name]
	}
	return vals, ok
}
