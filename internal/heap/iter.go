package heap

import (
	"iter"

	"github.com/tuannm99/toysql/internal/record"
)

// TableIter yields projected rows in ascending row id order. It is single
// pass; call Table.Select again for a fresh one.
//
// The iterator only sees rows whose id was assigned before it was created,
// so inserts made while it is being consumed are not observed.
type TableIter struct {
	table   *Table
	columns record.ColumnInfo

	next uint64 // smallest id not yet yielded
	last uint64 // highest id visible to this iterator
	more bool
}

// Columns is the projected column list shared by every row of the iterator.
func (it *TableIter) Columns() record.ColumnInfo { return it.columns }

func (it *TableIter) Next() (Row, bool) {
	if !it.more {
		return Row{}, false
	}

	k, v := it.table.rows.Ceiling(it.next)
	if k == nil || k.(uint64) > it.last {
		it.more = false
		return Row{}, false
	}

	id := k.(uint64)
	if id == it.last {
		it.more = false
	} else {
		it.next = id + 1
	}
	return it.project(id, v.(*StoredRow)), true
}

// project keeps the requested columns of a stored row. A requested column the
// row has no value for is left out of the row rather than reported.
func (it *TableIter) project(id uint64, sr *StoredRow) Row {
	data := make(map[string]record.Value, it.columns.NumCols())
	for _, name := range it.columns.Names() {
		if v, ok := sr.data[name]; ok {
			data[name] = v
		}
	}
	return Row{id: id, columns: it.columns, data: data}
}

// All drains the iterator as a range-over-func sequence.
func (it *TableIter) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for {
			row, ok := it.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}
