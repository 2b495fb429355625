package executor

import (
	"fmt"

	"github.com/tuannm99/toysql/internal/heap"
	"github.com/tuannm99/toysql/internal/record"
)

type ResultKind uint8

const (
	ResultCreate ResultKind = iota
	ResultInsert
	ResultSelect
)

func (k ResultKind) String() string {
	switch k {
	case ResultCreate:
		return "create"
	case ResultInsert:
		return "insert"
	case ResultSelect:
		return "select"
	default:
		return fmt.Sprintf("ResultKind(%d)", uint8(k))
	}
}

// Result is the outcome of one statement. For CREATE and INSERT it is an
// acknowledgement; for SELECT, Rows is a lazy, single-pass row sequence.
type Result struct {
	Kind  ResultKind
	Table string

	// RowID is the id assigned by an INSERT.
	RowID uint64

	Rows *heap.TableIter
}

// Columns returns the selected columns, or an empty list for acknowledgements.
func (r *Result) Columns() record.ColumnInfo {
	if r.Rows == nil {
		return record.ColumnInfo{}
	}
	return r.Rows.Columns()
}

func (r *Result) String() string {
	switch r.Kind {
	case ResultCreate:
		return fmt.Sprintf("Table %s created", r.Table)
	case ResultInsert:
		return fmt.Sprintf("1 row inserted into %s", r.Table)
	default:
		return fmt.Sprintf("Selected from %s", r.Table)
	}
}

// ResultSet is a materialized Result, safe to keep after the table changes
// and to send over the wire.
type ResultSet struct {
	Kind         string          `json:"kind"`
	Table        string          `json:"table"`
	Message      string          `json:"message,omitempty"`
	Columns      []record.Column `json:"columns,omitempty"`
	Rows         [][]string      `json:"rows,omitempty"`
	AffectedRows int64           `json:"affected_rows"`
}

// NullText is shown for a selected column a stored row has no value for.
const NullText = "NULL"

// Collect drains r. It reads the column list once, walks the rows once and
// looks every selected column up by name.
func (r *Result) Collect() *ResultSet {
	rs := &ResultSet{
		Kind:    r.Kind.String(),
		Table:   r.Table,
		Message: r.String(),
	}
	switch r.Kind {
	case ResultInsert:
		rs.AffectedRows = 1
	case ResultSelect:
		cols := r.Columns()
		rs.Columns = cols.Columns()
		names := cols.Names()
		for row := range r.Rows.All() {
			out := make([]string, len(names))
			for i, name := range names {
				v, err := row.TryGet(name)
				if err != nil {
					out[i] = NullText
					continue
				}
				out[i] = v.String()
			}
			rs.Rows = append(rs.Rows, out)
		}
		rs.AffectedRows = int64(len(rs.Rows))
		rs.Message = fmt.Sprintf("(%d rows)", len(rs.Rows))
	}
	return rs
}

// ColumnNames lists the names of rs.Columns.
func (rs *ResultSet) ColumnNames() []string {
	out := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		out[i] = c.Name
	}
	return out
}
