package record

import (
	"fmt"
	"strings"
)

// ColumnType is the declared type of a table column.
type ColumnType uint8

const (
	ColString ColumnType = iota
	ColInt
)

func (t ColumnType) String() string {
	switch t {
	case ColString:
		return "String"
	case ColInt:
		return "Int"
	default:
		return fmt.Sprintf("ColumnType(%d)", uint8(t))
	}
}

// Accepts reports whether v may be stored in a column of type t.
// There is no coercion: String takes strings, Int takes numbers.
func (t ColumnType) Accepts(v Value) bool {
	switch t {
	case ColString:
		return v.Kind() == KindString
	case ColInt:
		return v.Kind() == KindNumber
	default:
		return false
	}
}

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// ColumnInfo is an ordered, immutable list of columns. It is either a table's
// full schema or the projected subset requested by a SELECT.
type ColumnInfo struct {
	cols []Column
}

// NewColumnInfo copies cols so later changes to the slice are not observed.
func NewColumnInfo(cols []Column) ColumnInfo {
	cp := make([]Column, len(cols))
	copy(cp, cols)
	return ColumnInfo{cols: cp}
}

func (ci ColumnInfo) NumCols() int { return len(ci.cols) }

func (ci ColumnInfo) At(i int) Column { return ci.cols[i] }

// Columns returns a copy of the column list.
func (ci ColumnInfo) Columns() []Column {
	cp := make([]Column, len(ci.cols))
	copy(cp, ci.cols)
	return cp
}

func (ci ColumnInfo) Names() []string {
	names := make([]string, len(ci.cols))
	for i, c := range ci.cols {
		names[i] = c.Name
	}
	return names
}

// Find returns the first column called name.
func (ci ColumnInfo) Find(name string) (Column, error) {
	for _, c := range ci.cols {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, ColumnDoesNotExist(name)
}

// Has is Find without the error.
func (ci ColumnInfo) Has(name string) bool {
	_, err := ci.Find(name)
	return err == nil
}

func (t ColumnType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ColumnType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "string":
		*t = ColString
	case "int":
		*t = ColInt
	default:
		return fmt.Errorf("record: unknown column type %q", b)
	}
	return nil
}
