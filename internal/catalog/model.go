package catalog

import (
	"github.com/tuannm99/toysql/internal/record"
)

// TableMeta describes a registered table at one point in time.
type TableMeta struct {
	Name     string          `json:"name"`
	Columns  []record.Column `json:"columns"`
	RowCount int             `json:"row_count"`
}
