package toysqlwire

import (
	"github.com/tuannm99/toysql/internal/catalog"
	"github.com/tuannm99/toysql/internal/sql/executor"
	"github.com/tuannm99/toysql/internal/sql/parser"
)

// MetaTables asks the server for the table list instead of running SQL.
const MetaTables = "tables"

// ExecuteRequest is a single SQL batch request.
type ExecuteRequest struct {
	ID    uint64 `json:"id"`
	SQL   string `json:"sql,omitempty"`
	Token string `json:"token,omitempty"`
	Meta  string `json:"meta,omitempty"`
}

// ExecuteResponse is the response for a request ID.
//
// Results holds one entry per statement that ran. When a statement fails,
// Error is set and Results holds the statements before it. Parse failures
// also carry a Diagnostic.
type ExecuteResponse struct {
	ID         uint64                `json:"id"`
	Results    []*executor.ResultSet `json:"results,omitempty"`
	Tables     []catalog.TableMeta   `json:"tables,omitempty"`
	Error      string                `json:"error,omitempty"`
	Diagnostic *parser.Diagnostic    `json:"diagnostic,omitempty"`
}
