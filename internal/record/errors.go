package record

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrTableAlreadyExists  = errors.New("table already exists")
	ErrColumnDoesNotExist  = errors.New("column does not exist")
	ErrInsertTypeMismatch  = errors.New("insert type mismatch")
	ErrInsertArityMismatch = errors.New("insert arity mismatch")
)

// QueryError is an execution-time failure. Kind is one of the Err* sentinels
// above and is what errors.Is matches against.
type QueryError struct {
	Kind error

	// Name is the table or column the error is about.
	Name string

	// InsertTypeMismatch
	Type  ColumnType
	Value Value

	// InsertArityMismatch
	Want, Got int
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case ErrTableNotFound:
		return fmt.Sprintf("Table %s was not found", e.Name)
	case ErrTableAlreadyExists:
		return fmt.Sprintf("Table %s already exists", e.Name)
	case ErrColumnDoesNotExist:
		return fmt.Sprintf("Column %s does not exist", e.Name)
	case ErrInsertTypeMismatch:
		return fmt.Sprintf("Value %s can not be inserted into a %s column", e.Value.SQL(), e.Type)
	case ErrInsertArityMismatch:
		return fmt.Sprintf("Table %s has %d columns but %d values were supplied", e.Name, e.Want, e.Got)
	default:
		return "query execution error"
	}
}

func (e *QueryError) Unwrap() error { return e.Kind }

func TableNotFound(name string) *QueryError {
	return &QueryError{Kind: ErrTableNotFound, Name: name}
}

func TableAlreadyExists(name string) *QueryError {
	return &QueryError{Kind: ErrTableAlreadyExists, Name: name}
}

func ColumnDoesNotExist(name string) *QueryError {
	return &QueryError{Kind: ErrColumnDoesNotExist, Name: name}
}

func InsertTypeMismatch(t ColumnType, v Value) *QueryError {
	return &QueryError{Kind: ErrInsertTypeMismatch, Type: t, Value: v}
}

func InsertArityMismatch(table string, want, got int) *QueryError {
	return &QueryError{Kind: ErrInsertArityMismatch, Name: table, Want: want, Got: got}
}
