package table

import (
	"errors"
	"fmt"
)

// ErrTableSealed is returned by AppendRow once the table has been sealed for reading.
var ErrTableSealed = errors.New("table is sealed; rows can no longer be appended")

// SchemaError reports a misuse of the column schema.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Reason
}

// TypeMismatchError reports a value whose type disagrees with its column.
type TypeMismatchError struct {
	Column string
	Want   ColumnType
	Got    ColumnType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for column %q: want %s, got %s", e.Column, e.Want, e.Got)
}

// UnknownColumnError reports a reference to a column the schema does not declare.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}
