package table

import (
	"fmt"
	"strings"
)

// Column is a named, typed column of a Table.
type Column struct {
	Name string
	Type ColumnType
}

// Row is one immutable row. Values are stored in the table's column order.
type Row struct {
	values []Value
}

// Len returns the number of values in the row.
func (r Row) Len() int { return len(r.values) }

// At returns the value of the i-th column.
func (r Row) At(i int) Value { return r.values[i] }

// Table is an append-only, typed result store.
type Table struct {
	columns []Column
	index   map[string]int // folded column name -> position
	rows    []Row
	sealed  bool
}

// New creates a table with no schema.
func New() *Table {
	return &Table{}
}

// NewWithColumns creates a table and defines its schema in one step.
func NewWithColumns(columns ...Column) (*Table, error) {
	t := New()
	if err := t.DefineColumns(columns...); err != nil {
		return nil, err
	}
	return t, nil
}

// DefineColumns establishes the schema. It may be called only once.
func (t *Table) DefineColumns(columns ...Column) error {
	if t.columns != nil {
		return &SchemaError{Reason: "columns already defined"}
	}
	if len(columns) == 0 {
		return &SchemaError{Reason: "at least one column is required"}
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return &SchemaError{Reason: fmt.Sprintf("column %d has an empty name", i)}
		}
		if !c.Type.Valid() {
			return &SchemaError{Reason: fmt.Sprintf("column %q has invalid type %s", c.Name, c.Type)}
		}
		key := FoldText(name)
		if _, dup := index[key]; dup {
			return &SchemaError{Reason: fmt.Sprintf("duplicate column %q", c.Name)}
		}
		index[key] = i
	}

	t.columns = append([]Column(nil), columns...)
	t.index = index
	return nil
}

// Columns returns a copy of the schema in declared order.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// ColumnIndex returns the position of the named column. Lookup ignores case.
func (t *Table) ColumnIndex(name string) (int, bool) {
	return lookupColumn(t.index, name)
}

// AppendRow appends one row. Columns missing from values are stored as null. On error
// the table is left unchanged.
func (t *Table) AppendRow(values map[string]Value) error {
	if t.sealed {
		return ErrTableSealed
	}
	if t.columns == nil {
		return &SchemaError{Reason: "columns must be defined before rows are appended"}
	}

	row := make([]Value, len(t.columns))
	for name, v := range values {
		i, ok := t.ColumnIndex(name)
		if !ok {
			return &UnknownColumnError{Column: name}
		}
		col := t.columns[i]
		if !v.IsNull() && v.Type() != col.Type {
			return &TypeMismatchError{Column: col.Name, Want: col.Type, Got: v.Type()}
		}
		row[i] = v
	}

	t.rows = append(t.rows, Row{values: row})
	return nil
}

// Rows returns the rows in insertion order. The returned slice is a copy and may be
// reordered by the caller.
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Seal makes the table read-only.
func (t *Table) Seal() {
	t.sealed = true
}

// Sealed reports whether Seal has been called.
func (t *Table) Sealed() bool {
	return t.sealed
}

// Lookup returns the position of name within columns, ignoring case.
func Lookup(columns []Column, name string) (int, bool) {
	for i, c := range columns {
		if FoldText(c.Name) == FoldText(strings.TrimSpace(name)) {
			return i, true
		}
	}
	return -1, false
}

func lookupColumn(index map[string]int, name string) (int, bool) {
	i, ok := index[FoldText(strings.TrimSpace(name))]
	if !ok {
		return -1, false
	}
	return i, true
}
