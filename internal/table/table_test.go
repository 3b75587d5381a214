package table_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbarts/indeedsearch/internal/table"
)

func jobColumns() []table.Column {
	return []table.Column{
		{Name: "Title", Type: table.TypeText},
		{Name: "Date", Type: table.TypeDateTime},
		{Name: "Views", Type: table.TypeInteger},
		{Name: "Sponsored", Type: table.TypeBoolean},
	}
}

func TestDefineColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []table.Column
		wantErr string
	}{
		{name: "valid schema", columns: jobColumns()},
		{name: "no columns", columns: nil, wantErr: "at least one column"},
		{
			name:    "duplicate names",
			columns: []table.Column{{Name: "Title", Type: table.TypeText}, {Name: "Title", Type: table.TypeText}},
			wantErr: "duplicate column",
		},
		{
			name:    "duplicate names differing by case",
			columns: []table.Column{{Name: "Title", Type: table.TypeText}, {Name: "TITLE", Type: table.TypeInteger}},
			wantErr: "duplicate column",
		},
		{
			name:    "empty name",
			columns: []table.Column{{Name: " ", Type: table.TypeText}},
			wantErr: "empty name",
		},
		{
			name:    "invalid type",
			columns: []table.Column{{Name: "Title"}},
			wantErr: "invalid type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tab := table.New()
			err := tab.DefineColumns(tt.columns...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.columns, tab.Columns())
				return
			}
			var schemaErr *table.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefineColumns_OnlyOnce(t *testing.T) {
	t.Parallel()

	tab, err := table.NewWithColumns(jobColumns()...)
	require.NoError(t, err)

	err = tab.DefineColumns(table.Column{Name: "Other", Type: table.TypeText})
	var schemaErr *table.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, tab.Columns(), 4)
}

func TestAppendRow(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("stores values in column order", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)

		require.NoError(t, tab.AppendRow(map[string]table.Value{
			"Sponsored": table.Boolean(true),
			"Title":     table.Text("Go Engineer"),
			"Date":      table.DateTime(when),
			"Views":     table.Integer(12),
		}))

		rows := tab.Rows()
		require.Len(t, rows, 1)
		require.Equal(t, 4, rows[0].Len())
		assert.Equal(t, "Go Engineer", rows[0].At(0).Str())
		assert.Equal(t, when, rows[0].At(1).Time())
		assert.Equal(t, int64(12), rows[0].At(2).Int())
		assert.True(t, rows[0].At(3).Bool())
	})

	t.Run("missing columns are null and empty text is present", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)

		require.NoError(t, tab.AppendRow(map[string]table.Value{"Title": table.Text("")}))

		row := tab.Rows()[0]
		assert.False(t, row.At(0).IsNull())
		assert.True(t, row.At(1).IsNull())
		assert.True(t, row.At(2).IsNull())
		assert.True(t, row.At(3).IsNull())
	})

	t.Run("explicit null is accepted for any column", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)
		require.NoError(t, tab.AppendRow(map[string]table.Value{"Date": table.Null()}))
		assert.Equal(t, 1, tab.RowCount())
	})

	t.Run("column names ignore case", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)
		require.NoError(t, tab.AppendRow(map[string]table.Value{"title": table.Text("x")}))
		assert.Equal(t, "x", tab.Rows()[0].At(0).Str())
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)

		err = tab.AppendRow(map[string]table.Value{"Date": table.Text("yesterday")})
		var mismatch *table.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "Date", mismatch.Column)
		assert.Equal(t, table.TypeDateTime, mismatch.Want)
		assert.Equal(t, table.TypeText, mismatch.Got)
		assert.Equal(t, 0, tab.RowCount())
	})

	t.Run("unknown column", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)

		err = tab.AppendRow(map[string]table.Value{"Salary": table.Integer(1)})
		var unknown *table.UnknownColumnError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Salary", unknown.Column)
		assert.Equal(t, 0, tab.RowCount())
	})

	t.Run("no schema", func(t *testing.T) {
		t.Parallel()
		err := table.New().AppendRow(map[string]table.Value{"Title": table.Text("x")})
		var schemaErr *table.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("sealed", func(t *testing.T) {
		t.Parallel()
		tab, err := table.NewWithColumns(jobColumns()...)
		require.NoError(t, err)
		tab.Seal()
		assert.True(t, tab.Sealed())
		err = tab.AppendRow(map[string]table.Value{"Title": table.Text("x")})
		assert.True(t, errors.Is(err, table.ErrTableSealed))
	})
}

func TestRows_ReturnsCopy(t *testing.T) {
	t.Parallel()

	tab, err := table.NewWithColumns(table.Column{Name: "N", Type: table.TypeInteger})
	require.NoError(t, err)
	for i := range 3 {
		require.NoError(t, tab.AppendRow(map[string]table.Value{"N": table.Integer(int64(i))}))
	}

	rows := tab.Rows()
	rows[0], rows[2] = rows[2], rows[0]

	again := tab.Rows()
	assert.Equal(t, int64(0), again[0].At(0).Int())
	assert.Equal(t, int64(2), again[2].At(0).Int())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name string
		a, b table.Value
		want int
	}{
		{"null before text", table.Null(), table.Text(""), -1},
		{"null equals null", table.Null(), table.Null(), 0},
		{"text ignores case", table.Text("engineer"), table.Text("ENGINEER"), 0},
		{"text lexical", table.Text("Apple"), table.Text("banana"), -1},
		{"integers numeric", table.Integer(10), table.Integer(9), 1},
		{"datetimes chronological", table.DateTime(early), table.DateTime(late), -1},
		{"false before true", table.Boolean(false), table.Boolean(true), -1},
		{"booleans equal", table.Boolean(true), table.Boolean(true), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, table.Compare(tt.a, tt.b))
		})
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-05-01T09:30:00",
		table.DateTime(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)).String())
	assert.Equal(t, "42", table.Integer(42).String())
	assert.Equal(t, "false", table.Boolean(false).String())
	assert.Equal(t, "", table.Null().String())
	assert.Equal(t, "text", table.Text("text").String())
}
