// Package render turns filtered result rows into the plain-text report printed to the
// console.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/davidbarts/indeedsearch/internal/table"
)

// Defaults used when a Renderer field is left zero.
const (
	DefaultWidth      = 79
	DefaultWrapColumn = "Snippet"
)

// Renderer formats rows one "Name: value" line per column, wrapping the long-text
// column and ending with a summary line. It does no filtering of its own.
type Renderer struct {
	// Width is the maximum line width for the wrapped column.
	Width int
	// WrapColumn names the column rendered through Wrap. Matching ignores case.
	WrapColumn string
}

// New returns a Renderer with the default width and wrap column.
func New() Renderer {
	return Renderer{Width: DefaultWidth, WrapColumn: DefaultWrapColumn}
}

// Lines renders rows, which must come from t, followed by the summary line.
func (r Renderer) Lines(t *table.Table, rows []table.Row) []string {
	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	wrapColumn := r.WrapColumn
	if wrapColumn == "" {
		wrapColumn = DefaultWrapColumn
	}

	columns := t.Columns()
	var lines []string
	for _, row := range rows {
		for i, col := range columns {
			v := row.At(i)
			if col.Type == table.TypeText && strings.EqualFold(col.Name, wrapColumn) {
				label := col.Name + ": "
				indent := strings.Repeat(" ", runewidth.StringWidth(label))
				lines = append(lines, Wrap(label, indent, v.String(), width)...)
				continue
			}
			lines = append(lines, col.Name+": "+v.String())
		}
		lines = append(lines, "")
	}

	return append(lines, Summary(len(rows), t.RowCount()))
}

// Render writes the report to w.
func (r Renderer) Render(w io.Writer, t *table.Table, rows []table.Row) error {
	return WriteLines(w, r.Lines(t, rows))
}

// Summary reports how many rows were printed out of the table total.
func Summary(printed, total int) string {
	return fmt.Sprintf("%d printed + %d suppressed = %d total", printed, total-printed, total)
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
