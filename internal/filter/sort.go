package filter

import (
	"fmt"
	"strings"

	"github.com/davidbarts/indeedsearch/internal/table"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// SortKey is the column and direction rows are ordered by after filtering.
// Column is -1 when no ordering applies.
type SortKey struct {
	Column     int
	Name       string
	Descending bool
}

// Enabled reports whether the key orders rows at all.
func (k SortKey) Enabled() bool {
	return k.Column >= 0
}

// DefaultSortKey orders by the first date-time column, newest first. When the schema has
// no date-time column the insertion order is kept.
func DefaultSortKey(columns []table.Column) SortKey {
	for i, c := range columns {
		if c.Type == table.TypeDateTime {
			return SortKey{Column: i, Name: c.Name, Descending: true}
		}
	}
	return SortKey{Column: -1}
}

// ParseSort parses a sort specification: "Field", "Field:asc", "Field:desc" or the
// SQL style "Field DESC". Field alone sorts ascending. An empty specification
// yields DefaultSortKey.
func ParseSort(columns []table.Column, spec string) (SortKey, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return DefaultSortKey(columns), nil
	}

	var parts []string
	if strings.Contains(trimmed, ":") {
		parts = strings.Split(trimmed, ":")
	} else {
		parts = strings.Fields(trimmed)
	}
	if len(parts) > sortPartsMax {
		return SortKey{}, newSortError(spec,
			"invalid sort format: use 'field', 'field:order' or 'field ORDER'")
	}

	field := strings.Trim(strings.TrimSpace(parts[0]), "[]")
	order := SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if field == "" {
		return SortKey{}, newSortError(spec, "sort field cannot be empty")
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return SortKey{}, newSortError(spec,
			fmt.Sprintf("sort order must be 'asc' or 'desc', got %q", order))
	}

	i, ok := table.Lookup(columns, field)
	if !ok {
		return SortKey{}, newSortError(spec, fmt.Sprintf("unknown sort column %q", field))
	}
	return SortKey{Column: i, Name: columns[i].Name, Descending: order == SortOrderDesc}, nil
}
