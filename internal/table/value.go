package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ColumnType is the semantic type of a column.
type ColumnType int

// Supported column types. TypeInvalid is the zero value so an unset type is rejected.
const (
	TypeInvalid ColumnType = iota
	TypeText
	TypeInteger
	TypeDateTime
	TypeBoolean
)

// DateTimeLayout is the sortable, locale-independent ISO-8601 layout used when a
// date-time value is rendered as text.
const DateTimeLayout = "2006-01-02T15:04:05"

// String returns the lower-case name of the type.
func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeDateTime:
		return "datetime"
	case TypeBoolean:
		return "boolean"
	case TypeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Valid reports whether t is one of the supported column types.
func (t ColumnType) Valid() bool {
	return t >= TypeText && t <= TypeBoolean
}

// Value is a single cell. The zero Value is null.
type Value struct {
	kind ColumnType // TypeInvalid means null
	str  string
	num  int64
	when time.Time
	flag bool
}

// Text returns a text value. The empty string is a present value, not null.
func Text(s string) Value { return Value{kind: TypeText, str: s} }

// Integer returns an integer value.
func Integer(n int64) Value { return Value{kind: TypeInteger, num: n} }

// DateTime returns a date-time value.
func DateTime(t time.Time) Value { return Value{kind: TypeDateTime, when: t} }

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{kind: TypeBoolean, flag: b} }

// Null returns the absent value.
func Null() Value { return Value{} }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.kind == TypeInvalid }

// Type returns the value's type, or TypeInvalid for null.
func (v Value) Type() ColumnType { return v.kind }

// Str returns the text payload; it is empty for non-text values.
func (v Value) Str() string { return v.str }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.num }

// Time returns the date-time payload.
func (v Value) Time() time.Time { return v.when }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.flag }

// String formats the value for display. Null formats as the empty string.
func (v Value) String() string {
	switch v.kind {
	case TypeText:
		return v.str
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	case TypeDateTime:
		return v.when.Format(DateTimeLayout)
	case TypeBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

//nolint:gochecknoglobals // cases.Caser is stateless for Fold and safe to share.
var folder = cases.Fold()

// FoldText returns the case-folded form of s used for case-insensitive comparisons.
func FoldText(s string) string {
	return folder.String(s)
}

// Compare orders two values. Null sorts before every present value. Values of the same
// type compare naturally: text case-insensitively, integers numerically, date-times
// chronologically and false before true. Values of different types order by type.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}

	switch a.kind {
	case TypeText:
		return strings.Compare(FoldText(a.str), FoldText(b.str))
	case TypeInteger:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case TypeDateTime:
		return a.when.Compare(b.when)
	case TypeBoolean:
		switch {
		case a.flag == b.flag:
			return 0
		case !a.flag:
			return -1
		}
		return 1
	default:
		return 0
	}
}
