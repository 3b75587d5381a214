package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ErrSchemaMismatch is returned by Apply when the expression was parsed against a
// different column schema than the table being filtered.
var ErrSchemaMismatch = errors.New("filter expression was parsed for a different table schema")

// Kinds of text an ExpressionSyntaxError can report on.
const (
	KindFilter = "filter expression"
	KindSort   = "sort specification"
)

// ExpressionSyntaxError reports filter or sort text that cannot be compiled. Fragment
// holds the offending part of Expression, starting at Offset. Kind names what
// Expression is; empty means KindFilter.
type ExpressionSyntaxError struct {
	Kind       string
	Expression string
	Fragment   string
	Offset     int
	Reason     string
}

func (e *ExpressionSyntaxError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = KindFilter
	}
	where := "at end of input"
	if e.Fragment != "" {
		where = fmt.Sprintf("at %q", e.Fragment)
	}
	return fmt.Sprintf("syntax error in %s %q %s: %s", kind, e.Expression, where, e.Reason)
}

func newSyntaxError(expression string, start, end int, reason string) *ExpressionSyntaxError {
	start = clamp(start, 0, len(expression))
	end = clamp(end, start, len(expression))
	return &ExpressionSyntaxError{
		Kind:       KindFilter,
		Expression: expression,
		Fragment:   strings.TrimSpace(expression[start:end]),
		Offset:     start,
		Reason:     reason,
	}
}

func newSortError(spec, reason string) *ExpressionSyntaxError {
	err := newSyntaxError(spec, 0, len(spec), reason)
	err.Kind = KindSort
	return err
}

// fromParseError converts a participle lexer or parser error.
func fromParseError(expression string, err error) *ExpressionSyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		offset := perr.Position().Offset
		return newSyntaxError(expression, offset, len(expression), perr.Message())
	}
	return newSyntaxError(expression, 0, len(expression), err.Error())
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
