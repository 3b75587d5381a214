// Package table provides the typed, column-oriented result store that search pages are
// accumulated into.
//
// A Table is created empty, receives its column schema exactly once via DefineColumns,
// and then only grows through AppendRow. Rows are never mutated or removed. Once Seal is
// called (the filter does this before it reads), further appends fail with ErrTableSealed.
//
// Cell values are a tagged union (Value) over text, integer, date-time and boolean plus
// null, so type errors surface when a row is appended rather than when it is rendered.
package table
