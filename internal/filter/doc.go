// Package filter selects and orders table rows with a boolean expression typed by the
// user.
//
// The expression language resembles a SQL WHERE clause:
//
//	Title LIKE '%engineer%' AND NOT Sponsored = TRUE
//	Company IN ('Acme', 'Globex') OR Date >= '2024-05-01'
//	Snippet IS NOT NULL
//
// Keywords are case-insensitive. Text comparisons and LIKE ignore case; integers compare
// numerically and date-times chronologically. Date literals are quoted ISO-8601 strings.
//
// Parse builds an explicit syntax tree (Node) and type-checks it against the table
// schema; Eval walks the tree for one row; Apply filters and stably sorts a table.
package filter
