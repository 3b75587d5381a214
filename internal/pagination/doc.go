// Package pagination retrieves every page of a search and assembles the rows into a
// single table.
//
// This package contains:
//   - Paginator: drives a QueryClient page by page until the reported total is reached
//   - Params: page-size flag validation
//   - CompletenessError: the reported total disagrees with what was retrieved
//
// Pages are requested strictly one at a time in increasing offset order. The loop is
// driven only by the offset and the total reported by the most recent page; a short page
// does not end it.
package pagination
