package cli

import (
	"context"

	"github.com/davidbarts/indeedsearch/internal/filter"
	"github.com/davidbarts/indeedsearch/internal/logging"
	"github.com/davidbarts/indeedsearch/internal/table"
)

// ApplyFilter selects and orders the rows of tab matching expr, logging what it did.
// A match-all expression returns every row, still sorted.
func ApplyFilter(ctx context.Context, tab *table.Table, expr *filter.Expression) ([]table.Row, error) {
	log := logging.FromContext(ctx)

	if expr.MatchesAll() {
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filter").
			Msg("no filter expression, keeping every row")
	}

	rows, err := filter.Apply(tab, expr)
	if err != nil {
		log.Error().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filter").
			Str("filter", expr.Source()).
			Err(err).
			Msg("filter could not be applied")
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "apply_filter").
		Str("filter", expr.Source()).
		Str("sort", expr.Sort().Name).
		Int("before", tab.RowCount()).
		Int("after", len(rows)).
		Msg("applied filter")

	if len(rows) == 0 && tab.RowCount() > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filter").
			Int("original_count", tab.RowCount()).
			Msg("no results match filter criteria")
	}

	return rows, nil
}
