package pagination

import (
	"context"
	"fmt"

	"github.com/davidbarts/indeedsearch/internal/logging"
	"github.com/davidbarts/indeedsearch/internal/table"
)

// Page is one response from a QueryClient.
type Page struct {
	// Rows are the results on this page, keyed by column name.
	Rows []map[string]table.Value
	// TotalResults is the total number of matches the remote system claims to have.
	TotalResults int
}

// QueryClient fetches a single page of results for a query.
type QueryClient[Q any] interface {
	FetchPage(ctx context.Context, query Q, offset, pageSize int) (Page, error)
}

// CompletenessError reports that the number of rows retrieved differs from the total
// the last page claimed.
type CompletenessError struct {
	Reported  int
	Retrieved int
}

func (e *CompletenessError) Error() string {
	return fmt.Sprintf("search reported %d results, but %d retrieved", e.Reported, e.Retrieved)
}

// Paginator retrieves all pages of a query into a table.
type Paginator[Q any] struct {
	client QueryClient[Q]
	schema []table.Column
}

// New creates a Paginator whose tables use schema.
func New[Q any](client QueryClient[Q], schema []table.Column) *Paginator[Q] {
	return &Paginator[Q]{client: client, schema: append([]table.Column(nil), schema...)}
}

// FetchAll requests pages at offsets 0, pageSize, 2*pageSize, ... while the offset is
// below the most recently reported total. Any page size of at least MinPageSize is
// accepted; MaxPageSize is a limit of the Indeed service, enforced where it is configured.
//
// A page fetch error is returned immediately with no table. If the final row count
// differs from the final reported total, the complete table is returned together with a
// *CompletenessError so the caller can decide how to treat the discrepancy.
func (p *Paginator[Q]) FetchAll(ctx context.Context, query Q, pageSize int) (*table.Table, error) {
	log := logging.FromContext(ctx)

	if pageSize < MinPageSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	params := Params{PageSize: pageSize}

	tab, err := table.NewWithColumns(p.schema...)
	if err != nil {
		return nil, err
	}

	cur := newCursor(pageSize)
	for {
		page, fetchErr := p.client.FetchPage(ctx, query, cur.offset, cur.pageSize)
		if fetchErr != nil {
			log.Error().Ctx(ctx).
				Str("component", "pagination").
				Str("operation", "fetch_page").
				Int("offset", cur.offset).
				Err(fetchErr).
				Msg("page request failed")
			return nil, fmt.Errorf("fetching page at offset %d: %w", cur.offset, fetchErr)
		}

		for i, row := range page.Rows {
			if appendErr := tab.AppendRow(row); appendErr != nil {
				return nil, fmt.Errorf("appending row %d of page at offset %d: %w", i, cur.offset, appendErr)
			}
		}

		if previous, changed := cur.record(page.TotalResults); changed {
			log.Warn().Ctx(ctx).
				Str("component", "pagination").
				Int("offset", cur.offset).
				Int("previous_total", previous).
				Int("total", page.TotalResults).
				Msg("reported total changed between pages")
		}

		log.Debug().Ctx(ctx).
			Str("component", "pagination").
			Str("operation", "fetch_page").
			Int("offset", cur.offset).
			Int("rows", len(page.Rows)).
			Int("total", page.TotalResults).
			Msg("page retrieved")

		cur.advance()
		if cur.done() {
			break
		}
	}

	log.Debug().Ctx(ctx).
		Str("component", "pagination").
		Int("requests", cur.requests).
		Int("expected_requests", params.CalculateTotalPages(cur.total)).
		Int("rows", tab.RowCount()).
		Int("total", cur.total).
		Msg("pagination complete")

	if tab.RowCount() != cur.total {
		return tab, &CompletenessError{Reported: cur.total, Retrieved: tab.RowCount()}
	}
	return tab, nil
}
