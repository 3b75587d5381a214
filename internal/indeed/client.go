package indeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/davidbarts/indeedsearch/internal/logging"
	"github.com/davidbarts/indeedsearch/internal/pagination"
)

// maxErrorBody caps how much of a failed response body is kept in an APIError.
const maxErrorBody = 512

// Client requests search result pages over HTTP.
type Client struct {
	httpClient *http.Client
}

var _ pagination.QueryClient[Query] = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a Client using http.DefaultClient unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage requests the results of q starting at offset.
func (c *Client) FetchPage(ctx context.Context, q Query, offset, pageSize int) (pagination.Page, error) {
	log := logging.FromContext(ctx)

	if q.Endpoint == "" {
		return pagination.Page{}, ErrMissingEndpoint
	}
	if q.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.Timeout)
		defer cancel()
	}

	endpoint, err := url.Parse(q.Endpoint)
	if err != nil {
		return pagination.Page{}, fmt.Errorf("parsing endpoint %q: %w", q.Endpoint, err)
	}
	endpoint.RawQuery = q.Values(offset, pageSize).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return pagination.Page{}, err
	}
	req.Header.Set("Accept", "application/json")
	if q.UserAgent != "" {
		req.Header.Set("User-Agent", q.UserAgent)
	}

	log.Debug().Ctx(ctx).
		Str("component", "indeed").
		Str("operation", "fetch_page").
		Str("host", endpoint.Host).
		Int("offset", offset).
		Int("limit", pageSize).
		Msg("requesting results")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pagination.Page{}, fmt.Errorf("requesting %s: %w", endpoint.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return pagination.Page{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var doc searchResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&doc); decodeErr != nil {
		return pagination.Page{}, fmt.Errorf("decoding search response: %w", decodeErr)
	}
	if doc.Error != "" {
		return pagination.Page{}, &APIError{StatusCode: resp.StatusCode, Message: doc.Error}
	}

	page := pagination.Page{TotalResults: doc.TotalResults}
	for _, result := range doc.Results {
		row, rowErr := result.row()
		if rowErr != nil {
			return pagination.Page{}, rowErr
		}
		page.Rows = append(page.Rows, row)
	}

	log.Debug().Ctx(ctx).
		Str("component", "indeed").
		Str("operation", "fetch_page").
		Int("offset", offset).
		Int("results", len(page.Rows)).
		Int("total", page.TotalResults).
		Msg("results decoded")

	return page, nil
}
