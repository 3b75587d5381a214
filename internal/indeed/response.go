package indeed

import (
	"fmt"
	"strings"
	"time"

	"github.com/relvacode/iso8601"
	"golang.org/x/net/html"

	"github.com/davidbarts/indeedsearch/internal/table"
)

// searchResponse is the JSON document returned by the search endpoint.
type searchResponse struct {
	Error        string      `json:"error"`
	TotalResults int         `json:"totalResults"`
	Start        int         `json:"start"`
	End          int         `json:"end"`
	Results      []jobResult `json:"results"`
}

type jobResult struct {
	JobTitle          string `json:"jobtitle"`
	Company           string `json:"company"`
	FormattedLocation string `json:"formattedLocation"`
	Source            string `json:"source"`
	Date              string `json:"date"`
	Snippet           string `json:"snippet"`
	URL               string `json:"url"`
	JobKey            string `json:"jobkey"`
	Sponsored         *bool  `json:"sponsored"`
	Expired           *bool  `json:"expired"`
}

// row converts a result into table values keyed by column name.
func (r jobResult) row() (map[string]table.Value, error) {
	date := table.Null()
	if strings.TrimSpace(r.Date) != "" {
		when, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing date of job %q: %w", r.JobKey, err)
		}
		date = table.DateTime(when)
	}

	return map[string]table.Value{
		ColumnTitle:     table.Text(r.JobTitle),
		ColumnCompany:   table.Text(r.Company),
		ColumnLocation:  table.Text(r.FormattedLocation),
		ColumnSource:    table.Text(r.Source),
		ColumnDate:      date,
		ColumnSnippet:   table.Text(PlainText(r.Snippet)),
		ColumnURL:       table.Text(r.URL),
		ColumnJobKey:    table.Text(r.JobKey),
		ColumnSponsored: optionalBool(r.Sponsored),
		ColumnExpired:   optionalBool(r.Expired),
	}, nil
}

func optionalBool(b *bool) table.Value {
	if b == nil {
		return table.Null()
	}
	return table.Boolean(*b)
}

// parseDate accepts the RFC 1123 dates the API sends and falls back to ISO 8601.
// Results are normalized to UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC1123, time.RFC1123Z} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return t.UTC(), nil
}

// PlainText strips markup from an HTML fragment, unescapes entities and collapses runs
// of whitespace to single spaces.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" || string(name) == "p" {
				b.WriteByte(' ')
			}
		}
	}
}
