// Package indeed implements a pagination.QueryClient for the Indeed publisher job search
// API (version 2, JSON format).
package indeed

import (
	"net/url"
	"strconv"
	"time"
)

// Defaults applied by NewQuery.
const (
	DefaultEndpoint  = "http://api.indeed.com/ads/apisearch"
	DefaultPublisher = "1518864852582150"
	DefaultUserAgent = "Mozilla/4.0 (Firefox)"
	DefaultSort      = "date"
	DefaultFromAge   = 1
	DefaultTimeout   = 30 * time.Second

	apiVersion = "2"
	apiFormat  = "json"
)

// Site types accepted by the st parameter.
const (
	SiteTypeJobSite  = "jobsite"
	SiteTypeEmployer = "employer"
)

// Query holds the search parameters sent with every page request. Offset and page size
// are supplied per request by the paginator.
type Query struct {
	Endpoint  string
	Publisher string

	Query    string
	Location string
	Sort     string
	// Radius is the search radius in miles; zero leaves it to the API.
	Radius   int
	SiteType string
	JobType  string
	// FromAge limits results to postings at most this many days old; zero means no limit.
	FromAge int
	// Filter enables Indeed's duplicate-posting filter.
	Filter          bool
	LatLong         bool
	ExcludeAgencies bool
	Country         string

	UserAgent string
	UserIP    string

	// Timeout bounds each page request; zero disables the per-request timeout.
	Timeout time.Duration
}

// NewQuery returns a Query with the default endpoint, publisher, sort order and filter.
func NewQuery(query, location string) Query {
	return Query{
		Endpoint:  DefaultEndpoint,
		Publisher: DefaultPublisher,
		Query:     query,
		Location:  location,
		Sort:      DefaultSort,
		FromAge:   DefaultFromAge,
		Filter:    true,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}
}

// Values encodes the query as API parameters for the page starting at offset.
func (q Query) Values(offset, limit int) url.Values {
	v := url.Values{}
	v.Set("publisher", q.Publisher)
	v.Set("v", apiVersion)
	v.Set("format", apiFormat)
	v.Set("q", q.Query)
	v.Set("l", q.Location)
	setIf(v, "sort", q.Sort)
	if q.Radius > 0 {
		v.Set("radius", strconv.Itoa(q.Radius))
	}
	setIf(v, "st", q.SiteType)
	setIf(v, "jt", q.JobType)
	v.Set("start", strconv.Itoa(offset))
	v.Set("limit", strconv.Itoa(limit))
	if q.FromAge > 0 {
		v.Set("fromage", strconv.Itoa(q.FromAge))
	}
	v.Set("filter", boolParam(q.Filter))
	if q.LatLong {
		v.Set("latlong", "1")
	}
	if q.ExcludeAgencies {
		v.Set("excludeagencies", "1")
	}
	setIf(v, "co", q.Country)
	setIf(v, "userip", q.UserIP)
	setIf(v, "useragent", q.UserAgent)
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
