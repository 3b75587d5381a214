// Package config resolves indeedsearch settings from defaults, an optional YAML file and
// INDEEDSEARCH_* environment variables. Command-line flags are applied last by the cli
// package.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/davidbarts/indeedsearch/internal/indeed"
	"github.com/davidbarts/indeedsearch/internal/logging"
	"github.com/davidbarts/indeedsearch/internal/pagination"
	"github.com/davidbarts/indeedsearch/internal/render"
)

// Missing mandatory search parameters.
var (
	ErrNoQuery    = errors.New("no query specified")
	ErrNoLocation = errors.New("no location specified")
)

// Config is the resolved configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the query parameters sent to the search API.
type SearchConfig struct {
	Publisher       string `yaml:"publisher"`
	Query           string `yaml:"query"`
	Location        string `yaml:"location"`
	Radius          int    `yaml:"radius"`
	SiteType        string `yaml:"site_type"`
	JobType         string `yaml:"job_type"`
	DaysBack        int    `yaml:"days_back"`
	NoFilter        bool   `yaml:"no_filter"`
	LatLong         bool   `yaml:"lat_long"`
	ExcludeAgencies bool   `yaml:"exclude_agencies"`
	Country         string `yaml:"country"`
	Endpoint        string `yaml:"endpoint"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	PageSize        int    `yaml:"page_size"`
}

// OutputConfig controls filtering and rendering of the results.
type OutputConfig struct {
	// Width is the report width; zero selects the terminal width.
	Width      int    `yaml:"width"`
	WrapColumn string `yaml:"wrap_column"`
	Filter     string `yaml:"filter"`
	Sort       string `yaml:"sort"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Search:  defaultSearch(),
		Output:  defaultOutput(),
		Logging: defaultLogging(),
	}
}

func defaultSearch() SearchConfig {
	return SearchConfig{
		Publisher:      indeed.DefaultPublisher,
		DaysBack:       indeed.DefaultFromAge,
		Endpoint:       indeed.DefaultEndpoint,
		TimeoutSeconds: int(indeed.DefaultTimeout / time.Second),
		PageSize:       pagination.NewParams().PageSize,
	}
}

func defaultOutput() OutputConfig {
	return OutputConfig{
		Width:      render.DefaultWidth,
		WrapColumn: render.DefaultWrapColumn,
	}
}

func defaultLogging() LoggingConfig {
	return LoggingConfig{
		Level:  "warn",
		Format: logging.FormatConsole,
	}
}

// Validate reports every problem with the configuration. Missing query and location are
// reported as ErrNoQuery and ErrNoLocation so callers can match them with errors.Is.
func (c *Config) Validate() error {
	var errs []error

	if c.Search.Query == "" {
		errs = append(errs, ErrNoQuery)
	}
	if c.Search.Location == "" {
		errs = append(errs, ErrNoLocation)
	}
	switch c.Search.SiteType {
	case "", indeed.SiteTypeJobSite, indeed.SiteTypeEmployer:
	default:
		errs = append(errs, fmt.Errorf("invalid site type %q: must be %q or %q",
			c.Search.SiteType, indeed.SiteTypeJobSite, indeed.SiteTypeEmployer))
	}
	if c.Search.Radius < 0 {
		errs = append(errs, fmt.Errorf("invalid radius %d: must not be negative", c.Search.Radius))
	}
	if c.Search.DaysBack < 0 {
		errs = append(errs, fmt.Errorf("invalid days back %d: must not be negative", c.Search.DaysBack))
	}
	if c.Search.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("invalid timeout %ds: must not be negative", c.Search.TimeoutSeconds))
	}
	if err := (pagination.Params{PageSize: c.Search.PageSize}).Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Output.Width < 0 {
		errs = append(errs, fmt.Errorf("invalid width %d: must not be negative", c.Output.Width))
	}

	return errors.Join(errs...)
}

// Timeout returns the per-request timeout.
func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ToQuery converts the search settings into an API query. An empty publisher falls back
// to the default one.
func (s SearchConfig) ToQuery(userIP string) indeed.Query {
	q := indeed.NewQuery(s.Query, s.Location)
	if s.Publisher != "" {
		q.Publisher = s.Publisher
	}
	if s.Endpoint != "" {
		q.Endpoint = s.Endpoint
	}
	q.Radius = s.Radius
	q.SiteType = s.SiteType
	q.JobType = s.JobType
	q.FromAge = s.DaysBack
	q.Filter = !s.NoFilter
	q.LatLong = s.LatLong
	q.ExcludeAgencies = s.ExcludeAgencies
	q.Country = s.Country
	q.UserIP = userIP
	q.Timeout = s.Timeout()
	return q
}
