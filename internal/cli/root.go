// Package cli implements the indeedsearch command line.
package cli

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/davidbarts/indeedsearch/internal/config"
	"github.com/davidbarts/indeedsearch/internal/indeed"
	"github.com/davidbarts/indeedsearch/internal/pagination"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Options carries the dependencies of the root command so tests can replace them.
type Options struct {
	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// Client fetches result pages. Defaults to an HTTP client.
	Client pagination.QueryClient[indeed.Query]
	// UserIP returns the address reported to the API. Defaults to indeed.DiscoverUserIP.
	UserIP func(context.Context) string
	// TerminalWidth reports the width of the output terminal, or 0 when unknown.
	TerminalWidth func() int
}

func (o Options) withDefaults() Options {
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	if o.Client == nil {
		o.Client = indeed.NewClient(indeed.WithHTTPClient(http.DefaultClient))
	}
	if o.UserIP == nil {
		o.UserIP = indeed.DiscoverUserIP
	}
	if o.TerminalWidth == nil {
		o.TerminalWidth = stdoutWidth
	}
	return o
}

// searchFlags mirrors the command-line flags. Only flags the user actually set override
// the configuration.
type searchFlags struct {
	configPath      string
	publisher       string
	query           string
	location        string
	radius          int
	siteType        string
	jobType         string
	daysBack        int
	noFilter        bool
	latLong         bool
	excludeAgencies bool
	country         string
	sort            string
	width           int
	pageSize        int
	allowIncomplete bool
	debug           bool
}

// NewRootCmd creates the indeedsearch root command with production dependencies.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithOptions(ver, Options{})
}

// NewRootCmdWithOptions creates the root command with explicit dependencies for
// testability.
func NewRootCmdWithOptions(ver string, opts Options) *cobra.Command {
	opts = opts.withDefaults()
	var flags searchFlags

	cmd := &cobra.Command{
		Use:     "indeedsearch [flags] [filter-expression...]",
		Short:   "Search Indeed job listings and filter the results",
		Long:    rootCmdLong,
		Version: ver,
		Example: rootCmdExample,
		// Errors are printed by main with the program name prefix.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, &flags, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default $INDEEDSEARCH_CONFIG or ~/.indeedsearch/config.yaml)")
	f.StringVarP(&flags.publisher, "publisher", "p", "", "publisher id")
	f.StringVarP(&flags.query, "query", "q", "", "query for the Indeed search engine")
	f.StringVarP(&flags.location, "location", "l", "", "location of job")
	f.IntVarP(&flags.radius, "radius", "r", 0, "radius to search, in miles")
	f.StringVarP(&flags.siteType, "sitetype", "s", "", `site type ("jobsite" or "employer")`)
	f.StringVarP(&flags.jobType, "jobtype", "j", "", "job type")
	f.IntVarP(&flags.daysBack, "daysback", "d", indeed.DefaultFromAge, "number of days back to search")
	f.BoolVar(&flags.noFilter, "nofilter", false, "suppress the normal Indeed duplicate filtering")
	f.BoolVar(&flags.latLong, "latlong", false, "return latitude/longitude")
	f.BoolVar(&flags.excludeAgencies, "excludeagencies", false, "exclude recruitment agencies")
	f.StringVarP(&flags.country, "country", "c", "", "country of job")
	f.StringVar(&flags.sort, "sort", "", `sort order of printed rows, e.g. "Date:desc" (default newest first)`)
	f.IntVar(&flags.width, "width", 0, "report width (0 = terminal width, or 79)")
	f.IntVar(&flags.pageSize, "page-size", pagination.DefaultPageSize, "results requested per page")
	f.BoolVar(&flags.allowIncomplete, "allow-incomplete", false,
		"only warn when fewer results are retrieved than Indeed reported")
	f.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	return cmd
}

// applyFlags copies explicitly set flags onto cfg. Trailing arguments, when present,
// replace the configured filter; a single empty argument selects no filter.
func applyFlags(cmd *cobra.Command, flags *searchFlags, args []string, cfg *config.Config) {
	changed := cmd.Flags().Changed

	strs := []struct {
		name string
		src  string
		dst  *string
	}{
		{"publisher", flags.publisher, &cfg.Search.Publisher},
		{"query", flags.query, &cfg.Search.Query},
		{"location", flags.location, &cfg.Search.Location},
		{"sitetype", flags.siteType, &cfg.Search.SiteType},
		{"jobtype", flags.jobType, &cfg.Search.JobType},
		{"country", flags.country, &cfg.Search.Country},
		{"sort", flags.sort, &cfg.Output.Sort},
	}
	for _, s := range strs {
		if changed(s.name) {
			*s.dst = s.src
		}
	}

	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"radius", flags.radius, &cfg.Search.Radius},
		{"daysback", flags.daysBack, &cfg.Search.DaysBack},
		{"page-size", flags.pageSize, &cfg.Search.PageSize},
		{"width", flags.width, &cfg.Output.Width},
	}
	for _, i := range ints {
		if changed(i.name) {
			*i.dst = i.src
		}
	}

	bools := []struct {
		name string
		src  bool
		dst  *bool
	}{
		{"nofilter", flags.noFilter, &cfg.Search.NoFilter},
		{"latlong", flags.latLong, &cfg.Search.LatLong},
		{"excludeagencies", flags.excludeAgencies, &cfg.Search.ExcludeAgencies},
	}
	for _, b := range bools {
		if changed(b.name) {
			*b.dst = b.src
		}
	}

	if len(args) > 0 {
		cfg.Output.Filter = strings.Join(args, " ")
	}
}

const rootCmdLong = `indeedsearch queries the Indeed job search API, retrieves every page of
results and prints the rows matching an optional filter expression.

The filter expression uses column names (Title, Company, Location, Source, Date,
Snippet, URL, JobKey, Sponsored, Expired) with =, <>, <, <=, >, >=, LIKE, IN,
IS NULL, AND, OR and NOT. Text comparisons ignore case. Pass "" to print every row.`

const rootCmdExample = `  # Go jobs in Seattle posted in the last 3 days
  indeedsearch -q golang -l "Seattle, WA" -d 3

  # Only engineering titles, skipping sponsored listings
  indeedsearch -q golang -l Seattle "Title LIKE '%engineer%' AND Sponsored = false"

  # Oldest first, ignoring the filter from the config file
  indeedsearch -q golang -l Seattle --sort Date:asc ""`
