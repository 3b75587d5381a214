package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// EnvPrefix is prepended to every environment variable name read by ApplyEnv.
const EnvPrefix = "INDEEDSEARCH_"

// LookupFunc looks up an environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with any INDEEDSEARCH_* variables that are set. Integer variables
// that do not parse are reported as errors; boolean variables use ParseBool.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"PUBLISHER", &c.Search.Publisher},
		{"QUERY", &c.Search.Query},
		{"LOCATION", &c.Search.Location},
		{"SITETYPE", &c.Search.SiteType},
		{"JOBTYPE", &c.Search.JobType},
		{"COUNTRY", &c.Search.Country},
		{"ENDPOINT", &c.Search.Endpoint},
		{"FILTEREXPRESSION", &c.Output.Filter},
		{"SORT", &c.Output.Sort},
		{"LOG_LEVEL", &c.Logging.Level},
		{"LOG_FORMAT", &c.Logging.Format},
		{"LOG_FILE", &c.Logging.File},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.name); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"RADIUS", &c.Search.Radius},
		{"DAYSBACK", &c.Search.DaysBack},
		{"PAGESIZE", &c.Search.PageSize},
		{"TIMEOUT", &c.Search.TimeoutSeconds},
		{"WIDTH", &c.Output.Width},
	}
	for _, i := range ints {
		v, ok := lookup(EnvPrefix + i.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing %s%s=%q: %w", EnvPrefix, i.name, v, err)
		}
		*i.dst = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"NOFILTER", &c.Search.NoFilter},
		{"LATLONG", &c.Search.LatLong},
		{"EXCLUDEAGENCIES", &c.Search.ExcludeAgencies},
	}
	for _, b := range bools {
		if v, ok := lookup(EnvPrefix + b.name); ok {
			*b.dst = ParseBool(v)
		}
	}

	return nil
}

// ParseBool is true when the trimmed value starts with t or y in either case. An empty
// value is false.
func ParseBool(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	first := unicode.ToLower([]rune(raw)[0])
	return first == 't' || first == 'y'
}
