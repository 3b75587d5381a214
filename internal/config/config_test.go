package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbarts/indeedsearch/internal/config"
	"github.com/davidbarts/indeedsearch/internal/indeed"
	"github.com/davidbarts/indeedsearch/internal/logging"
	"github.com/davidbarts/indeedsearch/internal/pagination"
)

// writeConfig is a test helper that writes YAML content to a temp file and returns its
// path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func env(vars map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	assert.Equal(t, indeed.DefaultPublisher, cfg.Search.Publisher)
	assert.Equal(t, 1, cfg.Search.DaysBack)
	assert.Equal(t, 25, cfg.Search.PageSize)
	assert.Equal(t, 30, cfg.Search.TimeoutSeconds)
	assert.Equal(t, 79, cfg.Output.Width)
	assert.Equal(t, "Snippet", cfg.Output.WrapColumn)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Output.Filter)
}

func TestShallowMergeYAML_SectionOverride(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Output.Filter = "Title LIKE '%go%'"
	cfg.Logging.Level = "debug"

	path := writeConfig(t, `
search:
  query: golang
  location: Seattle, WA
  radius: 25
  site_type: employer
  no_filter: true
`)
	require.NoError(t, config.ShallowMergeYAML(cfg, path))

	assert.Equal(t, "golang", cfg.Search.Query)
	assert.Equal(t, "Seattle, WA", cfg.Search.Location)
	assert.Equal(t, 25, cfg.Search.Radius)
	assert.Equal(t, "employer", cfg.Search.SiteType)
	assert.True(t, cfg.Search.NoFilter)

	// Keys left out of a present section take their defaults.
	assert.Equal(t, indeed.DefaultPublisher, cfg.Search.Publisher)
	assert.Equal(t, pagination.DefaultPageSize, cfg.Search.PageSize)

	// Absent sections are untouched.
	assert.Equal(t, "Title LIKE '%go%'", cfg.Output.Filter)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestShallowMergeYAML_SectionReplacesEarlierValues(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Output.Sort = "Title"

	path := writeConfig(t, `
output:
  filter: "Company = 'Acme'"
`)
	require.NoError(t, config.ShallowMergeYAML(cfg, path))

	assert.Equal(t, "Company = 'Acme'", cfg.Output.Filter)
	assert.Empty(t, cfg.Output.Sort)
	assert.Equal(t, 79, cfg.Output.Width)
}

func TestShallowMergeYAML_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty file", content: ""},
		{name: "comments only", content: "# nothing here\n"},
		{name: "unknown keys ignored", content: "plugins:\n  foo: bar\n"},
		{name: "malformed yaml", content: "search: [\n", wantErr: "parsing config YAML"},
		{name: "wrong section type", content: "search:\n  radius: far\n", wantErr: `applying config section "search"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.New()
			err := config.ShallowMergeYAML(cfg, writeConfig(t, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, config.New(), cfg)
		})
	}
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	t.Parallel()

	assert.Error(t, config.ShallowMergeYAML(nil, "ignored.yaml"))
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	err := cfg.ApplyEnv(env(map[string]string{
		"INDEEDSEARCH_QUERY":            "rust",
		"INDEEDSEARCH_LOCATION":         "Portland, OR",
		"INDEEDSEARCH_RADIUS":           " 50 ",
		"INDEEDSEARCH_DAYSBACK":         "7",
		"INDEEDSEARCH_NOFILTER":         "Yes",
		"INDEEDSEARCH_LATLONG":          "false",
		"INDEEDSEARCH_EXCLUDEAGENCIES":  "  true",
		"INDEEDSEARCH_FILTEREXPRESSION": "Sponsored = false",
		"INDEEDSEARCH_LOG_LEVEL":        "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "rust", cfg.Search.Query)
	assert.Equal(t, "Portland, OR", cfg.Search.Location)
	assert.Equal(t, 50, cfg.Search.Radius)
	assert.Equal(t, 7, cfg.Search.DaysBack)
	assert.True(t, cfg.Search.NoFilter)
	assert.False(t, cfg.Search.LatLong)
	assert.True(t, cfg.Search.ExcludeAgencies)
	assert.Equal(t, "Sponsored = false", cfg.Output.Filter)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnv_InvalidInteger(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	err := cfg.ApplyEnv(env(map[string]string{"INDEEDSEARCH_RADIUS": "ten"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INDEEDSEARCH_RADIUS")
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"t", true},
		{"True", true},
		{"yes", true},
		{" Y", true},
		{"1", false},
		{"no", false},
		{"false", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, config.ParseBool(tt.raw), "%q", tt.raw)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file then environment", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "search:\n  query: golang\n  location: Seattle\n")
		cfg, err := config.Load(path, true, env(map[string]string{"INDEEDSEARCH_QUERY": "python"}))
		require.NoError(t, err)
		assert.Equal(t, "python", cfg.Search.Query)
		assert.Equal(t, "Seattle", cfg.Search.Location)
	})

	t.Run("missing optional file", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), false, env(nil))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		t.Parallel()
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), true, env(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestDefaultPath_UsesInjectedLookup(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INDEEDSEARCH_CONFIG", "/from/process/config.yaml")

	got, err := config.DefaultPath(env(nil))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".indeedsearch", "config.yaml"), got,
		"the process environment must not leak past the injected lookup")

	got, err = config.DefaultPath(env(map[string]string{"INDEEDSEARCH_CONFIG": "/from/lookup.yaml"}))
	require.NoError(t, err)
	assert.Equal(t, "/from/lookup.yaml", got)

	got, err = config.DefaultPath(nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/process/config.yaml", got)
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INDEEDSEARCH_CONFIG", "/from/process/config.yaml")

	tests := []struct {
		name         string
		explicit     string
		vars         map[string]string
		wantPath     string
		wantRequired bool
	}{
		{
			name:         "explicit path wins",
			explicit:     "/explicit.yaml",
			vars:         map[string]string{"INDEEDSEARCH_CONFIG": "/from/lookup.yaml"},
			wantPath:     "/explicit.yaml",
			wantRequired: true,
		},
		{
			name:         "environment path must exist",
			vars:         map[string]string{"INDEEDSEARCH_CONFIG": "/from/lookup.yaml"},
			wantPath:     "/from/lookup.yaml",
			wantRequired: true,
		},
		{
			name:         "empty environment value falls back to default",
			vars:         map[string]string{"INDEEDSEARCH_CONFIG": ""},
			wantPath:     filepath.Join(home, ".indeedsearch", "config.yaml"),
			wantRequired: false,
		},
		{
			name:         "default file is optional",
			wantPath:     filepath.Join(home, ".indeedsearch", "config.yaml"),
			wantRequired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, required := config.ResolvePath(tt.explicit, env(tt.vars))
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantRequired, required)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *config.Config {
		cfg := config.New()
		cfg.Search.Query = "golang"
		cfg.Search.Location = "Seattle, WA"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantIs  []error
		wantMsg string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:   "no query",
			mutate: func(c *config.Config) { c.Search.Query = "" },
			wantIs: []error{config.ErrNoQuery},
		},
		{
			name: "no query and no location",
			mutate: func(c *config.Config) {
				c.Search.Query = ""
				c.Search.Location = ""
			},
			wantIs: []error{config.ErrNoQuery, config.ErrNoLocation},
		},
		{
			name:    "bad site type",
			mutate:  func(c *config.Config) { c.Search.SiteType = "agency" },
			wantMsg: `invalid site type "agency"`,
		},
		{
			name:   "page size too big",
			mutate: func(c *config.Config) { c.Search.PageSize = 100 },
			wantIs: []error{pagination.ErrPageSizeTooBig},
		},
		{
			name:    "negative width",
			mutate:  func(c *config.Config) { c.Output.Width = -1 },
			wantMsg: "invalid width -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantIs) == 0 && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSearchConfig_ToQuery(t *testing.T) {
	t.Parallel()

	s := config.New().Search
	s.Query = "golang"
	s.Location = "Seattle, WA"
	s.NoFilter = true
	s.Radius = 10
	s.Publisher = ""
	s.TimeoutSeconds = 5

	q := s.ToQuery("192.0.2.1")
	assert.Equal(t, indeed.DefaultPublisher, q.Publisher)
	assert.Equal(t, indeed.DefaultEndpoint, q.Endpoint)
	assert.Equal(t, "date", q.Sort)
	assert.False(t, q.Filter)
	assert.Equal(t, 10, q.Radius)
	assert.Equal(t, 1, q.FromAge)
	assert.Equal(t, "192.0.2.1", q.UserIP)
	assert.Equal(t, 5*time.Second, q.Timeout)
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logging.Config{Level: "warn", Format: "console", Output: logging.OutputStderr},
		config.New().Logging.ToLoggingConfig())

	lc := config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/indeedsearch.log"}
	assert.Equal(t, logging.Config{
		Level:  "debug",
		Format: "json",
		Output: logging.OutputFile,
		File:   "/tmp/indeedsearch.log",
	}, lc.ToLoggingConfig())
}

func TestLoggingConfig_EnsureLogDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs", "nested")
	lc := config.LoggingConfig{File: filepath.Join(dir, "run.log")}
	require.NoError(t, lc.EnsureLogDir())
	assert.DirExists(t, dir)

	assert.NoError(t, config.LoggingConfig{}.EnsureLogDir())
}
