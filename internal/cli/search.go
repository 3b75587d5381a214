package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbarts/indeedsearch/internal/config"
	"github.com/davidbarts/indeedsearch/internal/filter"
	"github.com/davidbarts/indeedsearch/internal/indeed"
	"github.com/davidbarts/indeedsearch/internal/pagination"
	"github.com/davidbarts/indeedsearch/internal/render"
)

// runSearch resolves the configuration, retrieves every page, filters and prints the
// report, then reports any completeness discrepancy.
func runSearch(cmd *cobra.Command, args []string, flags *searchFlags, opts Options) error {
	cfg, err := loadConfig(flags.configPath, opts.LookupEnv)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	applyFlags(cmd, flags, args, cfg)

	logResult := setupLogging(cmd, cfg.Logging, flags.debug)
	defer func() { _ = logResult.Close() }()
	ctx := cmd.Context()

	if validateErr := cfg.Validate(); validateErr != nil {
		return &ExitError{Code: ExitUsage, Err: validateErr}
	}

	// Parse before any request so a bad expression costs no network traffic.
	expr, err := filter.Parse(indeed.Schema(), cfg.Output.Filter, cfg.Output.Sort)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	query := cfg.Search.ToQuery(opts.UserIP(ctx))
	logger.Debug().Ctx(ctx).
		Str("operation", "search").
		Str("query", query.Query).
		Str("location", query.Location).
		Int("page_size", cfg.Search.PageSize).
		Str("filter", expr.Source()).
		Msg("starting search")

	tab, err := pagination.New(opts.Client, indeed.Schema()).FetchAll(ctx, query, cfg.Search.PageSize)
	var incomplete *pagination.CompletenessError
	if err != nil && !errors.As(err, &incomplete) {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	rows, err := ApplyFilter(ctx, tab, expr)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	renderer := render.Renderer{
		Width:      reportWidth(cfg.Output.Width, opts.TerminalWidth),
		WrapColumn: cfg.Output.WrapColumn,
	}
	if renderErr := renderer.Render(cmd.OutOrStdout(), tab, rows); renderErr != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("writing report: %w", renderErr)}
	}

	if incomplete == nil {
		return nil
	}

	msg := incompleteMessage(incomplete)
	if flags.allowIncomplete {
		logger.Warn().Ctx(ctx).
			Int("reported", incomplete.Reported).
			Int("retrieved", incomplete.Retrieved).
			Msg("incomplete results allowed")
		cmd.PrintErrln(cmd.Root().Name() + ": " + msg)
		return nil
	}
	return &ExitError{Code: ExitFailure, Err: incomplete, Message: msg}
}

// loadConfig reads the config file named by --config or $INDEEDSEARCH_CONFIG, which
// must exist, or the default one, which may be absent.
func loadConfig(path string, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	path, required := config.ResolvePath(path, lookupEnv)
	return config.Load(path, required, lookupEnv)
}
