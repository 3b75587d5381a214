package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbarts/indeedsearch/internal/config"
	"github.com/davidbarts/indeedsearch/internal/logging"
)

// setupLogging configures logging from the resolved config and the --debug flag, and
// stores a logger carrying a trace ID on the command context.
func setupLogging(cmd *cobra.Command, loggingCfg config.LoggingConfig, debug bool) logging.LogPathResult {
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if err := loggingCfg.EnsureLogDir(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := logging.WithTraceID(cmd.Context(), logger)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}
