// Package logging builds the zerolog loggers used across indeedsearch and carries them,
// together with a per-run trace ID, on the context.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputFile    = "file"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger that writes to stderr or stdout.
func NewLogger(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Output == OutputStdout {
		out = os.Stdout
	}
	return newLogger(cfg, out)
}

// NewLoggerWithPath builds a logger honouring Output == "file". If the file cannot be
// opened the logger falls back to stderr and the reason is reported in the result.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg)}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return LogPathResult{
			Logger:         newLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	return LogPathResult{
		Logger:    newLogger(cfg, f),
		FilePath:  cfg.File,
		UsingFile: true,
		file:      f,
	}
}

// NewTestLogger returns a logger writing JSON lines to w at debug level.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// ParseLevel parses a level name, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: cfg.Output == OutputFile}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
