package cli

import (
	"fmt"

	"github.com/davidbarts/indeedsearch/internal/pagination"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit code for an error returned by the root command.
type ExitError struct {
	Code int
	Err  error
	// Message, when set, replaces Err's text in Error.
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// incompleteMessage words a completeness discrepancy the way it is shown to users.
func incompleteMessage(ce *pagination.CompletenessError) string {
	return fmt.Sprintf("Indeed said %d, but %d retrieved!", ce.Reported, ce.Retrieved)
}
