package indeed

import (
	"errors"
	"fmt"
)

// ErrMissingEndpoint is returned when a query has no endpoint URL.
var ErrMissingEndpoint = errors.New("indeed: no endpoint configured")

// APIError reports a non-200 response or an error message in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("indeed api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("indeed api returned status %d: %s", e.StatusCode, e.Message)
}
