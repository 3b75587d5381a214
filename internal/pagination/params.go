package pagination

import (
	"errors"
	"fmt"
)

// Page size limits. The Indeed API silently caps a page at 25 results.
const (
	DefaultPageSize = 25
	MinPageSize     = 1
	MaxPageSize     = 25
)

// Validation errors.
var (
	ErrInvalidPageSize = errors.New("page-size must be at least 1")
	ErrPageSizeTooBig  = fmt.Errorf("page-size must not exceed %d", MaxPageSize)
)

// Params holds the pagination settings for one search.
type Params struct {
	// PageSize is the number of results requested per page.
	PageSize int
}

// NewParams returns Params with default values.
func NewParams() Params {
	return Params{PageSize: DefaultPageSize}
}

// Validate checks the page size bounds of a configured search.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrPageSizeTooBig, p.PageSize)
	}
	return nil
}

// CalculateTotalPages returns how many page requests a consistent total needs.
func (p Params) CalculateTotalPages(totalResults int) int {
	if totalResults <= 0 || p.PageSize <= 0 {
		return 0
	}
	pages := totalResults / p.PageSize
	if totalResults%p.PageSize > 0 {
		pages++
	}
	return pages
}
