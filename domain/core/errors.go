package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrRowNotFound    = fmt.Errorf("%w: row", ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
	ErrSheetNotFound  = fmt.Errorf("%w: sheet", ErrNotFound)
	ErrBandNotFound   = fmt.Errorf("%w: band row", ErrNotFound)

	// Cell errors
	ErrEmptyTable     = errors.New("table has no data rows")
	ErrMissingCell    = errors.New("cell is missing")
	ErrNonNumericCell = errors.New("cell is not numeric")
)

// NewRowNotFoundError reports a row-label pattern that matched nothing.
func NewRowNotFoundError(pattern string) error {
	return fmt.Errorf("%w: no row label contains %q", ErrRowNotFound, pattern)
}

// NewColumnNotFoundError reports a column-header pattern that matched nothing.
func NewColumnNotFoundError(pattern string) error {
	return fmt.Errorf("%w: no header matches %q", ErrColumnNotFound, pattern)
}

// NewBandNotFoundError reports a band whose row could not be located.
// Per-band extractions carry no default, so callers treat this as fatal.
func NewBandNotFoundError(band string) error {
	return fmt.Errorf("%w: no row for band %q", ErrBandNotFound, band)
}

// IsNotFoundError reports whether err belongs to the not-found family.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
