package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for document validation failures.
var (
	ErrNoCompanyName = errors.New("catalog: company name is required")
	ErrNoYear        = errors.New("catalog: catalog year is required")
	ErrNegativePrice = errors.New("catalog: product price must be non-negative")
	ErrNoHeadingFont = errors.New("catalog: heading font family is required")
	ErrNoBodyFont    = errors.New("catalog: body font family is required")
)

// ValidationError wraps a sentinel with the entity it was found on.
type ValidationError struct {
	Field string // e.g. "categories[2].products[0]"
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
