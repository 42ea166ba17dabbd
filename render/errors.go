package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for render-time configuration failures. These are
// deterministic for a given document, so nothing in this package
// retries them.
var (
	ErrUnsetColor   = errors.New("render: drawing with an unset theme color")
	ErrUnknownFont  = errors.New("render: font family is neither a core font nor registered")
	ErrNoStationery = errors.New("render: stationery PDF not found")
)

// OpError wraps an underlying error with the render operation it
// occurred in.
type OpError struct {
	Op  string // e.g. "cover", "grid[2]", "output"
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("render.%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}
