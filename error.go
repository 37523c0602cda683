package sez2ecef

import (
	"fmt"
)

// ErrUsage is returned when the converter is invoked with the wrong number of arguments.
var ErrUsage = &ConvError{"wrong number of arguments"}

// ConvError defines a custom error type for conversion related errors.
type ConvError struct {
	msg string
}

func (e *ConvError) Error() string {
	return e.msg
}

// ParseError is returned when a positional argument is not a valid floating-point number.
type ParseError struct {
	Name  string // Name of the argument (e.g. "o_lat_deg")
	Value string // Raw value as received
	Err   error  // Underlying strconv error
}

// Error returns the error message for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

// Unwrap returns the underlying parsing error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
