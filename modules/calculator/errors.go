package calculator

import "errors"

var (
	// ErrMalformedPath is returned when a path does not contain a
	// recognizable operation/value1/value2 suffix or an operand does not
	// parse as a decimal number.
	ErrMalformedPath = errors.New("path does not match operation/value1/value2")

	// ErrDivisionByZero is returned for a structurally valid divide request
	// whose divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned when an operation token is not one of
	// the four supported actions.
	ErrUnknownOperation = errors.New("unknown operation")
)
