package core

import (
	"errors"
	"fmt"
)

// Error categories shared by the analysis packages. Every error returned by
// regression, spectrum and fir wraps exactly one of these, so callers can
// dispatch with errors.Is.
var (
	// ErrInvalidInput reports mismatched slice lengths or too few samples.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput reports a zero-length input where at least one sample is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrDegenerateInput reports input for which the computation has no
	// defined result, e.g. a regression over identical time stamps.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidParameter reports a design parameter outside its valid range.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ParamError describes which parameter constraint was violated.
type ParamError struct {
	Name       string
	Value      float64
	Constraint string
}

// NewParamError returns a *ParamError for parameter name with the given value
// and a human readable constraint such as "must be > 0".
func NewParamError(name string, value float64, constraint string) *ParamError {
	return &ParamError{Name: name, Value: value, Constraint: constraint}
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", ErrInvalidParameter, e.Name, e.Constraint, e.Value)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
