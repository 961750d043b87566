package figure

import (
	"errors"
	"fmt"
)

// Sentinel errors for the figure package. Match them with errors.Is.
var (
	// ErrInvalidValue is returned when a constructor parameter is not a
	// positive finite number.
	ErrInvalidValue = errors.New("figure: values must be greater than 0")

	// ErrInvalidGeometry is returned when triangle sides violate the strict
	// triangle inequality.
	ErrInvalidGeometry = errors.New("figure: degenerate or impossible triangle")

	// ErrArityMismatch is returned by CreateFigure when the parameter count
	// does not match the requested shape.
	ErrArityMismatch = errors.New("figure: wrong number of parameters")

	// ErrUnknownShape is returned for a shape tag outside the known variants.
	ErrUnknownShape = errors.New("figure: unknown shape")
)

// InvalidValueError reports the first rejected constructor parameter.
type InvalidValueError struct {
	Index int
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: parameter %d is %v", ErrInvalidValue, e.Index, e.Value)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// ArityError is returned when CreateFigure receives the wrong number of
// parameters for a shape.
type ArityError struct {
	Shape Shape
	Want  int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s requires %d, got %d", ErrArityMismatch, e.Shape, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }
