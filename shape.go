package figure

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Shape is the tag selecting a figure variant.
type Shape string

const (
	// ShapeTriangle selects a Triangle built from three side lengths.
	ShapeTriangle Shape = "triangle"

	// ShapeCircle selects a Circle built from a radius.
	ShapeCircle Shape = "circle"

	// ShapeRectangle selects a Rectangle built from a width and a height.
	ShapeRectangle Shape = "rectangle"
)

// Shapes returns the known shape tags in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeTriangle, ShapeCircle, ShapeRectangle}
}

func (s Shape) String() string { return string(s) }

// Arity returns the number of numeric parameters the shape's constructor
// takes, or 0 for an unknown tag.
func (s Shape) Arity() int {
	switch s {
	case ShapeTriangle:
		return 3
	case ShapeCircle:
		return 1
	case ShapeRectangle:
		return 2
	default:
		return 0
	}
}

// Valid reports whether s is one of the known shape tags.
func (s Shape) Valid() bool { return s.Arity() > 0 }

// ParseShape maps free-form text to a Shape. Surrounding space is ignored
// and the comparison is case-insensitive, so "Circle" and " CIRCLE " both
// yield ShapeCircle.
func ParseShape(text string) (Shape, error) {
	s := Shape(cases.Fold().String(strings.TrimSpace(text)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, text)
	}
	return s, nil
}
