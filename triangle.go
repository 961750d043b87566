package figure

import (
	"fmt"
	"math"
)

// Triangle is a figure defined by three side lengths.
type Triangle struct {
	color   Color
	a, b, c float64
}

// NewTriangle returns a triangle with sides a, b and c.
// Every side must be positive and each pair of sides must be strictly
// longer than the third; otherwise ErrInvalidValue or ErrInvalidGeometry
// is returned.
func NewTriangle(color Color, a, b, c float64) (Triangle, error) {
	if err := validatePositive(a, b, c); err != nil {
		return Triangle{}, err
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return Triangle{}, fmt.Errorf("%w: sides %v, %v, %v", ErrInvalidGeometry, a, b, c)
	}
	return Triangle{color: color, a: a, b: b, c: c}, nil
}

func (t Triangle) Shape() Shape { return ShapeTriangle }
func (t Triangle) Color() Color { return t.color }

// Sides returns the three side lengths in construction order.
func (t Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

// Area returns the area by Heron's formula, truncated to two decimals.
func (t Triangle) Area() float64 {
	s := (t.a + t.b + t.c) / 2
	return truncate2(math.Sqrt(s * (s - t.a) * (s - t.b) * (s - t.c)))
}

func (t Triangle) String() string { return Info(t) }
