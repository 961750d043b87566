package figure

import "math"

// Circle is a figure defined by its radius.
type Circle struct {
	color  Color
	radius float64
}

// NewCircle returns a circle. The radius must be positive.
func NewCircle(color Color, radius float64) (Circle, error) {
	if err := validatePositive(radius); err != nil {
		return Circle{}, err
	}
	return Circle{color: color, radius: radius}, nil
}

func (c Circle) Shape() Shape    { return ShapeCircle }
func (c Circle) Color() Color    { return c.color }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Area() float64   { return truncate2(math.Pi * c.radius * c.radius) }
func (c Circle) String() string  { return Info(c) }
