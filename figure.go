package figure

import "math"

// Figure is a constructed shape with a color label and an area.
// Implementations are immutable value types and safe for concurrent use.
type Figure interface {
	Shape() Shape
	Color() Color

	// Area returns the figure's area truncated to two decimal places.
	Area() float64
}

// Compile-time interface checks.
var (
	_ Figure = Triangle{}
	_ Figure = Circle{}
	_ Figure = Rectangle{}
)

// validatePositive rejects the first value that is not a positive finite
// number. NaN is checked explicitly since it fails every comparison.
func validatePositive(values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return &InvalidValueError{Index: i, Value: v}
		}
	}
	return nil
}

// truncate2 drops everything past the second decimal digit.
// It floors rather than rounds: 2.005 becomes 2, not 2.01.
func truncate2(v float64) float64 {
	return math.Floor(v*100) / 100
}
