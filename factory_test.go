package figure

import (
	"errors"
	"testing"
)

func TestCreateFigure(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		color  Color
		params []float64
		area   float64
	}{
		{"triangle", ShapeTriangle, Blue, []float64{3, 4, 5}, 6},
		{"circle", ShapeCircle, Red, []float64{5}, 78.53},
		{"rectangle", ShapeRectangle, Green, []float64{3, 4}, 12},
		{"free-form color", ShapeCircle, "burnt sienna", []float64{1}, 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CreateFigure(tt.shape, tt.color, tt.params...)
			if err != nil {
				t.Fatalf("CreateFigure() = %v", err)
			}
			if f.Shape() != tt.shape {
				t.Errorf("Shape() = %v, want %v", f.Shape(), tt.shape)
			}
			if f.Color() != tt.color {
				t.Errorf("Color() = %v, want %v", f.Color(), tt.color)
			}
			if got := f.Area(); got != tt.area {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
		})
	}
}

func TestCreateFigureCircle(t *testing.T) {
	f, err := CreateFigure(ShapeCircle, Red, 5)
	if err != nil {
		t.Fatalf("CreateFigure() = %v", err)
	}
	c, ok := f.(Circle)
	if !ok {
		t.Fatalf("CreateFigure returned %T, want Circle", f)
	}
	if c.Radius() != 5 {
		t.Errorf("Radius() = %v, want 5", c.Radius())
	}
	if got, want := Info(f), "A red circle - 78.53"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestCreateFigureErrors(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		params []float64
		want   error
	}{
		{"triangle arity", ShapeTriangle, []float64{1, 1}, ErrArityMismatch},
		{"circle arity", ShapeCircle, nil, ErrArityMismatch},
		{"rectangle arity", ShapeRectangle, []float64{1, 2, 3}, ErrArityMismatch},
		{"unknown shape", "hexagon", []float64{1}, ErrUnknownShape},
		{"unknown before arity", "hexagon", nil, ErrUnknownShape},
		{"case sensitive tag", "Circle", []float64{1}, ErrUnknownShape},
		{"invalid value", ShapeCircle, []float64{0}, ErrInvalidValue},
		{"invalid width", ShapeRectangle, []float64{-1, 2}, ErrInvalidValue},
		{"invalid geometry", ShapeTriangle, []float64{1, 1, 5}, ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CreateFigure(tt.shape, Green, tt.params...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CreateFigure(%q, %v) = %v, want %v", tt.shape, tt.params, err, tt.want)
			}
			if f != nil {
				t.Errorf("CreateFigure returned %#v alongside an error", f)
			}
		})
	}
}

func TestCreateFigureArityError(t *testing.T) {
	_, err := CreateFigure(ShapeTriangle, Blue, 1, 1)

	var ae *ArityError
	if !errors.As(err, &ae) {
		t.Fatalf("error %v is not *ArityError", err)
	}
	if ae.Shape != ShapeTriangle || ae.Want != 3 || ae.Got != 2 {
		t.Errorf("ArityError = %+v, want {triangle 3 2}", *ae)
	}
	if got, want := err.Error(), "figure: wrong number of parameters: triangle requires 3, got 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCreateFigurePropagatesConstructorError(t *testing.T) {
	_, want := NewTriangle(Red, 1, 1, 5)
	_, got := CreateFigure(ShapeTriangle, Red, 1, 1, 5)
	if got == nil || got.Error() != want.Error() {
		t.Errorf("CreateFigure error = %v, want %v", got, want)
	}
}

func BenchmarkCreateFigure(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CreateFigure(ShapeRectangle, Red, 3, 4)
	}
}
