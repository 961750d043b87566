package figure

import "fmt"

// CreateFigure builds the variant selected by shape from params.
// The parameter count must match shape.Arity() exactly: three sides for a
// triangle, a radius for a circle, width and height for a rectangle.
//
// Errors wrap ErrUnknownShape, ErrArityMismatch, or whatever the variant
// constructor returned (ErrInvalidValue, ErrInvalidGeometry).
func CreateFigure(shape Shape, color Color, params ...float64) (Figure, error) {
	f, err := createFigure(shape, color, params)
	if err != nil {
		Logger().Debug("figure rejected", "shape", shape, "params", len(params), "err", err)
		return nil, err
	}
	Logger().Debug("figure created", "shape", shape, "color", color)
	return f, nil
}

func createFigure(shape Shape, color Color, params []float64) (Figure, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(shape))
	}
	if want := shape.Arity(); len(params) != want {
		return nil, &ArityError{Shape: shape, Want: want, Got: len(params)}
	}

	// The constructors return typed zero values on failure; keep those out
	// of the interface so a failed build is always a nil Figure.
	switch shape {
	case ShapeTriangle:
		t, err := NewTriangle(color, params[0], params[1], params[2])
		if err != nil {
			return nil, err
		}
		return t, nil
	case ShapeCircle:
		c, err := NewCircle(color, params[0])
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		r, err := NewRectangle(color, params[0], params[1])
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
