// Package figure builds validated geometric figures and computes their area.
//
// # Overview
//
// Three variants are supported: [Triangle], [Circle] and [Rectangle]. Each
// is an immutable value that validates its parameters on construction, so a
// figure that exists is always geometrically sound.
//
// # Quick Start
//
//	import "github.com/gogpu/figure"
//
//	f, err := figure.CreateFigure(figure.ShapeCircle, figure.Red, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(figure.Info(f)) // A red circle - 78.53
//
// # Areas
//
// Areas are truncated (floored), not rounded, to two decimal places:
// a circle of radius 5 has area 78.53 even though π·25 ≈ 78.5398.
//
// # Errors
//
// Construction errors wrap one of [ErrInvalidValue], [ErrInvalidGeometry],
// [ErrArityMismatch] or [ErrUnknownShape]; use errors.Is to classify them.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to see debug events
// from [CreateFigure].
package figure

// Version is the current version of the library.
const Version = "0.1.0"
