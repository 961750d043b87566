package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/figure"
)

// figureJSON is the JSON form of a figure.
type figureJSON struct {
	Shape string  `json:"shape"`
	Color string  `json:"color"`
	Area  float64 `json:"area"`
	Info  string  `json:"info"`
}

// shapeJSON is the JSON form of a supported shape.
type shapeJSON struct {
	Shape string `json:"shape"`
	Arity int    `json:"arity"`
}

// writeFigures prints one description line per figure, or a JSON array.
func writeFigures(w io.Writer, format string, figs []figure.Figure) error {
	if format == "json" {
		out := make([]figureJSON, 0, len(figs))
		for _, f := range figs {
			out = append(out, figureJSON{
				Shape: f.Shape().String(),
				Color: string(f.Color()),
				Area:  f.Area(),
				Info:  figure.Info(f),
			})
		}
		return writeJSON(w, out)
	}

	for _, f := range figs {
		if _, err := fmt.Fprintln(w, figure.Info(f)); err != nil {
			return err
		}
	}
	return nil
}

// writeShapes prints shapes as aligned columns, or a JSON array.
func writeShapes(w io.Writer, format string, shapes []figure.Shape) error {
	if format == "json" {
		out := make([]shapeJSON, 0, len(shapes))
		for _, s := range shapes {
			out = append(out, shapeJSON{Shape: s.String(), Arity: s.Arity()})
		}
		return writeJSON(w, out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tPARAMS")
	for _, s := range shapes {
		fmt.Fprintf(tw, "%s\t%d\n", s, s.Arity())
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"text", "json"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
