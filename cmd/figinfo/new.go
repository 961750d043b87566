package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/figure"
	"github.com/spf13/cobra"
)

func newNewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <shape> <color> [params...]",
		Short: "Build a single figure",
		Long: "Builds one figure from positional arguments. A triangle takes three side lengths, " +
			"a circle a radius, a rectangle a width and a height. Flags must precede the shape.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := figureFromArgs(args)
			if err != nil {
				return err
			}
			return writeFigures(cmd.OutOrStdout(), flags.format, []figure.Figure{f})
		},
	}
	// Negative parameters such as -1 must reach the factory rather than be
	// read as shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// figureFromArgs parses "<shape> <color> [params...]" and builds the figure.
func figureFromArgs(args []string) (figure.Figure, error) {
	shape, err := figure.ParseShape(args[0])
	if err != nil {
		return nil, err
	}

	params := make([]float64, 0, len(args)-2)
	for i, arg := range args[2:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		params = append(params, v)
	}

	f, err := figure.CreateFigure(shape, figure.Color(args[1]), params...)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", shape, err)
	}
	return f, nil
}
