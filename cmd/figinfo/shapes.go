package main

import (
	"github.com/gogpu/figure"
	"github.com/spf13/cobra"
)

func newShapesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the supported shapes and their parameter counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeShapes(cmd.OutOrStdout(), flags.format, figure.Shapes())
		},
	}
}
