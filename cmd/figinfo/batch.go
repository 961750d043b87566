package main

import (
	"fmt"
	"os"

	"github.com/gogpu/figure"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/cobra"
)

func newBatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.hcl>",
		Short: "Build every figure declared in an HCL file",
		Long: `Reads figure blocks from an HCL file and prints one description per figure, in file order:

  figure "circle" {
    color  = "red"
    params = [5]
  }

The first invalid block aborts the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			figs, err := loadBatch(args[0])
			if err != nil {
				return err
			}
			return writeFigures(cmd.OutOrStdout(), flags.format, figs)
		},
	}
}

// batchSchema describes the top level of a batch file: any number of
// figure blocks labeled with their shape.
var batchSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "figure", LabelNames: []string{"shape"}},
	},
}

// hclFigure is the body of a figure block.
type hclFigure struct {
	Color  string    `hcl:"color,optional"`
	Params []float64 `hcl:"params"`
}

// loadBatch reads and decodes a batch file from disk.
func loadBatch(filename string) ([]figure.Figure, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return decodeBatch(src, filename)
}

// decodeBatch parses src as HCL and builds a figure per block.
func decodeBatch(src []byte, filename string) ([]figure.Figure, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(batchSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	figs := make([]figure.Figure, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		var body hclFigure
		if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
			return nil, fmt.Errorf("figure block at %s: %w", block.DefRange, diags)
		}

		shape, err := figure.ParseShape(block.Labels[0])
		if err != nil {
			return nil, fmt.Errorf("figure block at %s: %w", block.DefRange, err)
		}

		f, err := figure.CreateFigure(shape, figure.Color(body.Color), body.Params...)
		if err != nil {
			return nil, fmt.Errorf("figure block at %s: %w", block.DefRange, err)
		}
		figs = append(figs, f)
	}

	return figs, nil
}
