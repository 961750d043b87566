// Command figinfo builds geometric figures and prints their descriptions.
//
// Usage:
//
//	figinfo new circle red 5            # A red circle - 78.53
//	figinfo --format json batch shapes.hcl
//	figinfo shapes
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/figure"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "figinfo",
		Short:         "Build geometric figures and describe them",
		Long:          "figinfo validates triangles, circles and rectangles, computes their areas and prints a one-line description of each.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(flags.format); err != nil {
				return err
			}
			if flags.verbose {
				figure.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
		// No Run — prints help by default.
	}

	cmd.PersistentFlags().StringVar(&flags.format, "format", "text", "output format: text|json")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log factory events to stderr")

	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	cmd.AddCommand(newShapesCmd(flags))

	return cmd
}
