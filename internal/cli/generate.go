package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/internal/config"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/io"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	count  int
	seed   uint64
	width  float64
	height float64
	output string
}

// generateCommand creates the generate command, which writes a random layout
// to a layout file.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random layout to a JSON or YAML file",
		Long: `Write a random layout to a JSON or YAML file, chosen by the output extension.

Items are placed in the upper-left part of the canvas with random sizes,
shapes and colors. The same seed always produces the same layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyCanvasDefaults(cmd, &opts)
			if err := errors.ValidateCount(opts.count, config.MaxCount); err != nil {
				return err
			}
			if err := errors.ValidateSize("width", opts.width); err != nil {
				return err
			}
			if err := errors.ValidateSize("height", opts.height); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", furniture.DefaultCount, "number of furniture items")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "layout.json", "output file")

	return cmd
}

// applyCanvasDefaults fills unset flags from the [canvas] config section.
func (c *CLI) applyCanvasDefaults(cmd *cobra.Command, opts *generateOpts) {
	canvas := c.cfg.Canvas
	if !cmd.Flags().Changed("count") {
		opts.count = canvas.Count
	}
	if !cmd.Flags().Changed("seed") {
		opts.seed = canvas.Seed
	}
	if !cmd.Flags().Changed("width") {
		opts.width = canvas.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.height = canvas.Height
	}
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	bounds := furniture.Bounds{Width: opts.width, Height: opts.height}
	l := c.newLayout(opts.count, bounds, opts.seed)

	if err := io.Export(l, opts.output); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d items", l.Len()))

	printSuccess("Layout generated, score %s", StyleNumber.Render(fmt.Sprintf("%.0f", l.Score())))
	printFile(opts.output)
	printNextStep("Score it pair by pair", "fengshui score --explain "+opts.output)
	return nil
}
