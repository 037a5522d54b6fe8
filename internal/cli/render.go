package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/pkg/io"
	"github.com/matzehuels/fengshui/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	noMeter  bool   // omit the score panel
	noLabels bool   // omit shape labels on tiles
	watch    bool   // re-render whenever the input changes
}

// renderCommand creates the render command, which draws a layout file as SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <layout-file>",
		Short: "Draw a layout file as SVG",
		Long: `Draw a layout file as SVG.

Each item becomes a colored tile (an ellipse for circles) and the Feng Shui
meter is drawn in a panel to the right of the canvas. Use "-o -" to write to
standard output.

With --watch the file is re-rendered every time it is saved, until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg extension)")
	cmd.Flags().BoolVar(&opts.noMeter, "no-meter", false, "omit the Feng Shui meter")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "omit shape labels")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the layout file changes")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	if err := c.renderOnce(ctx, input, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	logger := loggerFromContext(ctx)
	printInfo("Watching %s", input)
	printDetail("Press Ctrl+C to stop")
	return watchFile(ctx, input, logger, func() {
		if err := c.renderOnce(ctx, input, opts); err != nil {
			logger.Error("render failed", "err", err)
		}
	})
}

func (c *CLI) renderOnce(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	l, err := io.Import(input, c.newScorer())
	if err != nil {
		return err
	}

	svg := render.RenderSVG(l,
		render.WithMeter(!opts.noMeter),
		render.WithLabels(!opts.noLabels),
	)

	if opts.output == "-" {
		_, err := stdout.Write(svg)
		return err
	}

	out := opts.output
	if out == "" {
		out = svgPath(input)
	}
	if err := os.WriteFile(out, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	prog.done(fmt.Sprintf("Rendered %d items", l.Len()))

	printSuccess("Rendered layout, score %s", StyleNumber.Render(fmt.Sprintf("%.0f", l.Score())))
	printFile(out)
	return nil
}

// svgPath swaps the extension of input for .svg.
func svgPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}
