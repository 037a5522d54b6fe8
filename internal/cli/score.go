package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/io"
)

const meterWidth = 30

// scoreCommand creates the score command, which scores a layout file.
func (c *CLI) scoreCommand() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "score <layout-file>",
		Short: "Score a layout file",
		Long: `Score a layout file with the configured scoring parameters.

With --explain every pair that moved the score is listed: pairs closer than
the proximity threshold cost points, pairs of similar color earn points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScore(cmd.Context(), args[0], explain)
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "list the pairs that changed the score")

	return cmd
}

func (c *CLI) runScore(ctx context.Context, path string, explain bool) error {
	logger := loggerFromContext(ctx)
	scorer := c.newScorer()

	l, err := io.Import(path, scorer)
	if err != nil {
		return err
	}
	logger.Debug("loaded layout", "path", path, "items", l.Len())

	b := l.Explain()
	printKeyValue("Items", fmt.Sprintf("%d", l.Len()))
	printKeyValue("Penalties", stylePenalty.Render(fmt.Sprintf("%d", b.Penalties)))
	printKeyValue("Rewards", styleReward.Render(fmt.Sprintf("%d", b.Rewards)))
	printKeyValue("Score", meterBar(b.Score, meterWidth)+" "+StyleNumber.Render(fmt.Sprintf("%.0f", b.Score)))
	if b.Raw != b.Score {
		printDetail("raw score %.0f clamped to [%.0f, %.0f]", b.Raw, appeal.MinScore, appeal.MaxScore)
	}

	if explain {
		printPairs(b, scorer.Params())
	}
	return nil
}

// printPairs lists the pairs that contributed to the score.
func printPairs(b appeal.Breakdown, p appeal.Params) {
	var shown int
	for _, pr := range b.Pairs {
		if !pr.Penalized && !pr.Rewarded {
			continue
		}
		if shown == 0 {
			fmt.Fprintln(stdout)
		}
		shown++

		delta := pr.Delta(p)
		var d string
		switch {
		case delta < 0:
			d = stylePenalty.Render(fmt.Sprintf("%+.0f", delta))
		case delta > 0:
			d = styleReward.Render(fmt.Sprintf("%+.0f", delta))
		default:
			d = StyleDim.Render(" 0")
		}
		fmt.Fprintf(stdout, "  %s %s %s %s\n", d, StyleValue.Render(pr.A), StyleDim.Render(iconArrow), StyleValue.Render(pr.B))
		printDetail("  distance %.1f, color difference %s", pr.Distance, colorDiff(pr))
	}
	if shown == 0 {
		printInfo("No pair changed the score")
	}
}

func colorDiff(pr appeal.Pair) string {
	if !pr.ColorOK {
		return "n/a"
	}
	return fmt.Sprintf("%d", pr.ColorDiff)
}
