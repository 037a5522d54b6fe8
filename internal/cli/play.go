package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/internal/config"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/io"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// playCommand creates the play command: the interactive terminal canvas.
func (c *CLI) playCommand() *cobra.Command {
	var (
		count int
		seed  uint64
		input string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drag furniture around in the terminal",
		Long: `Drag furniture around in the terminal.

Tiles are drawn on a canvas sized to the terminal. Press a tile with the left
mouse button, drag it, and release it to see the Feng Shui meter update.

Keys:
  r        reshuffle into a fresh arrangement
  q, esc   quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = c.cfg.Canvas.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.cfg.Canvas.Seed
			}
			if err := errors.ValidateCount(count, config.MaxCount); err != nil {
				return err
			}
			return c.runPlay(cmd.Context(), count, seed, input)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", furniture.DefaultCount, "number of furniture items")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "start from a layout file instead of a random one")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, count int, seed uint64, input string) error {
	logger := loggerFromContext(ctx)
	scorer := c.newScorer()
	rng := newRand(seed)

	var l *layout.Layout
	if input != "" {
		var err error
		if l, err = io.Import(input, scorer); err != nil {
			return err
		}
	} else {
		l = layout.Generate(count, terminalBounds(), rng, scorer)
	}
	logger.Debug("starting play", "items", l.Len(), "score", l.Score())

	m := NewPlayModel(l, scorer, rng, count)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(PlayModel); ok {
		printSuccess("Final score %s", StyleNumber.Render(fmt.Sprintf("%.0f", fm.Layout().Score())))
	}
	return nil
}

// terminalBounds is the canvas for a typical 100x30 terminal, used until the
// first window size message arrives.
func terminalBounds() furniture.Bounds {
	return furniture.Bounds{
		Width:  float64(100-panelWidth) * cellWidth,
		Height: float64(30-headerLines-footerLines) * cellHeight,
	}
}
