package cli

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fengshui/internal/config"
	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/buildinfo"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/layout"
	"github.com/matzehuels/fengshui/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "fengshui"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fengshui scores furniture arrangements as you drag them around",
		Long:         `Fengshui is a layout toy: drag furniture tiles around a canvas, in the terminal or in a browser, and watch the Feng Shui meter react to how cluttered and how harmonious the arrangement is.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/fengshui/config.toml)")

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, attaches the logger to the command context
// and routes observability hooks to the logger.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	observability.SetInteractionHooks(&logHooks{logger: c.Logger})
	observability.SetHTTPHooks(&logHooks{logger: c.Logger})
	return nil
}

// =============================================================================
// Layout Factory
// =============================================================================

// newScorer builds a scorer from the loaded configuration.
func (c *CLI) newScorer() *appeal.Scorer {
	return appeal.New(c.cfg.Scoring)
}

// newLayout generates a layout of count items over bounds. A zero seed picks
// one from the clock.
func (c *CLI) newLayout(count int, bounds furniture.Bounds, seed uint64) *layout.Layout {
	return layout.Generate(count, bounds, newRand(seed), c.newScorer())
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return furniture.NewRand(seed)
}
