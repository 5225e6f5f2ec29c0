package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/internal/config"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

// playCommand creates the play command: an animated search in the terminal.
func (c *CLI) playCommand() *cobra.Command {
	opts := &mazeOpts{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch breadth- and depth-first search walk a maze",
		Long: `Open an interactive maze in the terminal.

Keys:
  b   run breadth-first search
  d   run depth-first search
  r   carve a new maze
  v   toggle drawing of visited cells
  q   quit

Each frame visits one cell; --delay sets the pause between frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, opts)
		},
	}

	opts.addDimensionFlags(cmd.Flags())
	cmd.Flags().DurationVar(&opts.delay, "delay", config.DefaultDelay, "pause between animation frames")
	cmd.Flags().BoolVar(&opts.visualize, "visualize", true, "animate every visited cell, not just the path")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, opts *mazeOpts) error {
	popts, cfg, err := c.options(cmd, opts)
	if err != nil {
		return err
	}
	// Log lines would tear the full-screen view.
	quiet := log.New(io.Discard)
	popts.Logger = quiet

	m, err := NewPlayModel(cmd.Context(), pipeline.NewRunner(quiet), popts, cfg.Delay.D(), cfg.Visualize)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}
