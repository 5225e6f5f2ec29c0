package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

type generateOpts struct {
	mazeOpts
	outputOpts
}

// generateCommand creates the generate command: carve a maze without solving it.
func (c *CLI) generateCommand() *cobra.Command {
	opts := &generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a new perfect maze",
		Long: `Carve a perfect maze with a randomized depth-first search.

Without --output the maze is printed to the terminal. With --output it is
written in each requested format; the format is taken from the file extension
when --format is not given.`,
		Example: `  # Print a 10x20 maze
  mazewalk generate -r 10 -c 20

  # Write SVG and PNG files (maze.svg, maze.png)
  mazewalk generate -o maze -f svg,png --seed 1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	opts.addDimensionFlags(cmd.Flags())
	cmd.Flags().IntVar(&opts.size, "size", pipeline.DefaultSize, "SVG canvas size in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, txt (comma-separated)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	popts, _, err := c.options(cmd, &opts.mazeOpts)
	if err != nil {
		return err
	}
	popts.SkipSearch = true

	formats := opts.resolveFormats()
	if err := opts.checkStdout(formats); err != nil {
		return err
	}
	runner := c.newRunner()

	if len(formats) == 0 {
		m, err := runner.Generate(ctx, popts)
		if err != nil {
			return err
		}
		fmt.Fprint(out, styledMaze(m.Grid, nil, nil))
		printStats(out, m.Grid.Rows(), m.Grid.Columns(), m.Seed, 0, 0)
		return nil
	}

	popts.Formats = formats
	result, err := c.execute(cmd, runner, popts)
	if err != nil {
		return err
	}

	written, err := writeArtifacts(out, opts.output, formats, result.Artifacts)
	if err != nil {
		return err
	}
	if len(written) > 0 {
		printSuccess(out, "Generated %dx%d maze (seed %d)", result.Stats.Rows, result.Stats.Columns, result.Seed)
		for _, path := range written {
			printFile(out, path)
		}
	}
	return nil
}

// execute runs the pipeline, showing a spinner on stderr while slow formats
// are converted.
func (c *CLI) execute(cmd *cobra.Command, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	if !anyBinary(opts.Formats) {
		result, err := runner.Execute(cmd.Context(), opts)
		if err == nil {
			prog.done("Built maze", "id", result.ID, "seed", result.Seed)
		}
		return result, err
	}

	spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering...")
	spinner.Start()
	result, err := runner.Execute(cmd.Context(), opts)
	spinner.Stop()
	if err == nil {
		prog.done("Built maze", "id", result.ID, "seed", result.Seed)
	}
	return result, err
}
