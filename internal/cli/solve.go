package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// modeBoth runs BFS and DFS on the same maze and compares them.
const modeBoth = "both"

type solveOpts struct {
	mazeOpts
	outputOpts
	quiet bool
}

// solveCommand creates the solve command: carve a maze and walk it.
func (c *CLI) solveCommand() *cobra.Command {
	opts := &solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Carve a maze and solve it breadth- or depth-first",
		Long: `Carve a perfect maze and walk it from the entrance (top-left) to the exit
(bottom-right).

Visited cells are marked in red and the path in green. --mode both solves the
same maze with BFS and DFS and prints a comparison table.`,
		Example: `  # Solve with depth-first search, showing only the path
  mazewalk solve --mode dfs --visualize=false

  # Compare BFS and DFS on a reproducible maze
  mazewalk solve --mode both --seed 1234

  # Write the solved maze as SVG and JSON
  mazewalk solve -o solved -f svg,json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, opts)
		},
	}

	opts.addDimensionFlags(cmd.Flags())
	opts.addSearchFlags(cmd.Flags(), "search mode: bfs, dfs or both")
	cmd.Flags().IntVar(&opts.size, "size", pipeline.DefaultSize, "SVG canvas size in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, txt (comma-separated)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the statistics")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, opts *solveOpts) error {
	popts, _, err := c.options(cmd, &opts.mazeOpts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("mode") && opts.mode == modeBoth {
		return c.runCompare(cmd, popts, opts)
	}

	formats := opts.resolveFormats()
	if err := opts.checkStdout(formats); err != nil {
		return err
	}
	toTerminal := len(formats) == 0
	if toTerminal {
		formats = []string{render.FormatText}
	}
	popts.Formats = formats

	result, err := c.execute(cmd, c.newRunner(), popts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !toTerminal {
		written, err := writeArtifacts(out, opts.output, formats, result.Artifacts)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			return nil
		}
		printSuccess(out, "Solved %dx%d maze with %s (seed %d)",
			result.Stats.Rows, result.Stats.Columns, result.Search.Mode.Title(), result.Seed)
		for _, path := range written {
			printFile(out, path)
		}
		return nil
	}

	if !opts.quiet {
		visits := result.Search.Order
		if !popts.Visualize {
			visits = nil
		}
		fmt.Fprint(out, styledMaze(result.Grid, visits, result.Path()))
	}
	printSolveStats(out, result)
	return nil
}

func printSolveStats(w io.Writer, result *pipeline.Result) {
	s := result.Stats
	printStats(w, s.Rows, s.Columns, result.Seed, s.Visited, s.PathLength)
	fmt.Fprintln(w, statsTable(
		[]string{"", result.Search.Mode.Title()},
		[][]string{
			{"Visited", strconv.Itoa(s.Visited)},
			{"Path length", strconv.Itoa(s.PathLength)},
			{"Explored", explored(s.Visited, s.Rows*s.Columns)},
			{"Generate", roundDuration(s.GenerateTime)},
			{"Search", roundDuration(s.SearchTime)},
		},
	))
}

// runCompare solves one maze with both modes and prints them side by side.
func (c *CLI) runCompare(cmd *cobra.Command, popts pipeline.Options, opts *solveOpts) error {
	if opts.output != "" || opts.formats != "" {
		printWarning(cmd.ErrOrStderr(), "--output and --format are ignored with --mode both")
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	cmp, err := c.newRunner().Compare(cmd.Context(), popts)
	if err != nil {
		return err
	}
	prog.done("Compared searches", "id", cmp.ID, "seed", cmp.Seed)

	out := cmd.OutOrStdout()
	if !opts.quiet {
		fmt.Fprint(out, styledMaze(cmp.Grid, nil, cmp.BFS.Path))
	}
	cells := cmp.Grid.Size()
	printStats(out, cmp.Grid.Rows(), cmp.Grid.Columns(), cmp.Seed, 0, cmp.BFS.Path.Len())

	row := func(label string, f func(*search.Result) string) []string {
		return []string{label, f(cmp.BFS), f(cmp.DFS)}
	}
	fmt.Fprintln(out, statsTable(
		[]string{"", cmp.BFS.Mode.Title(), cmp.DFS.Mode.Title()},
		[][]string{
			row("Visited", func(r *search.Result) string { return strconv.Itoa(r.Visited()) }),
			row("Path length", func(r *search.Result) string { return strconv.Itoa(r.Path.Len()) }),
			row("Explored", func(r *search.Result) string { return explored(r.Visited(), cells) }),
		},
	))
	return nil
}

func explored(visited, cells int) string {
	if cells == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(visited)/float64(cells))
}

func roundDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
