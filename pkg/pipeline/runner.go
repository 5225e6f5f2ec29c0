package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/maze/carve"
	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/observability"
)

// cancelCheckInterval is how many search steps run between context checks.
const cancelCheckInterval = 4096

// Runner executes the pipeline.
//
// The Runner is stateless except for its logger - it doesn't store results.
// Multiple goroutines can safely use the same Runner with different options;
// every run works on its own grid.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → solve → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	m, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Grid = m.Grid
	result.Seed = m.Seed
	result.Stats.Rows = m.Grid.Rows()
	result.Stats.Columns = m.Grid.Columns()
	result.Stats.Passages = m.Stats.Passages
	result.Stats.CarveDepth = m.Stats.MaxDepth
	result.Stats.GenerateTime = m.Elapsed

	// Stage 2: Solve
	if !opts.SkipSearch {
		searchStart := time.Now()
		res, err := r.Solve(ctx, m.Grid, opts)
		if err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}
		result.Search = res
		result.Stats.SearchTime = time.Since(searchStart)
		result.Stats.Visited = res.Visited()
		result.Stats.PathLength = res.Path.Len()
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("maze ready",
		"id", result.ID,
		"size", fmt.Sprintf("%dx%d", result.Stats.Rows, result.Stats.Columns),
		"seed", result.Seed,
		"formats", opts.Formats)

	return result, nil
}

// Generate carves a new maze. A zero seed is replaced by a random one, which
// is returned on the [Maze].
func (r *Runner) Generate(ctx context.Context, opts Options) (*Maze, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Maze()
	hooks.OnGenerateStart(ctx, opts.Rows, opts.Columns, opts.Seed)
	start := time.Now()

	g, stats, err := carve.NewMaze(opts.Rows, opts.Columns, carve.NewSeeded(opts.Seed))
	elapsed := time.Since(start)
	hooks.OnGenerateComplete(ctx, stats.Passages, elapsed, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("generated maze",
		"rows", opts.Rows,
		"columns", opts.Columns,
		"seed", opts.Seed,
		"passages", stats.Passages,
		"duration", elapsed)

	return &Maze{Grid: g, Seed: opts.Seed, Stats: stats, Elapsed: elapsed}, nil
}

// Solve traverses g with opts.Mode and returns the visit order and path.
// opts.OnVisit, when set, receives each visited cell in order. The context is
// checked periodically so very large mazes can be abandoned.
func (r *Runner) Solve(ctx context.Context, g *maze.Grid, opts Options) (*search.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSearch(); err != nil {
		return nil, err
	}

	hooks := observability.Maze()
	hooks.OnSearchStart(ctx, opts.Mode)
	start := time.Now()

	res, err := r.traverse(ctx, g, opts)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnSearchComplete(ctx, opts.Mode, 0, 0, elapsed, err)
		return nil, err
	}
	hooks.OnSearchComplete(ctx, opts.Mode, res.Visited(), res.Path.Len(), elapsed, nil)

	opts.Logger.Info("solved maze",
		"mode", opts.Mode,
		"visited", res.Visited(),
		"path", res.Path.Len(),
		"duration", elapsed)
	return res, nil
}

func (r *Runner) traverse(ctx context.Context, g *maze.Grid, opts Options) (*search.Result, error) {
	t, err := search.New(g, opts.SearchMode())
	if err != nil {
		return nil, err
	}
	for steps := 1; !t.Done(); steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		c, err := t.Step()
		if err != nil {
			return nil, err
		}
		if opts.OnVisit != nil {
			opts.OnVisit(c)
		}
	}
	return t.Result()
}

// Comparison holds a BFS and a DFS run over the same maze.
type Comparison struct {
	ID   string
	Seed uint64
	Grid *maze.Grid
	BFS  *search.Result
	DFS  *search.Result
}

// Compare generates one maze and solves it with both modes concurrently, each
// on its own copy of the grid. opts.Mode and opts.OnVisit are ignored.
func (r *Runner) Compare(ctx context.Context, opts Options) (*Comparison, error) {
	r.applyLogger(&opts)
	m, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	cmp := &Comparison{ID: uuid.NewString(), Seed: m.Seed, Grid: m.Grid}
	targets := map[search.Mode]**search.Result{
		search.BreadthFirst: &cmp.BFS,
		search.DepthFirst:   &cmp.DFS,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for mode, dst := range targets {
		grid := m.Grid.Clone()
		modeOpts := opts
		modeOpts.Mode = mode.String()
		modeOpts.OnVisit = nil
		eg.Go(func() error {
			res, err := r.Solve(egCtx, grid, modeOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", mode, err)
			}
			*dst = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return cmp, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
