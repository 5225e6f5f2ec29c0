// Package pipeline provides the generate → solve → render pipeline for mazewalk.
//
// The CLI, the interactive player and the HTTP server all build mazes through
// a [Runner], so defaults, validation, logging and hooks behave the same
// everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: carve a perfect maze from a seeded random source
//  2. Solve: traverse it breadth-first or depth-first and rebuild the path
//  3. Render: produce artifacts (text, SVG, JSON, DOT, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Rows:    35,
//	    Columns: 35,
//	    Mode:    "bfs",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	m, err := runner.Generate(ctx, opts)
//	res, err := runner.Solve(ctx, m.Grid, opts)
//
// A zero Seed asks for a fresh random seed. The seed actually used is
// reported on [Maze] and [Result] so the maze can be reproduced.
package pipeline

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/maze/carve"
	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI and API
// =============================================================================

const (
	// DefaultRows is the default number of maze rows.
	DefaultRows = 35

	// DefaultColumns is the default number of maze columns.
	DefaultColumns = 35

	// DefaultMode is the default search mode.
	DefaultMode = search.ModeBFS

	// DefaultSize is the default SVG canvas size in pixels.
	DefaultSize = render.DefaultSize

	// DefaultMaxDimension caps rows and columns when Options.MaxDimension is
	// zero. A negative MaxDimension disables the cap.
	DefaultMaxDimension = 500

	// DefaultPNGScale is the resolution multiplier for PNG output.
	DefaultPNGScale = 2.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the maze pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Rows         int    `json:"rows,omitempty"`
	Columns      int    `json:"columns,omitempty"`
	Seed         uint64 `json:"seed,omitempty"` // 0 = pick one at random
	MaxDimension int    `json:"-"`              // 0 = DefaultMaxDimension, < 0 = no cap

	// Search options
	Mode       string `json:"mode,omitempty"`
	SkipSearch bool   `json:"skip_search,omitempty"` // generate and render the bare maze

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Size      int      `json:"size,omitempty"`
	Visualize bool     `json:"visualize,omitempty"` // draw every visited cell, not just the path

	// Runtime options (not serialized)
	Logger  *log.Logger     `json:"-"`
	OnVisit func(maze.Cell) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Maze is a freshly generated grid together with the seed that produced it.
type Maze struct {
	Grid    *maze.Grid
	Seed    uint64
	Stats   carve.Stats
	Elapsed time.Duration
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies the run.
	ID string

	// Seed reproduces the maze with the same dimensions.
	Seed uint64

	// Grid is the carved maze.
	Grid *maze.Grid

	// Search is the traversal result; nil when the search was skipped.
	Search *search.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Path returns the solution path, or nil when no search ran.
func (r *Result) Path() maze.Path {
	if r.Search == nil {
		return nil
	}
	return r.Search.Path
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Columns      int
	Passages     int
	CarveDepth   int // deepest generator stack
	Visited      int
	PathLength   int
	GenerateTime time.Duration
	SearchTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMode checks that a search mode is valid.
func ValidateMode(mode string) error {
	_, err := search.ParseMode(mode)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForSearch(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default dimensions, a random seed and a logger.
func (o *Options) SetGenerateDefaults() {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.MaxDimension == 0 {
		o.MaxDimension = DefaultMaxDimension
	}
	if o.Seed == 0 {
		o.Seed = RandomSeed()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForGenerate sets generate defaults and checks the dimensions.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	return errors.ValidateDimensions(o.Rows, o.Columns, o.MaxDimension)
}

// SetSearchDefaults sets the default search mode.
func (o *Options) SetSearchDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForSearch sets search defaults and checks the mode.
func (o *Options) ValidateForSearch() error {
	o.SetSearchDefaults()
	return ValidateMode(o.Mode)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Size < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size must be positive, got %d", o.Size)
	}
	return ValidateFormats(o.Formats)
}

// SearchMode returns the parsed search mode. Call after validation.
func (o *Options) SearchMode() search.Mode {
	m, _ := search.ParseMode(o.Mode)
	return m
}

// RandomSeed returns a non-zero random seed.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}
