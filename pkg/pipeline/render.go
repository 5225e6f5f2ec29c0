package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/observability"
	"github.com/matzehuels/mazewalk/pkg/render"
	"github.com/matzehuels/mazewalk/pkg/render/nodelink"
	"github.com/matzehuels/mazewalk/pkg/render/raster"
)

// Render generates output artifacts for result in the requested formats.
// Visits are drawn only when opts.Visualize is set; the path is always drawn
// when a search ran.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if result == nil || result.Grid == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}

	hooks := observability.Maze()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := RenderArtifacts(result, opts)
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, elapsed, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("rendered outputs", "formats", opts.Formats, "duration", elapsed)
	return artifacts, nil
}

// RenderArtifacts renders result without hooks or logging.
func RenderArtifacts(result *Result, opts Options) (map[string][]byte, error) {
	renderOpts := RenderOptions(result, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case render.FormatText:
			data = []byte(render.Text(result.Grid, renderOpts...))
		case render.FormatSVG:
			data = render.SVG(result.Grid, renderOpts...)
		case render.FormatPNG:
			data, err = renderPNG(result, opts, renderOpts)
		case render.FormatPDF:
			data, err = render.ToPDF(render.SVG(result.Grid, renderOpts...))
		case render.FormatJSON:
			data, err = render.JSON(result.Grid, renderOpts...)
		case render.FormatDOT:
			data = []byte(nodelink.ToDOT(result.Grid, nodelink.Options{Path: result.Path()}))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderPNG converts the SVG rendering with rsvg-convert, falling back to the
// built-in rasterizer when the tool is not installed.
func renderPNG(result *Result, opts Options, renderOpts []render.Option) ([]byte, error) {
	data, err := render.ToPNG(render.SVG(result.Grid, renderOpts...), DefaultPNGScale)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		return data, err
	}
	opts.Logger.Debug("rsvg-convert unavailable, rasterizing png", "error", err)
	ro := raster.Options{Path: result.Path()}
	if opts.Visualize && result.Search != nil {
		ro.Visits = result.Search.Order
	}
	return raster.PNG(result.Grid, ro)
}

// RenderOptions builds the renderer options for result.
func RenderOptions(result *Result, opts Options) []render.Option {
	ro := []render.Option{
		render.WithSize(opts.Size),
		render.WithMeta(render.Meta{ID: result.ID, Seed: result.Seed, Mode: searchMode(result)}),
	}
	if result.Search != nil {
		ro = append(ro, render.WithPath(result.Search.Path))
		if opts.Visualize {
			ro = append(ro, render.WithVisits(result.Search.Order))
		}
	}
	return ro
}

func searchMode(result *Result) string {
	if result.Search == nil {
		return ""
	}
	return result.Search.Mode.String()
}
