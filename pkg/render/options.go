package render

import (
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
	FormatDOT  = "dot"
)

// Formats lists every supported output format.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText, FormatDOT}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatText: "text/plain; charset=utf-8",
	FormatDOT:  "text/vnd.graphviz",
}

// ValidateFormat fails with INVALID_FORMAT if f is not in [Formats].
func ValidateFormat(f string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", f, Formats...)
}

// DefaultSize is the default SVG canvas size in pixels.
const DefaultSize = 500

// Mark classifies a cell for drawing.
type Mark int

const (
	MarkNone Mark = iota
	MarkVisit
	MarkPath
)

// Meta identifies the run that produced a maze. It is only written by [JSON].
type Meta struct {
	ID   string
	Seed uint64
	Mode string
}

// Option configures a renderer.
type Option func(*options)

type options struct {
	visits    []maze.Cell
	path      maze.Path
	size      float64
	meta      Meta
	markStyle func(Mark, string) string
}

// WithVisits marks visited cells, in visit order.
func WithVisits(order []maze.Cell) Option { return func(o *options) { o.visits = order } }

// WithPath marks the solution path.
func WithPath(p maze.Path) Option { return func(o *options) { o.path = p } }

// WithSize sets the SVG canvas size in pixels. Non-positive sizes are ignored.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = float64(px)
		}
	}
}

// WithMeta records run metadata in JSON output.
func WithMeta(m Meta) Option { return func(o *options) { o.meta = m } }

// WithMarkStyle wraps the three-character body of each text cell, e.g. to add
// terminal colors. It is called for every cell, including unmarked ones.
func WithMarkStyle(fn func(Mark, string) string) Option {
	return func(o *options) { o.markStyle = fn }
}

func newOptions(opts []Option) options {
	o := options{size: DefaultSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// marks indexes visit and path cells. Path wins over visit.
func (o *options) marks() map[maze.Cell]Mark {
	m := make(map[maze.Cell]Mark, len(o.visits)+len(o.path))
	for _, c := range o.visits {
		m[c] = MarkVisit
	}
	for _, c := range o.path {
		m[c] = MarkPath
	}
	return m
}
