// Package raster draws mazes as bitmaps without external tools.
//
// [Image] is a lazily evaluated [image.Image]: pixels are computed from the
// grid's wall masks on demand, so nothing is allocated per pixel until the
// image is encoded. [Decorate] frames it with entrance and exit markers, and [PNG]
// encodes the decorated result.
//
// The palette matches the SVG renderer: black background, white walls, red
// visits and a lime path.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/yalue/image_utils"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// DefaultCellPixels is the default side length of one cell, walls included.
const DefaultCellPixels = 12

var (
	Background = color.RGBA{0, 0, 0, 255}
	Wall       = color.RGBA{255, 255, 255, 255}
	Visit      = color.RGBA{255, 0, 0, 255}
	Path       = color.RGBA{0, 255, 0, 255}

	entranceArrow = color.RGBA{40, 180, 70, 255}
	exitArrow     = color.RGBA{100, 120, 255, 255}
)

// Options configures rasterization.
type Options struct {
	CellPixels int // zero means DefaultCellPixels; minimum 4
	Visits     []maze.Cell
	Path       maze.Path
}

type mark uint8

const (
	markNone mark = iota
	markVisit
	markPath
)

// Image is a maze rendered on demand. Each cell occupies CellPixels square
// pixels with walls on its edges; the image is one pixel wider and taller so
// the East and South borders are visible.
type Image struct {
	grid  *maze.Grid
	cell  int
	marks map[maze.Cell]mark
}

// New returns an image of g. It fails with INVALID_INPUT if the cell size is
// below 4 pixels.
func New(g *maze.Grid, opts Options) (*Image, error) {
	cell := opts.CellPixels
	if cell == 0 {
		cell = DefaultCellPixels
	}
	if cell < 4 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cell size must be at least 4 pixels, got %d", cell)
	}
	marks := make(map[maze.Cell]mark, len(opts.Visits)+len(opts.Path))
	for _, c := range opts.Visits {
		marks[c] = markVisit
	}
	for _, c := range opts.Path {
		marks[c] = markPath
	}
	return &Image{grid: g, cell: cell, marks: marks}, nil
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.grid.Columns()*m.cell+1, m.grid.Rows()*m.cell+1)
}

// At returns the color of pixel (x, y).
func (m *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return Background
	}
	col, lx := split(x, m.cell, m.grid.Columns())
	row, ly := split(y, m.cell, m.grid.Rows())
	c := maze.Cell{Row: row, Col: col}

	onLeft, onTop := lx == 0, ly == 0
	onRight, onBottom := lx == m.cell, ly == m.cell
	if (onLeft || onRight) && (onTop || onBottom) {
		return Wall // corner post
	}
	if onTop && m.wall(c, maze.North) ||
		onBottom && m.wall(c, maze.South) ||
		onLeft && c != m.grid.Entrance() && m.wall(c, maze.West) ||
		onRight && m.wall(c, maze.East) {
		return Wall
	}

	switch m.marks[c] {
	case markPath:
		if inset(lx, ly, m.cell, m.cell/4) {
			return Path
		}
	case markVisit:
		if inset(lx, ly, m.cell, m.cell*2/5) {
			return Visit
		}
	}
	return Background
}

func (m *Image) wall(c maze.Cell, d maze.Direction) bool {
	has, err := m.grid.HasWall(c, d)
	return err != nil || has
}

// split maps a pixel coordinate to a cell index and an offset within that
// cell. The final pixel line belongs to the last cell at offset size.
func split(p, size, n int) (idx, off int) {
	idx, off = p/size, p%size
	if idx == n {
		return n - 1, size
	}
	return idx, off
}

// inset reports whether (x, y) lies at least margin pixels inside a cell of
// the given size.
func inset(x, y, size, margin int) bool {
	return x >= margin && x <= size-margin && y >= margin && y <= size-margin
}

// Margin returns the width of the border [Decorate] puts around an image
// with the given cell size. The entrance and exit markers sit inside it.
func Margin(cell int) int {
	return max(cell, 8) + 2
}

// Decorate frames m with a border and draws a marker pointing into the
// entrance and another pointing out of the exit.
func Decorate(m *Image) *image.RGBA {
	margin := Margin(m.cell)
	framed := image_utils.AddImageBorder(m, Background, margin)

	b := framed.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, framed, b.Min, draw.Src)

	size := margin - 2
	entranceY := b.Min.Y + margin + m.cell/2 - size/2
	drawMarker(out, image.Pt(b.Min.X+1, entranceY), size, entranceArrow)

	exitX := b.Min.X + margin + m.Bounds().Dx() + 1
	exitY := b.Min.Y + margin + m.grid.Exit().Row*m.cell + m.cell/2 - size/2
	drawMarker(out, image.Pt(exitX, exitY), size, exitArrow)
	return out
}

// drawMarker fills a right-pointing triangle size pixels tall whose flat
// side starts at at.
func drawMarker(dst *image.RGBA, at image.Point, size int, c color.Color) {
	fill := image.NewUniform(c)
	for x := 0; x < (size+1)/2; x++ {
		col := image.Rect(at.X+x, at.Y+x, at.X+x+1, at.Y+size-x)
		draw.Draw(dst, col, fill, image.Point{}, draw.Src)
	}
}

// PNG rasterizes g, decorates it and encodes the result as PNG.
func PNG(g *maze.Grid, opts Options) ([]byte, error) {
	m, err := New(g, opts)
	if err != nil {
		return nil, err
	}
	pic := Decorate(m)
	var buf bytes.Buffer
	if err := png.Encode(&buf, pic); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
