package render

import (
	"encoding/json"

	"github.com/matzehuels/mazewalk/pkg/maze"
)

type jsonOutput struct {
	ID       string      `json:"id,omitempty"`
	Seed     uint64      `json:"seed,omitempty"`
	Mode     string      `json:"mode,omitempty"`
	Rows     int         `json:"rows"`
	Columns  int         `json:"columns"`
	Entrance maze.Cell   `json:"entrance"`
	Exit     maze.Cell   `json:"exit"`
	Passages int         `json:"passages"`
	Cells    [][]int     `json:"cells"` // wall masks, N=8 E=4 S=2 W=1
	Visits   []maze.Cell `json:"visits,omitempty"`
	Path     []maze.Cell `json:"path,omitempty"`
	PathLen  int         `json:"path_length,omitempty"`
}

// JSON encodes g, along with any visits, path and run metadata, as an
// indented JSON document.
func JSON(g *maze.Grid, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	masks := g.Masks()
	cells := make([][]int, len(masks))
	for r, row := range masks {
		cells[r] = make([]int, len(row))
		for c, m := range row {
			cells[r][c] = int(m)
		}
	}

	out := jsonOutput{
		ID:       o.meta.ID,
		Seed:     o.meta.Seed,
		Mode:     o.meta.Mode,
		Rows:     g.Rows(),
		Columns:  g.Columns(),
		Entrance: g.Entrance(),
		Exit:     g.Exit(),
		Passages: g.Passages(),
		Cells:    cells,
		Visits:   o.visits,
		Path:     o.path,
		PathLen:  o.path.Len(),
	}
	return json.MarshalIndent(out, "", "  ")
}
