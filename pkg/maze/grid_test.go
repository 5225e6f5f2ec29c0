package maze

import (
	"testing"

	"github.com/matzehuels/mazewalk/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		columns  int
		wantCode errors.Code
	}{
		{name: "single cell", rows: 1, columns: 1},
		{name: "rectangle", rows: 3, columns: 7},
		{name: "zero rows", rows: 0, columns: 4, wantCode: errors.ErrCodeInvalidDimensions},
		{name: "zero columns", rows: 4, columns: 0, wantCode: errors.ErrCodeInvalidDimensions},
		{name: "negative", rows: -1, columns: -1, wantCode: errors.ErrCodeInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.columns)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("New(%d, %d) error = %v, want code %s", tt.rows, tt.columns, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d): %v", tt.rows, tt.columns, err)
			}
			if g.Rows() != tt.rows || g.Columns() != tt.columns {
				t.Errorf("dims = %dx%d, want %dx%d", g.Rows(), g.Columns(), tt.rows, tt.columns)
			}
			for r := range tt.rows {
				for c := range tt.columns {
					m, _ := g.Mask(Cell{r, c})
					if m != AllWalls {
						t.Errorf("Mask(%d,%d) = %v, want all walls", r, c, m)
					}
				}
			}
			if got := g.Passages(); got != 0 {
				t.Errorf("Passages() = %d, want 0", got)
			}
		})
	}
}

func TestEntranceExit(t *testing.T) {
	g, _ := New(4, 6)
	if g.Entrance() != (Cell{0, 0}) {
		t.Errorf("Entrance() = %v, want (0,0)", g.Entrance())
	}
	if g.Exit() != (Cell{3, 5}) {
		t.Errorf("Exit() = %v, want (3,5)", g.Exit())
	}
}

func TestHasWallOutOfBounds(t *testing.T) {
	g, _ := New(2, 3)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, NoCell} {
		if _, err := g.HasWall(c, North); !errors.Is(err, errors.ErrCodeOutOfBounds) {
			t.Errorf("HasWall(%v) error = %v, want OUT_OF_BOUNDS", c, err)
		}
		if err := g.ClearWall(c, North); !errors.Is(err, errors.ErrCodeOutOfBounds) {
			t.Errorf("ClearWall(%v) error = %v, want OUT_OF_BOUNDS", c, err)
		}
	}
}

func TestClearWallIdempotent(t *testing.T) {
	g, _ := New(2, 2)
	c := Cell{1, 1}

	for i := range 2 {
		if err := g.ClearWall(c, South); err != nil {
			t.Fatalf("ClearWall #%d: %v", i, err)
		}
	}
	has, err := g.HasWall(c, South)
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("South wall still present after ClearWall")
	}
	for _, d := range []Direction{North, East, West} {
		if has, _ := g.HasWall(c, d); !has {
			t.Errorf("%v wall cleared as side effect", d)
		}
	}
	// ClearWall only touches the addressed cell.
	if m, _ := g.Mask(Cell{0, 1}); m != AllWalls {
		t.Errorf("neighbor mask = %v, want untouched", m)
	}
}

func TestOpenKeepsSymmetry(t *testing.T) {
	g, _ := New(3, 3)
	center := Cell{1, 1}
	for _, d := range Directions {
		if err := g.Open(center, d); err != nil {
			t.Fatalf("Open(%v): %v", d, err)
		}
	}
	if err := g.CheckSymmetry(); err != nil {
		t.Errorf("CheckSymmetry: %v", err)
	}
	if got := g.Passages(); got != 4 {
		t.Errorf("Passages() = %d, want 4", got)
	}
	if got := len(g.Neighbors(center)); got != 4 {
		t.Errorf("len(Neighbors) = %d, want 4", got)
	}
	if err := g.Open(Cell{0, 0}, North); !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Open across boundary error = %v, want OUT_OF_BOUNDS", err)
	}
}

func TestCheckSymmetryDetectsOneWayWall(t *testing.T) {
	g, _ := New(1, 2)
	_ = g.ClearWall(Cell{0, 0}, East)
	if err := g.CheckSymmetry(); err == nil {
		t.Error("CheckSymmetry() = nil for one-way passage")
	}
}

func TestNeighborsSkipsBoundaryOpenings(t *testing.T) {
	g, _ := New(1, 1)
	_ = g.ClearWall(Cell{0, 0}, East)
	if n := g.Neighbors(Cell{0, 0}); len(n) != 0 {
		t.Errorf("Neighbors = %v, want none", n)
	}
}

func TestFromMasks(t *testing.T) {
	g, err := FromMasks([][]WallMask{
		{0b1001, 0b1100},
		{0b0111, 0b0011},
	})
	if err != nil {
		t.Fatalf("FromMasks: %v", err)
	}
	if got := g.Passages(); got != 3 {
		t.Errorf("Passages() = %d, want 3", got)
	}
	if err := g.CheckSymmetry(); err != nil {
		t.Errorf("CheckSymmetry: %v", err)
	}

	if _, err := FromMasks(nil); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("FromMasks(nil) error = %v, want INVALID_DIMENSIONS", err)
	}
	if _, err := FromMasks([][]WallMask{{15, 15}, {15}}); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("ragged FromMasks error = %v, want INVALID_DIMENSIONS", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(2, 2)
	clone := g.Clone()
	_ = clone.Open(Cell{0, 0}, East)

	if g.Passages() != 0 {
		t.Error("mutating clone changed original")
	}
	if clone.Passages() != 1 {
		t.Errorf("clone Passages() = %d, want 1", clone.Passages())
	}
}

func TestMasksCopy(t *testing.T) {
	g, _ := New(2, 3)
	masks := g.Masks()
	masks[0][0] = 0
	if m, _ := g.Mask(Cell{0, 0}); m != AllWalls {
		t.Error("Masks() exposes internal storage")
	}
	if len(masks) != 2 || len(masks[1]) != 3 {
		t.Errorf("Masks() shape = %dx%d, want 2x3", len(masks), len(masks[1]))
	}
}

func TestPathLen(t *testing.T) {
	if got := (Path{}).Len(); got != 0 {
		t.Errorf("empty Len() = %d", got)
	}
	if got := (Path{{0, 0}}).Len(); got != 0 {
		t.Errorf("single Len() = %d", got)
	}
	if got := (Path{{0, 0}, {0, 1}, {1, 1}}).Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}
