package nodelink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/maze/carve"
	"github.com/matzehuels/mazewalk/pkg/maze/search"
)

func TestToDOT(t *testing.T) {
	g, _, err := carve.NewMaze(2, 2, carve.Fixed(maze.Directions))
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}
	path := maze.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	dot := ToDOT(g, Options{Path: path})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Fatalf("not an undirected graph:\n%s", dot)
	}
	for _, want := range []string{
		`"0,0" -- "0,1" [color=lime, penwidth=4];`,
		`"0,1" -- "1,1" [color=lime, penwidth=4];`,
		`"0,0" -- "1,0";`,
		`"0,0" [label="0,0", shape=doublecircle, fillcolor=lime];`,
		`"1,0" [label="1,0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, " -- "); got != g.Passages() {
		t.Errorf("edges = %d, want %d", got, g.Passages())
	}
	if strings.Contains(dot, "pos=") {
		t.Errorf("positions written without Positioned")
	}
}

func TestToDOTPositioned(t *testing.T) {
	g, _, _ := carve.NewMaze(2, 3, carve.NewSeeded(1))
	dot := ToDOT(g, Options{Positioned: true})
	if !strings.Contains(dot, `pos="2,-1!"`) {
		t.Errorf("missing pinned position for (1,2):\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	g, _, err := carve.NewMaze(4, 4, carve.NewSeeded(9))
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}
	res, err := search.Run(g, search.BreadthFirst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	svg, err := RenderSVG(ToDOT(g, Options{Path: res.Path}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)) {
		t.Errorf("svg header not normalized:\n%.300s", svg)
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG("this is not dot {"); err == nil {
		t.Error("expected an error for malformed DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", out, want)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
