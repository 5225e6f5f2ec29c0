package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

func newTestPlayModel(t *testing.T, visualize bool) PlayModel {
	t.Helper()
	runner := pipeline.NewRunner(log.New(io.Discard))
	m, err := NewPlayModel(context.Background(), runner, pipeline.Options{Rows: 4, Columns: 5, Seed: 3}, time.Millisecond, visualize)
	if err != nil {
		t.Fatalf("NewPlayModel: %v", err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m PlayModel, msg tea.Msg) (PlayModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PlayModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestPlayModelInitial(t *testing.T) {
	m := newTestPlayModel(t, true)
	if m.Maze.Seed != 3 {
		t.Errorf("seed = %d, want 3", m.Maze.Seed)
	}
	if m.Search != nil {
		t.Error("no search should run before a key is pressed")
	}
	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}
	view := m.View()
	for _, want := range []string{"4x5", "seed 3", "b breadth-first", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestPlayModelAnimatesOneStepPerTick(t *testing.T) {
	m := newTestPlayModel(t, true)

	m, cmd := update(t, m, key("b"))
	if cmd == nil {
		t.Fatal("starting a visualized search should schedule a tick")
	}
	if m.Search.Mode() != search.BreadthFirst {
		t.Fatalf("mode = %v, want bfs", m.Search.Mode())
	}
	if got := len(m.Search.Order()); got != 0 {
		t.Fatalf("visited %d cells before the first tick", got)
	}

	ticks := 0
	for cmd != nil {
		ticks++
		if ticks > m.Maze.Grid.Size() {
			t.Fatal("search did not finish within one tick per cell")
		}
		m, cmd = update(t, m, stepMsg{run: m.run})
		if got := len(m.Search.Order()); got != ticks {
			t.Fatalf("after %d ticks visited %d cells", ticks, got)
		}
	}

	if !m.Search.Done() || m.Err != nil {
		t.Fatalf("done = %v, err = %v", m.Search.Done(), m.Err)
	}
	if first, last := m.Path[0], m.Path[len(m.Path)-1]; first != m.Maze.Grid.Entrance() || last != m.Maze.Grid.Exit() {
		t.Errorf("path runs %v to %v", first, last)
	}
	if !strings.Contains(m.View(), "breadth-first: visited") {
		t.Errorf("status missing from view:\n%s", m.View())
	}
}

func TestPlayModelWithoutVisualizeFinishesImmediately(t *testing.T) {
	m := newTestPlayModel(t, false)
	m, cmd := update(t, m, key("d"))
	if cmd != nil {
		t.Error("search without visualization should not tick")
	}
	if !m.Search.Done() || len(m.Path) == 0 {
		t.Fatalf("done = %v, path = %v", m.Search.Done(), m.Path)
	}
	if m.Search.Mode() != search.DepthFirst {
		t.Errorf("mode = %v, want dfs", m.Search.Mode())
	}
}

func TestPlayModelIgnoresStaleTicks(t *testing.T) {
	m := newTestPlayModel(t, true)
	m, _ = update(t, m, key("b"))
	stale := stepMsg{run: m.run}

	m, _ = update(t, m, key("r"))
	if m.Search != nil {
		t.Fatal("regenerating should clear the search")
	}
	if m.Maze.Seed == 0 {
		t.Error("regenerated maze should report its seed")
	}

	m, cmd := update(t, m, stale)
	if cmd != nil || m.Search != nil {
		t.Error("tick from the previous maze should be ignored")
	}
}

func TestPlayModelKeys(t *testing.T) {
	m := newTestPlayModel(t, true)

	m, _ = update(t, m, key("v"))
	if m.Visualize {
		t.Error("v should toggle visualization off")
	}

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}
