package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// PlayModel - Animated maze search
// =============================================================================

// stepMsg asks the model to advance the search by one cell. Messages from an
// older search are ignored.
type stepMsg struct{ run int }

// PlayModel is the bubbletea model behind `mazewalk play`. Each tick advances
// the traversal by exactly one Step, so the animation shows cells in visit
// order.
type PlayModel struct {
	ctx       context.Context
	runner    *pipeline.Runner
	opts      pipeline.Options
	Delay     time.Duration
	Visualize bool

	Maze   *pipeline.Maze
	Search *search.Traverser
	Path   maze.Path
	Status string
	Err    error

	run int // incremented whenever a new maze or search replaces the old one
}

// NewPlayModel generates the first maze. opts.Seed picks it; later mazes use
// fresh random seeds.
func NewPlayModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, delay time.Duration, visualize bool) (PlayModel, error) {
	m := PlayModel{
		ctx:       ctx,
		runner:    runner,
		opts:      opts,
		Delay:     delay,
		Visualize: visualize,
	}
	if err := m.regenerate(); err != nil {
		return m, err
	}
	m.opts.Seed = 0
	return m, nil
}

func (m *PlayModel) regenerate() error {
	mz, err := m.runner.Generate(m.ctx, m.opts)
	if err != nil {
		return err
	}
	m.run++
	m.Maze, m.Search, m.Path, m.Err = mz, nil, nil, nil
	m.Status = fmt.Sprintf("new maze, seed %d", mz.Seed)
	return nil
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if err := m.regenerate(); err != nil {
				m.Err = err
			}
			return m, nil
		case "b":
			return m.start(search.BreadthFirst)
		case "d":
			return m.start(search.DepthFirst)
		case "v":
			m.Visualize = !m.Visualize
			return m, nil
		}

	case stepMsg:
		if msg.run != m.run || m.Search == nil || m.Search.Done() {
			return m, nil
		}
		return m.step()
	}

	return m, nil
}

// start begins a new search on the current maze. With visualization off or
// no delay the search completes immediately.
func (m PlayModel) start(mode search.Mode) (tea.Model, tea.Cmd) {
	t, err := search.New(m.Maze.Grid, mode)
	if err != nil {
		m.Err = err
		return m, nil
	}
	m.run++
	m.Search, m.Path, m.Err = t, nil, nil
	m.Status = mode.Title() + " search running"

	if !m.Visualize || m.Delay <= 0 {
		for !t.Done() {
			if _, err := t.Step(); err != nil {
				break
			}
		}
		m.finish()
		return m, nil
	}
	return m, m.tick()
}

func (m PlayModel) step() (tea.Model, tea.Cmd) {
	_, _ = m.Search.Step()
	if m.Search.Done() {
		m.finish()
		return m, nil
	}
	return m, m.tick()
}

func (m *PlayModel) finish() {
	res, err := m.Search.Result()
	if err != nil {
		m.Err = err
		m.Status = m.Search.Mode().Title() + " search failed"
		return
	}
	m.Path = res.Path
	m.Status = fmt.Sprintf("%s: visited %d of %d cells, path %d",
		res.Mode.Title(), res.Visited(), m.Maze.Grid.Size(), res.Path.Len())
}

func (m PlayModel) tick() tea.Cmd {
	run := m.run
	return tea.Tick(m.Delay, func(time.Time) tea.Msg { return stepMsg{run: run} })
}

func (m PlayModel) View() string {
	var b strings.Builder
	g := m.Maze.Grid

	b.WriteString(StyleTitle.Render("mazewalk"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d · seed %d", g.Rows(), g.Columns(), m.Maze.Seed)))
	b.WriteString("\n\n")

	var visits []maze.Cell
	if m.Search != nil && m.Visualize {
		visits = m.Search.Order()
	}
	b.WriteString(styledMaze(g, visits, m.Path))
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(playErrorStyle.Render(iconError + " " + m.Err.Error()))
	case m.Search != nil && !m.Search.Done():
		b.WriteString(playStatusStyle.Render(fmt.Sprintf("%s: visited %d, frontier %d",
			m.Search.Mode().Title(), len(m.Search.Order()), m.Search.Pending())))
	default:
		b.WriteString(playStatusStyle.Render(m.Status))
	}
	b.WriteString("\n\n")

	visualize := "off"
	if m.Visualize {
		visualize = "on"
	}
	b.WriteString(playHelpStyle.Render(fmt.Sprintf("r new maze · b breadth-first · d depth-first · v visualize (%s) · q quit", visualize)))
	b.WriteString("\n")

	return b.String()
}
