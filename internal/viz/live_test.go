package viz

import (
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/render"
)

func newTestModel(t *testing.T, w, h int) (Model, []maze.Event) {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	gen := maze.New(g, rand.New(rand.NewSource(9)))
	events, err := gen.Generate(grid.Cell{})
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.RecordPath = filepath.Join(t.TempDir(), "rec.gif")
	m, err := NewModel(g, grid.Cell{}, events, gen.Result().Stats.FrontierSizes, opts)
	if err != nil {
		t.Fatal(err)
	}
	return m, events
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		panic("tick did not reschedule")
	}
	return next.(Model)
}

func sameWalls(t *testing.T, got *render.Walls, g *grid.Graph, events []maze.Event) {
	t.Helper()
	want, err := render.FromEvents(g, grid.Cell{}, events)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range g.Cells() {
		for d := grid.Up; d <= grid.Right; d++ {
			if got.Closed(c, d) != want.Closed(c, d) {
				t.Fatalf("wall %v %s: got closed=%v", c, d, got.Closed(c, d))
			}
		}
	}
}

func TestTickAdvances(t *testing.T) {
	m, events := newTestModel(t, 4, 3)

	m = tick(m)
	if m.Position() != 1 {
		t.Fatalf("position = %d, want 1", m.Position())
	}
	if m.Cursor() != events[0].To {
		t.Errorf("cursor = %v, want %v", m.Cursor(), events[0].To)
	}

	for i := 0; i < 2*len(events); i++ {
		m = tick(m)
	}
	if !m.Done() || m.Running() {
		t.Errorf("expected finished and stopped, pos %d running %v", m.Position(), m.Running())
	}
	sameWalls(t, m.Walls(), m.g, events)
}

func TestPauseAndStep(t *testing.T) {
	m, events := newTestModel(t, 4, 4)

	m = press(m, " ")
	if m.Running() {
		t.Fatal("space did not pause")
	}
	m = tick(m)
	if m.Position() != 0 {
		t.Errorf("paused model advanced to %d", m.Position())
	}

	m = press(m, "n")
	m = press(m, "right")
	if m.Position() != 2 {
		t.Errorf("position after two steps = %d", m.Position())
	}
	m = press(m, "left")
	if m.Position() != 1 {
		t.Errorf("position after step back = %d", m.Position())
	}
	sameWalls(t, m.Walls(), m.g, events[:1])
}

func TestScrubRebuildsWalls(t *testing.T) {
	m, events := newTestModel(t, 10, 10)

	m = press(m, "]")
	m = press(m, "]")
	step := len(events) / 20
	if m.Position() != 2*step {
		t.Fatalf("position = %d, want %d", m.Position(), 2*step)
	}
	m = press(m, "[")
	if m.Position() != step {
		t.Fatalf("position = %d, want %d", m.Position(), step)
	}
	sameWalls(t, m.Walls(), m.g, events[:step])

	for i := 0; i < 30; i++ {
		m = press(m, "[")
	}
	if m.Position() != 0 {
		t.Errorf("scrub below zero: %d", m.Position())
	}
}

func TestSpeedAndRestart(t *testing.T) {
	m, _ := newTestModel(t, 8, 8)

	m = press(m, "+")
	m = press(m, "+")
	if m.PerTick() != 4 {
		t.Fatalf("per tick = %d, want 4", m.PerTick())
	}
	m = tick(m)
	if m.Position() != 4 {
		t.Errorf("position = %d, want 4", m.Position())
	}
	m = press(m, "-")
	if m.PerTick() != 2 {
		t.Errorf("per tick = %d, want 2", m.PerTick())
	}
	for i := 0; i < 5; i++ {
		m = press(m, "-")
	}
	if m.PerTick() != 1 {
		t.Errorf("per tick below one: %d", m.PerTick())
	}

	m = press(m, "r")
	if m.Position() != 0 || !m.Running() {
		t.Errorf("restart left pos %d running %v", m.Position(), m.Running())
	}
	if m.Walls().Opened() != 0 {
		t.Error("restart kept open walls")
	}
}

func TestThemeCycle(t *testing.T) {
	m, _ := newTestModel(t, 2, 2)
	seen := map[string]bool{m.Theme().Name: true}
	for range Themes {
		m = press(m, "t")
		seen[m.Theme().Name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("cycled through %d themes, want %d", len(seen), len(Themes))
	}
}

func TestRecording(t *testing.T) {
	m, _ := newTestModel(t, 3, 3)

	m = press(m, "g")
	if !m.Recording() {
		t.Fatal("g did not start recording")
	}
	m = tick(m)
	m = tick(m)
	m = press(m, "g")
	if m.Recording() {
		t.Fatal("g did not stop recording")
	}
	if !strings.Contains(m.message, "saved 2 frames") {
		t.Errorf("message = %q", m.message)
	}
}

func TestNewModelRejectsBadEvents(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	bad := []maze.Event{{From: grid.Cell{X: 1, Y: 1}, To: grid.Cell{X: 1, Y: 2}}}
	_, err = NewModel(g, grid.Cell{}, bad, nil, DefaultOptions())
	if !errors.Is(err, maze.ErrCausality) {
		t.Errorf("expected ErrCausality, got %v", err)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, 3, 2)
	m = tick(m)

	out := m.View()
	for _, want := range []string{"MAZE", "Events", "1/5", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "v")
	if strings.Contains(m.View(), "+---+") {
		t.Error("braille view still draws text walls")
	}
	m = press(m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestCanvasPlotWalls(t *testing.T) {
	g, err := grid.New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	w := render.NewWalls(g, grid.Cell{})
	c := MazeCanvas(w, 2)
	if c.Width != 3 || c.Height != 1 {
		t.Fatalf("canvas = %dx%d, want 3x1", c.Width, c.Height)
	}
	c.PlotWalls(w, 2, nil)
	if !c.IsSet(2, 1) {
		t.Error("wall between cells not drawn")
	}

	if err := w.Open(maze.Event{From: grid.Cell{}, To: grid.Cell{X: 1}}); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	c.PlotWalls(w, 2, nil)
	if c.IsSet(2, 1) {
		t.Error("open wall still drawn")
	}
	if !c.IsSet(2, 0) || !c.IsSet(2, 2) {
		t.Error("outer walls missing")
	}
}
