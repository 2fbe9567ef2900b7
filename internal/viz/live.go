package viz

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mazegen/internal/export"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/render"
)

const (
	maxPerTick   = 1024
	brailleScale = 2
)

// Options configures playback.
type Options struct {
	Title      string
	FPS        int
	PerTick    int
	Theme      string
	Braille    bool
	Render     render.Config
	GIFDelay   int
	RecordPath string
}

func DefaultOptions() Options {
	return Options{
		Title:      "maze",
		FPS:        60,
		PerTick:    1,
		Theme:      ThemeCyberpunk.Name,
		Render:     render.DefaultConfig(),
		GIFDelay:   export.DefaultDelay,
		RecordPath: "maze.gif",
	}
}

type TickMsg time.Time

// Model replays connection events onto a walled grid.
type Model struct {
	g        *grid.Graph
	start    grid.Cell
	events   []maze.Event
	frontier []int
	walls    *render.Walls
	pos      int
	running  bool
	perTick  int
	opts     Options
	theme    Theme
	braille  bool
	showHelp bool

	recording bool
	frames    []*image.Paletted
	message   string
}

// NewModel checks events against g and start and returns a paused-at-zero
// player that starts running on the first tick. frontier, when not nil,
// holds the frontier size after each event and is charted beside the maze.
func NewModel(g *grid.Graph, start grid.Cell, events []maze.Event, frontier []int, opts Options) (Model, error) {
	if err := maze.ValidatePrefix(g, start, events); err != nil {
		return Model{}, err
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.PerTick <= 0 {
		opts.PerTick = 1
	}
	if opts.GIFDelay <= 0 {
		opts.GIFDelay = export.DefaultDelay
	}
	if opts.RecordPath == "" {
		opts.RecordPath = "maze.gif"
	}
	return Model{
		g:        g,
		start:    start,
		events:   events,
		frontier: frontier,
		walls:    render.NewWalls(g, start),
		running:  true,
		perTick:  opts.PerTick,
		opts:     opts,
		theme:    GetTheme(opts.Theme),
		braille:  opts.Braille,
	}, nil
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Position returns the number of events applied.
func (m Model) Position() int { return m.pos }

func (m Model) Len() int { return len(m.events) }

func (m Model) Done() bool { return m.pos == len(m.events) }

func (m Model) Running() bool { return m.running }

func (m Model) PerTick() int { return m.perTick }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Recording() bool { return m.recording }

// Walls returns the wall state at the current position.
func (m Model) Walls() *render.Walls { return m.walls }

// Cursor returns the most recently connected cell, or start before the
// first event.
func (m Model) Cursor() grid.Cell {
	if m.pos == 0 {
		return m.start
	}
	return m.events[m.pos-1].To
}

// Update handles input and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			if m.Done() && !m.running {
				m.seek(0)
			}
			m.running = !m.running
		case "n", "right":
			m.running = false
			m.seek(m.pos + 1)
		case "p", "left":
			m.running = false
			m.seek(m.pos - 1)
		case "[":
			m.running = false
			m.seek(m.pos - m.scrubStep())
		case "]":
			m.running = false
			m.seek(m.pos + m.scrubStep())
		case "home":
			m.seek(0)
		case "end":
			m.seek(len(m.events))
		case "+", "=":
			if m.perTick < maxPerTick {
				m.perTick *= 2
			}
		case "-", "_":
			if m.perTick > 1 {
				m.perTick /= 2
			}
		case "r":
			m.seek(0)
			m.running = true
		case "v":
			m.braille = !m.braille
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.message = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.seek(m.pos + m.perTick)
			if m.Done() {
				m.running = false
			}
		}
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) scrubStep() int {
	if s := len(m.events) / 20; s > 1 {
		return s
	}
	return 1
}

// seek moves playback to pos, applying events forward or rebuilding the
// walls from the prefix when moving back.
func (m *Model) seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.events) {
		pos = len(m.events)
	}
	if pos < m.pos {
		m.walls = render.NewWalls(m.g, m.start)
		m.pos = 0
	}
	// events were validated in NewModel
	_ = m.walls.Apply(m.events[m.pos:pos])
	m.pos = pos
}

func (m *Model) captureFrame() {
	cursor := m.Cursor()
	m.frames = append(m.frames, render.Image(m.walls, m.opts.Render, &cursor))
}

func (m *Model) stopRecording() {
	m.recording = false
	if err := export.SaveFrames(m.opts.RecordPath, m.frames, m.opts.GIFDelay); err != nil {
		m.message = fmt.Sprintf("record failed: %v", err)
	} else {
		m.message = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.opts.RecordPath)
	}
	m.frames = nil
}

func (m Model) status() string {
	switch {
	case m.recording:
		return StatusRecording.Render(fmt.Sprintf("● REC %d", len(m.frames)))
	case m.Done():
		return StatusRunning.Render("DONE")
	case m.running:
		return StatusRunning.Render("PLAYING")
	default:
		return StatusPaused.Render("PAUSED")
	}
}

func (m Model) picture() string {
	cursor := m.Cursor()
	if m.braille {
		c := MazeCanvas(m.walls, brailleScale)
		c.PlotWalls(m.walls, brailleScale, &cursor)
		return lipgloss.NewStyle().Foreground(m.theme.Wall).Render(strings.TrimRight(c.String(), "\n"))
	}
	return colorize(render.Text(m.walls, render.TextOptions{Cursor: &cursor, ShadeUnvisited: true}), m.theme)
}

// View renders the maze beside a stats panel.
func (m Model) View() string {
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).MarginBottom(1)

	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.opts.Title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	progress := 1.0
	if len(m.events) > 0 {
		progress = float64(m.pos) / float64(len(m.events))
	}
	s.WriteString(ProgressBar(progress, 30) + "\n\n")

	cursor := m.Cursor()
	s.WriteString(labelStyle.Render("Size") + valueStyle.Render(fmt.Sprintf("%dx%d", m.g.Width(), m.g.Height())) + "\n")
	s.WriteString(labelStyle.Render("Events") + valueStyle.Render(fmt.Sprintf("%d/%d", m.pos, len(m.events))) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(cursor.String()) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d/tick @ %dfps", m.perTick, m.opts.FPS)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	if n := m.pos; n > 1 && len(m.frontier) >= n {
		hist := make([]float64, n)
		for i := range hist {
			hist[i] = float64(m.frontier[i])
		}
		s.WriteString(labelStyle.Render("Frontier") + valueStyle.Render(fmt.Sprintf("%d", m.frontier[n-1])) + "\n")
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Frontier"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.message != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.message) + "\n")
	}
	s.WriteString(helpStyle.Render("\n" + Separator(24) + "\nSP:Pause R:Restart Q:Quit\nT:Theme  G:Record  ?:Help\n[ ]:Scrub N/P:Step +-:Speed"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, mazeStyle.Render(m.picture()), statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  N/Right  - Step forward             ║
║  P/Left   - Step back                ║
║  [ ]      - Scrub back/forward       ║
║  Home/End - Jump to start/end        ║
║  + -      - Events per tick          ║
║  R        - Restart                  ║
║  V        - Toggle Braille view      ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run plays m full screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
