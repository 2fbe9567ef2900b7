package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuPointer  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuDimmer   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// Choice is one entry of the menu. Params are edited in place before
// Build is called with them.
type Choice struct {
	Name        string
	Description string
	Params      []Param
}

// Param is a numeric setting shown on the configure screen.
type Param struct {
	Name  string
	Value float64
	Step  float64
}

// BuildFunc generates a maze for the chosen parameters and returns the
// player for it.
type BuildFunc func(choice string, params map[string]float64) (Model, error)

const (
	stateMenu = iota
	stateConfig
	statePlay
)

// Menu lists choices, lets the user tune one and then plays it.
type Menu struct {
	state       int
	cursor      int
	choices     []Choice
	paramCursor int
	editing     bool
	editBuf     string
	build       BuildFunc
	err         error
	player      Model
}

func NewMenu(choices []Choice, build BuildFunc) Menu {
	cs := make([]Choice, len(choices))
	for i, c := range choices {
		cs[i] = c
		cs[i].Params = append([]Param(nil), c.Params...)
	}
	return Menu{state: stateMenu, choices: cs, build: build}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(key)
		case stateConfig:
			return m.configKey(key)
		}
	}
	if m.state == statePlay {
		next, cmd := m.player.Update(msg)
		m.player = next.(Model)
		return m, cmd
	}
	return m, nil
}

func (m Menu) selected() *Choice { return &m.choices[m.cursor] }

func (m Menu) menuKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.choices) > 0 {
			m.state, m.paramCursor, m.err = stateConfig, 0, nil
		}
	}
	return m, nil
}

func (m Menu) configKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	params := m.selected().Params
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				params[m.paramCursor].Value = val
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				if c := s[0]; (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += s
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if len(params) > 0 {
			m.editing, m.editBuf = true, formatParam(params[m.paramCursor].Value)
		}
	case "left", "h":
		if len(params) > 0 {
			params[m.paramCursor].Value -= stepOf(params[m.paramCursor])
		}
	case "right", "l":
		if len(params) > 0 {
			params[m.paramCursor].Value += stepOf(params[m.paramCursor])
		}
	case "s":
		return m.start()
	}
	return m, nil
}

func stepOf(p Param) float64 {
	if p.Step == 0 {
		return 1
	}
	return p.Step
}

func formatParam(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

func (m Menu) start() (Menu, tea.Cmd) {
	c := m.selected()
	values := make(map[string]float64, len(c.Params))
	for _, p := range c.Params {
		values[p.Name] = p.Value
	}
	player, err := m.build(c.Name, values)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.player, m.state, m.err = player, statePlay, nil
	return m, m.player.Init()
}

func (m Menu) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	default:
		return m.player.View()
	}
}

func (m Menu) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("MAZEGEN") + "\n    " + menuSub.Render("perfect maze generator") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, c := range m.choices {
		desc := c.Description
		if len(desc) > 32 {
			desc = desc[:29] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuPointer.Render("▸"), menuSelected.Render(fmt.Sprintf("%-12s", c.Name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuDim.Render(fmt.Sprintf("  %-12s", c.Name)), menuDimmer.Render(desc)))
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m Menu) viewConfig() string {
	c := m.selected()
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render(strings.ToUpper(c.Name)) + "\n    " + menuSub.Render(c.Description) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, p := range c.Params {
		val := fmt.Sprintf("%8s", formatParam(p.Value))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuPointer.Render("▸"), menuSelected.Render(fmt.Sprintf("%-10s", p.Name)), menuDesc.Bold(true).Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", menuDim.Render(fmt.Sprintf("  %-10s", p.Name)), menuDimmer.Render(val)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "h/l", "adjust", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// hints renders key/label pairs.
func hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(menuKey.Render(pairs[i]) + menuDim.Render(" "+pairs[i+1]+"  "))
	}
	return strings.TrimRight(b.String(), " ")
}

// RunMenu shows the menu full screen until the user quits.
func RunMenu(choices []Choice, build BuildFunc) error {
	_, err := tea.NewProgram(NewMenu(choices, build), tea.WithAltScreen()).Run()
	return err
}
