package viz

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mazegen/internal/grid"
)

func pressMenu(m Menu, key string) Menu {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Menu)
}

func TestMenuFlow(t *testing.T) {
	choices := []Choice{
		{Name: "small", Params: []Param{{Name: "width", Value: 4, Step: 1}, {Name: "height", Value: 3, Step: 1}}},
		{Name: "wide", Params: []Param{{Name: "width", Value: 40, Step: 1}}},
	}
	var got map[string]float64
	var gotName string
	build := func(name string, params map[string]float64) (Model, error) {
		gotName, got = name, params
		g, err := grid.New(int(params["width"]), int(params["height"]))
		if err != nil {
			return Model{}, err
		}
		return NewModel(g, grid.Cell{}, nil, nil, DefaultOptions())
	}

	m := NewMenu(choices, build)
	m = pressMenu(m, "enter")
	if m.state != stateConfig {
		t.Fatalf("state = %d, want config", m.state)
	}
	m = pressMenu(m, "l")
	m = pressMenu(m, "j")
	m = pressMenu(m, "h")
	m = pressMenu(m, "s")

	if m.state != statePlay {
		t.Fatalf("state = %d, want play (err %v)", m.state, m.err)
	}
	if gotName != "small" || got["width"] != 5 || got["height"] != 2 {
		t.Errorf("build got %s %v", gotName, got)
	}
	if choices[0].Params[0].Value != 4 {
		t.Error("menu edited the caller's choices")
	}
}

func TestMenuBuildError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMenu([]Choice{{Name: "x"}}, func(string, map[string]float64) (Model, error) {
		return Model{}, boom
	})
	m = pressMenu(m, "enter")
	m = pressMenu(m, "s")
	if m.state != stateConfig || !errors.Is(m.err, boom) {
		t.Errorf("state %d err %v", m.state, m.err)
	}
}

func TestMenuEditValue(t *testing.T) {
	m := NewMenu([]Choice{{Name: "x", Params: []Param{{Name: "bias", Value: 0.99}}}}, nil)
	m = pressMenu(m, "enter")
	m = pressMenu(m, "enter")
	if !m.editing || m.editBuf != "0.99" {
		t.Fatalf("editing %v buf %q", m.editing, m.editBuf)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Menu)
	m = pressMenu(m, "5")
	m = pressMenu(m, "enter")
	if v := m.choices[0].Params[0].Value; v != 0.95 {
		t.Errorf("value = %v, want 0.95", v)
	}
}
