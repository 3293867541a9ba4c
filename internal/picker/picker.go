// Package picker is the interactive candidate chooser used by
// set-default when a city name is ambiguous.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weathr/internal/geo"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type Model struct {
	query  string
	places []geo.Place
	cursor int
	choice *geo.Place
	done   bool
}

func New(query string, places []geo.Place) Model {
	return Model{query: query, places: places}
}

// Choice is the selected place, if any.
func (m Model) Choice() (geo.Place, bool) {
	if m.choice == nil {
		return geo.Place{}, false
	}
	return *m.choice, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.places)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choice = &m.places[m.cursor]
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + white.Render(fmt.Sprintf("%d places match ", len(m.places))) +
		cyan.Render(m.query) + "\n\n")

	for i, p := range m.places {
		coords := fmt.Sprintf("%.2f, %.2f", p.Latitude, p.Longitude)
		if i == m.cursor {
			b.WriteString("    " + cyan.Render("▸ ") +
				white.Render(fmt.Sprintf("%-32s", p.Label())) + dim.Render(coords) + "\n")
		} else {
			b.WriteString("      " +
				dim.Render(fmt.Sprintf("%-32s", p.Label())) + dimmer.Render(coords) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("    ↑↓ select   enter choose   q cancel") + "\n")

	return b.String()
}

// Choose runs the picker and returns the selection. A single candidate
// is returned directly without the interactive step.
func Choose(query string, places []geo.Place) (geo.Place, bool, error) {
	if len(places) == 0 {
		return geo.Place{}, false, nil
	}
	if len(places) == 1 {
		return places[0], true, nil
	}

	final, err := tea.NewProgram(New(query, places)).Run()
	if err != nil {
		return geo.Place{}, false, fmt.Errorf("running location picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return geo.Place{}, false, nil
	}
	place, chosen := m.Choice()
	return place, chosen, nil
}
