package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facetkit/facet/internal/ui/render"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSize):
			m.sizeIdx = (m.sizeIdx + 1) % len(sizeCycle)
			return m, nil

		case key.Matches(msg, m.keys.NextTheme):
			return m.nextTheme(), nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

// nextTheme advances to the next theme, keeping the current renderer when
// the load fails and surfacing the failure in the footer.
func (m Model) nextTheme() Model {
	m.themeIdx = (m.themeIdx + 1) % len(m.themeNames)
	name := m.themeNames[m.themeIdx]

	theme, err := m.manager.Load(name)
	if err != nil {
		m.log.Error(err, "theme load failed")
		m.loadErr = err.Error()
		return m
	}

	m.loadErr = ""
	m.renderer = render.New(theme)
	return m
}
