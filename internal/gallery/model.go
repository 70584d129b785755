// Package gallery is the interactive element showcase. It renders every
// element family under the active theme, with the ambient size driven by a
// cascade scope so one keystroke resizes the whole tree.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facetkit/facet/internal/logger"
	"github.com/facetkit/facet/internal/themes"
	"github.com/facetkit/facet/internal/ui/elements"
	"github.com/facetkit/facet/internal/ui/render"
)

// sizeCycle is the order the size key steps through.
var sizeCycle = []string{elements.SizeSM, elements.SizeMD, elements.SizeLG}

// Model is the gallery's bubbletea model.
type Model struct {
	// Theme state
	manager    *themes.Manager
	themeNames []string
	themeIdx   int
	renderer   *render.Renderer

	// UI state
	sizeIdx int
	keys    KeyMap
	help    help.Model
	loadErr string

	// Dimensions
	width  int
	height int

	log *logger.Logger
}

// NewModel creates a gallery over the manager's themes, starting on the
// requested theme (or the default when empty).
func NewModel(manager *themes.Manager, startTheme string, log *logger.Logger) (Model, error) {
	entries, err := manager.List()
	if err != nil {
		return Model{}, err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	idx := 0
	if startTheme != "" {
		for i, name := range names {
			if name == startTheme {
				idx = i
				break
			}
		}
	}

	theme, err := manager.Load(names[idx])
	if err != nil {
		return Model{}, err
	}

	m := Model{
		manager:    manager,
		themeNames: names,
		themeIdx:   idx,
		renderer:   render.New(theme),
		sizeIdx:    1, // md
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		log:        log,
	}
	return m, nil
}

// Init implements tea.Model. The gallery has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// ThemeName returns the active theme's name.
func (m Model) ThemeName() string {
	return m.themeNames[m.themeIdx]
}

// Size returns the ambient size the gallery scope carries.
func (m Model) Size() string {
	return sizeCycle[m.sizeIdx]
}
