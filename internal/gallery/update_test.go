package gallery

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facet/internal/themes"
)

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestUpdateWindowSize(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 48})
	resized, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 120, resized.width)
	assert.Equal(t, 48, resized.height)
}

func TestUpdateSizeKeyCyclesAndWraps(t *testing.T) {
	m := testModel(t)
	require.Equal(t, "md", m.Size())

	m = press(t, m, 's')
	assert.Equal(t, "lg", m.Size())

	m = press(t, m, 's')
	assert.Equal(t, "sm", m.Size())

	m = press(t, m, 's')
	assert.Equal(t, "md", m.Size())
}

func TestUpdateThemeKeyCycles(t *testing.T) {
	m := testModel(t)
	require.Equal(t, "default", m.ThemeName())

	m = press(t, m, 't')
	assert.Equal(t, "mono", m.ThemeName())

	m = press(t, m, 't')
	assert.Equal(t, "default", m.ThemeName())
}

func TestUpdateThemeKeyKeepsRendererOnLoadFailure(t *testing.T) {
	dir := t.TempDir()
	// Listed under its file name, but the declared name does not match, so
	// loading fails after parsing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: other\n"), 0o600))

	m, err := NewModel(themes.NewManager(dir, nil), "mono", nil)
	require.NoError(t, err)
	before := m.renderer

	for m.ThemeName() != "bad" {
		m = press(t, m, 't')
	}

	assert.NotEmpty(t, m.loadErr)
	assert.Same(t, before, m.renderer)
}

func TestUpdateQuitKey(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdateHelpToggle(t *testing.T) {
	m := testModel(t)
	require.False(t, m.help.ShowAll)

	m = press(t, m, '?')
	assert.True(t, m.help.ShowAll)
}
