package themes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facet/internal/ui/render"
	faceterrors "github.com/facetkit/facet/pkg/errors"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir(), nil)
}

func writeTheme(t *testing.T, m *Manager, file, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(m.Dir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), file), []byte(contents), 0o600))
}

func TestListWithoutThemesDir(t *testing.T) {
	t.Parallel()

	m := NewManager(filepath.Join(t.TempDir(), "missing"), nil)
	entries, err := m.List()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "default", entries[0].Name)
	require.True(t, entries[0].Builtin)
	require.Equal(t, "mono", entries[1].Name)
}

func TestListOrdersUserThemesNaturally(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "term10.yaml", "name: term10\n")
	writeTheme(t, m, "term2.yaml", "name: term2\n")
	writeTheme(t, m, "notes.txt", "not a theme")

	entries, err := m.List()
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.Builtin {
			names = append(names, e.Name)
		}
	}
	require.Equal(t, []string{"term2", "term10"}, names)
}

func TestLoadBuiltin(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	theme, err := m.Load("mono")

	require.NoError(t, err)
	require.Equal(t, "mono", theme.Name)
	require.Equal(t, "+", theme.Glyphs[render.GlyphPlus])
}

func TestLoadUserThemeOverlaysDefault(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "nord.yaml", `name: nord
colors:
  accent:
    light: "#5e81ac"
    dark: "#88c0d0"
glyphs:
  dot: "•"
`)

	theme, err := m.Load("nord")
	require.NoError(t, err)

	require.Equal(t, "nord", theme.Name)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}, theme.Colors[render.SlotAccent])
	require.Equal(t, "•", theme.Glyphs[render.GlyphDot])

	// Slots the file does not set keep the default theme's colors.
	require.Equal(t, render.DefaultTheme().Colors[render.SlotDanger], theme.Colors[render.SlotDanger])
}

func TestLoadFollowsExtendsChain(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "base.yaml", `name: base
colors:
  accent: "#111111"
  info: "#222222"
`)
	writeTheme(t, m, "child.yaml", `name: child
extends: base
colors:
  accent: "#333333"
`)

	theme, err := m.Load("child")
	require.NoError(t, err)

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#333333", Dark: "#333333"}, theme.Colors[render.SlotAccent])
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#222222", Dark: "#222222"}, theme.Colors[render.SlotInfo])
}

func TestLoadExtendsMono(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "marks.yaml", `name: marks
extends: mono
glyphs:
  check: "√"
`)

	theme, err := m.Load("marks")
	require.NoError(t, err)

	require.Equal(t, "√", theme.Glyphs[render.GlyphCheck])
	require.Equal(t, "+", theme.Glyphs[render.GlyphPlus])
}

func TestLoadRejectsExtendsCycle(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "a.yaml", "name: a\nextends: b\n")
	writeTheme(t, m, "b.yaml", "name: b\nextends: a\n")

	_, err := m.Load("a")

	var validationErr *faceterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "cycle")
}

func TestLoadRejectsNameMismatch(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "alias.yaml", "name: other\n")

	_, err := m.Load("alias")

	var validationErr *faceterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "declares theme")
}

func TestLoadMissingTheme(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	_, err := m.Load("ghost")

	var parseErr *faceterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadYmlExtension(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	writeTheme(t, m, "short.yml", "name: short\n")

	theme, err := m.Load("short")
	require.NoError(t, err)
	require.Equal(t, "short", theme.Name)
}
