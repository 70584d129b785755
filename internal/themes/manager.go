// Package themes finds, loads, and installs renderer themes.
//
// Built-in themes ship with the binary; user themes are yaml files in a
// themes directory, one file per theme, named <theme>.yaml. A user theme may
// extend another theme, in which case its color and glyph maps overlay the
// resolved parent; a theme with no parent overlays the built-in default, so
// sparse files stay usable.
package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maruel/natural"

	"github.com/facetkit/facet/internal/config"
	"github.com/facetkit/facet/internal/logger"
	"github.com/facetkit/facet/internal/ui/render"
	faceterrors "github.com/facetkit/facet/pkg/errors"
)

// Manager resolves theme names against the built-ins and a themes directory.
type Manager struct {
	dir string
	log *logger.Logger
}

// NewManager creates a manager over dir. The directory may not exist yet;
// List treats that as "no user themes" and Install creates it.
func NewManager(dir string, log *logger.Logger) *Manager {
	return &Manager{dir: dir, log: log}
}

// DefaultDir returns the per-user themes directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "facet", "themes"), nil
}

// Dir returns the themes directory the manager reads from.
func (m *Manager) Dir() string {
	return m.dir
}

// Entry describes one available theme.
type Entry struct {
	Name    string
	Path    string
	Builtin bool
}

// List returns the available themes: built-ins first in their fixed order,
// then user themes in natural name order.
func (m *Manager) List() ([]Entry, error) {
	entries := make([]Entry, 0, 4)
	for _, t := range render.BuiltinThemes() {
		entries = append(entries, Entry{Name: t.Name, Builtin: true})
	}

	files, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("cannot read themes directory %s: %w", m.dir, err)
	}

	names := make([]string, 0, len(files))
	paths := make(map[string]string, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name, ok := themeFileName(f.Name())
		if !ok {
			continue
		}
		names = append(names, name)
		paths[name] = filepath.Join(m.dir, f.Name())
	}
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		entries = append(entries, Entry{Name: name, Path: paths[name]})
	}
	return entries, nil
}

// Load resolves name into a renderer theme. Built-in names win over files of
// the same name.
func (m *Manager) Load(name string) (render.Theme, error) {
	return m.load(name, map[string]bool{})
}

func (m *Manager) load(name string, seen map[string]bool) (render.Theme, error) {
	if t, ok := builtin(name); ok {
		return t, nil
	}

	if seen[name] {
		return render.Theme{}, faceterrors.NewValidationError("extends",
			fmt.Sprintf("theme extension cycle through %q", name), nil)
	}
	seen[name] = true

	path := m.themePath(name)
	file, err := config.ParseTheme(path)
	if err != nil {
		return render.Theme{}, err
	}
	if file.Name != name {
		return render.Theme{}, faceterrors.NewValidationError("name",
			fmt.Sprintf("file %s declares theme %q", path, file.Name), nil)
	}

	parent := render.DefaultTheme()
	if file.Extends != "" {
		parent, err = m.load(file.Extends, seen)
		if err != nil {
			return render.Theme{}, err
		}
	}

	m.log.WithFields(map[string]any{"theme": name, "path": path}).Debug("loaded theme file")
	return overlay(parent, file), nil
}

// overlay applies a theme file on top of a resolved base theme.
func overlay(base render.Theme, file *config.ThemeFile) render.Theme {
	out := render.Theme{
		Name:   file.Name,
		Colors: make(map[string]lipgloss.TerminalColor, len(base.Colors)+len(file.Colors)),
		Glyphs: make(map[string]string, len(base.Glyphs)+len(file.Glyphs)),
	}
	for slot, color := range base.Colors {
		out.Colors[slot] = color
	}
	for name, mark := range base.Glyphs {
		out.Glyphs[name] = mark
	}
	for slot, pair := range file.Colors {
		out.Colors[slot] = lipgloss.AdaptiveColor{Light: pair.Light, Dark: pair.Dark}
	}
	for name, mark := range file.Glyphs {
		out.Glyphs[name] = mark
	}
	return out
}

// themePath locates the file behind a theme name, preferring .yaml over
// .yml. A missing theme resolves to the .yaml path so the caller's error
// names the expected location.
func (m *Manager) themePath(name string) string {
	yamlPath := filepath.Join(m.dir, name+".yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	ymlPath := filepath.Join(m.dir, name+".yml")
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}
	return yamlPath
}

func builtin(name string) (render.Theme, bool) {
	for _, t := range render.BuiltinThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return render.Theme{}, false
}

// themeFileName extracts the theme name from a directory entry, accepting
// .yaml and .yml files.
func themeFileName(file string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(file, ext) {
			return strings.TrimSuffix(file, ext), true
		}
	}
	return "", false
}
