package themes

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/maruel/natural"

	"github.com/facetkit/facet/internal/config"
	faceterrors "github.com/facetkit/facet/pkg/errors"
)

// Install fetches themes from source and places them in the themes
// directory. A source naming a single yaml file installs that file; anything
// else is treated as a git repository (URL or local path) whose theme files
// are installed. Returns the installed theme names in natural order.
func (m *Manager) Install(ctx context.Context, source string) ([]string, error) {
	info, statErr := os.Stat(source)
	if statErr == nil && !info.IsDir() {
		name, err := m.installFile(source)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	tmp, err := os.MkdirTemp("", "facet-themes-*")
	if err != nil {
		return nil, faceterrors.NewInstallError(source, err)
	}
	defer os.RemoveAll(tmp)

	opts := &git.CloneOptions{URL: source}
	if statErr != nil {
		// Shallow clones only for remote sources; the local transport does
		// not serve shallow fetches.
		opts.Depth = 1
	}

	m.log.WithFields(map[string]any{"source": source}).Info("fetching themes")
	if _, err := git.PlainCloneContext(ctx, tmp, false, opts); err != nil {
		return nil, faceterrors.NewInstallError(source, err)
	}

	candidates, err := findThemeFiles(tmp)
	if err != nil {
		return nil, faceterrors.NewInstallError(source, err)
	}
	if len(candidates) == 0 {
		return nil, faceterrors.NewInstallError(source, fmt.Errorf("no theme files found"))
	}

	names := make([]string, 0, len(candidates))
	for _, path := range candidates {
		name, err := m.installFile(path)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names, nil
}

// installFile validates one theme file and writes it into the themes
// directory under its declared name.
func (m *Manager) installFile(path string) (string, error) {
	theme, err := config.ParseTheme(path)
	if err != nil {
		return "", err
	}
	if _, ok := builtin(theme.Name); ok {
		return "", faceterrors.NewInstallError(path,
			fmt.Errorf("theme %q would shadow a built-in theme", theme.Name))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", faceterrors.NewInstallError(path, err)
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", faceterrors.NewInstallError(path, err)
	}
	dest := filepath.Join(m.dir, theme.Name+".yaml")
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", faceterrors.NewInstallError(path, err)
	}

	m.log.WithFields(map[string]any{"theme": theme.Name, "dest": dest}).Info("installed theme")
	return theme.Name, nil
}

// findThemeFiles collects yaml files from the repository root and its
// "themes" directory, skipping hidden directories so CI configuration under
// .github is never mistaken for a theme.
func findThemeFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if rel != "." && rel != "themes" {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := themeFileName(d.Name()); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
