package themes

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	faceterrors "github.com/facetkit/facet/pkg/errors"
)

// themeRepo builds a local git repository holding the given files, committed
// so a clone sees them.
func themeRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)

	for name, contents := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
		_, err = w.Add(name)
		require.NoError(t, err)
	}

	_, err = w.Commit("add themes", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestInstallFromRepo(t *testing.T) {
	t.Parallel()

	source := themeRepo(t, map[string]string{
		"nord.yaml":         "name: nord\n",
		"themes/rose.yaml":  "name: rose\n",
		"README.md":         "themes\n",
		".github/ci.yml":    "not a theme\n",
		"docs/ignored.yaml": "name: ignored\n",
	})

	m := testManager(t)
	names, err := m.Install(context.Background(), source)

	require.NoError(t, err)
	require.Equal(t, []string{"nord", "rose"}, names)

	for _, name := range names {
		theme, err := m.Load(name)
		require.NoError(t, err)
		require.Equal(t, name, theme.Name)
	}
}

func TestInstallFromRepoWithoutThemes(t *testing.T) {
	t.Parallel()

	source := themeRepo(t, map[string]string{"README.md": "empty\n"})

	m := testManager(t)
	_, err := m.Install(context.Background(), source)

	var installErr *faceterrors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Contains(t, installErr.Message, "no theme files")
}

func TestInstallSingleFile(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "solar.yaml")
	require.NoError(t, os.WriteFile(src, []byte("name: solar\n"), 0o600))

	m := testManager(t)
	names, err := m.Install(context.Background(), src)

	require.NoError(t, err)
	require.Equal(t, []string{"solar"}, names)

	_, err = m.Load("solar")
	require.NoError(t, err)
}

func TestInstallRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(src, []byte("name: Broken Name\n"), 0o600))

	m := testManager(t)
	_, err := m.Install(context.Background(), src)

	var validationErr *faceterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestInstallRejectsBuiltinShadow(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(src, []byte("name: default\n"), 0o600))

	m := testManager(t)
	_, err := m.Install(context.Background(), src)

	var installErr *faceterrors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Contains(t, installErr.Message, "shadow")
}

func TestInstallFromMissingSource(t *testing.T) {
	t.Parallel()

	m := testManager(t)
	_, err := m.Install(context.Background(), filepath.Join(t.TempDir(), "nowhere"))

	var installErr *faceterrors.InstallError
	require.ErrorAs(t, err, &installErr)
}
