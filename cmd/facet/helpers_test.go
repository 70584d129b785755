package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeFacet runs the root command with args and returns its combined
// output. Output lands in a buffer rather than a terminal, so theme
// auto-selection falls back to mono and rendered text carries no color
// sequences.
func executeFacet(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeThemeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const nordTheme = `name: nord
colors:
  accent:
    light: "#5e81ac"
    dark: "#81a1c1"
glyphs:
  dot: "*"
`
