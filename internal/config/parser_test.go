package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	faceterrors "github.com/facetkit/facet/pkg/errors"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()

	validYAML := `name: nord
colors:
  accent:
    light: "#5e81ac"
    dark: "#88c0d0"
  danger: "#bf616a"
glyphs:
  check: "✔"
`

	invalidYAML := `name: [broken
colors: {`

	badColor := `name: nord
colors:
  accent:
    light: "blue"
    dark: "#88c0d0"
`

	unknownSlot := `name: nord
colors:
  sparkle: "#aa00ff"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, theme *ThemeFile, err error)
	}{
		{
			name:     "valid theme is parsed",
			contents: validYAML,
			assert: func(t *testing.T, theme *ThemeFile, err error) {
				require.NoError(t, err)
				require.NotNil(t, theme)
				require.Equal(t, "nord", theme.Name)
				require.Equal(t, "#5e81ac", theme.Colors["accent"].Light)
				require.Equal(t, "#88c0d0", theme.Colors["accent"].Dark)
				require.Equal(t, "✔", theme.Glyphs["check"])
			},
		},
		{
			name:     "scalar color fills both backgrounds",
			contents: validYAML,
			assert: func(t *testing.T, theme *ThemeFile, err error) {
				require.NoError(t, err)
				require.Equal(t, "#bf616a", theme.Colors["danger"].Light)
				require.Equal(t, "#bf616a", theme.Colors["danger"].Dark)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, theme *ThemeFile, err error) {
				require.Error(t, err)
				var parseErr *faceterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "non-hex color returns validation error",
			contents: badColor,
			assert: func(t *testing.T, theme *ThemeFile, err error) {
				require.Error(t, err)
				var validationErr *faceterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hexcolor")
			},
		},
		{
			name:     "unknown slot returns validation error",
			contents: unknownSlot,
			assert: func(t *testing.T, theme *ThemeFile, err error) {
				require.Error(t, err)
				var validationErr *faceterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "colors.sparkle", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempTheme(t, tc.contents)
			theme, err := ParseTheme(path)
			tc.assert(t, theme, err)
		})
	}
}

func TestParseThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *faceterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeTempTheme(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
