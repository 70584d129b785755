package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("nord.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "nord.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "nord.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("nord.yaml", 0, fmt.Errorf("empty document"))

	require.Contains(t, err.Error(), "nord.yaml: empty document")
	require.NotContains(t, err.Error(), ":0")
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors.accent", "not a hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.accent", validationErr.Field)
	require.Contains(t, validationErr.Message, "not a hex color")
}

func TestInstallErrorIncludesSource(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("authentication required")
	err := NewInstallError("https://github.com/acme/themes.git", underlying)

	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	require.Equal(t, "https://github.com/acme/themes.git", installErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
}
