package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-01"

	out, err := executeFacet("version")
	require.NoError(t, err)
	require.Contains(t, out, "facet 1.2.3")
	require.Contains(t, out, "commit: abcdef1")
	require.Contains(t, out, "built: 2026-08-01")
}
