package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetkit/facet/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme-file>...",
		Short: "Validate theme files without installing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string) error {
	for _, path := range paths {
		theme, err := config.ParseTheme(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: theme %q ok\n", path, theme.Name)
	}
	return nil
}
