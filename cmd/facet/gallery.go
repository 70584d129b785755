package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facetkit/facet/internal/gallery"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery [theme]",
		Short: "Open the interactive element gallery",
		Long:  `Open the gallery: every element family under the active theme, with keys to cycle themes and the ambient size.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := flags.theme
			if len(args) == 1 {
				start = args[0]
			}
			return runGallery(cmd, flags, start)
		},
	}

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, startTheme string) error {
	log := flags.logger()

	manager, err := flags.manager(log)
	if err != nil {
		return fmt.Errorf("failed to locate themes: %w", err)
	}

	m, err := gallery.NewModel(manager, startTheme, log)
	if err != nil {
		return fmt.Errorf("failed to build gallery: %w", err)
	}

	log.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	log.Info("gallery closed")
	return nil
}
