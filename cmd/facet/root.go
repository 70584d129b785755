package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/facetkit/facet/internal/logger"
	"github.com/facetkit/facet/internal/themes"
	"github.com/facetkit/facet/internal/ui/render"
)

type rootFlags struct {
	verbose   bool
	themesDir string
	theme     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "facet",
		Short:         "Facet renders themed terminal UI elements",
		Long: `Facet is a terminal UI element kit: labels, badges, chips, deltas, and
banners that resolve their look through declarative variant schemas and a
size cascade. Run without arguments to open the interactive gallery.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the gallery
			if len(args) == 0 {
				return runGallery(cmd, flags, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themesDir, "themes-dir", "", "Directory holding installed themes (defaults to the user config dir)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme to render with (defaults to \"default\" on a terminal, \"mono\" otherwise)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger: silent unless verbose was requested.
func (f *rootFlags) logger() *logger.Logger {
	if !f.verbose {
		return logger.Disabled()
	}

	log, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return logger.Disabled()
	}
	return log
}

// manager builds the theme manager over the flag-selected directory.
func (f *rootFlags) manager(log *logger.Logger) (*themes.Manager, error) {
	dir := f.themesDir
	if dir == "" {
		var err error
		dir, err = themes.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return themes.NewManager(dir, log), nil
}

// themeName resolves the theme to render with. Without an explicit flag the
// default theme is used on a terminal and mono when output is piped, so
// redirected output never carries unicode marks the consumer may not want.
func (f *rootFlags) themeName(out any) string {
	if f.theme != "" {
		return f.theme
	}
	if supportsUnicode(out) {
		return "default"
	}
	return "mono"
}

// renderer loads the selected theme into a renderer.
func (f *rootFlags) renderer(m *themes.Manager, out any) (*render.Renderer, error) {
	theme, err := m.Load(f.themeName(out))
	if err != nil {
		return nil, err
	}
	return render.New(theme), nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
