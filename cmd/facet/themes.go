package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/facetkit/facet/internal/themes"
	"github.com/facetkit/facet/internal/ui/elements"
	"github.com/facetkit/facet/internal/ui/render"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Manage renderer themes",
	}

	cmd.AddCommand(newThemesListCmd(flags))
	cmd.AddCommand(newThemesShowCmd(flags))
	cmd.AddCommand(newThemesInstallCmd(flags))

	return cmd
}

func newThemesListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesList(cmd, flags)
		},
	}
}

func runThemesList(cmd *cobra.Command, flags *rootFlags) error {
	manager, err := flags.manager(flags.logger())
	if err != nil {
		return fmt.Errorf("failed to locate themes: %w", err)
	}

	entries, err := manager.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE")
	for _, e := range entries {
		source := e.Path
		if e.Builtin {
			source = "built-in"
		}
		fmt.Fprintf(w, "%s\t%s\n", e.Name, source)
	}
	return w.Flush()
}

func newThemesShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Preview a theme's colors and marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesShow(cmd, flags, args[0])
		},
	}
}

// runThemesShow renders a swatch of the named theme: one badge per tone and
// the full glyph row, drawn with that theme's renderer.
func runThemesShow(cmd *cobra.Command, flags *rootFlags, name string) error {
	manager, err := flags.manager(flags.logger())
	if err != nil {
		return fmt.Errorf("failed to locate themes: %w", err)
	}

	theme, err := manager.Load(name)
	if err != nil {
		return err
	}

	tones := elements.NewGroup(
		elements.NewBadge("neutral"),
		elements.NewBadge("accent").WithTone(elements.ToneAccent),
		elements.NewBadge("info").WithTone(elements.ToneInfo),
		elements.NewBadge("success").WithTone(elements.ToneSuccess),
		elements.NewBadge("warn").WithTone(elements.ToneWarn),
		elements.NewBadge("danger").WithTone(elements.ToneDanger),
	).WithGap(1)

	glyphs := elements.NewGroup().WithGap(2)
	for _, g := range []string{
		render.GlyphPlus, render.GlyphMinus, render.GlyphDot,
		render.GlyphCheck, render.GlyphCross, render.GlyphInfo, render.GlyphWarn,
	} {
		glyphs.Add(elements.NewGlyph(g).WithTone(elements.ToneAccent))
	}

	ctx := elements.Context{Renderer: render.New(theme)}
	swatch := elements.NewGroup(tones, glyphs).WithLayout(elements.LayoutStack)

	view, err := swatch.Render(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Name)
	fmt.Fprintln(out, view)
	return nil
}

func newThemesInstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "install <source>",
		Short: "Install themes from a git repository or a theme file",
		Long:  `Install themes into the themes directory. The source may be a git URL, a local repository path, or a single theme file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesInstall(cmd, flags, args[0])
		},
	}
}

func runThemesInstall(cmd *cobra.Command, flags *rootFlags, source string) error {
	manager, err := flags.manager(flags.logger())
	if err != nil {
		return fmt.Errorf("failed to locate themes: %w", err)
	}

	names, err := manager.Install(cmd.Context(), source)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", strings.Join(names, ", "))
	return nil
}
