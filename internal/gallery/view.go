package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facetkit/facet/internal/ui/elements"
	"github.com/facetkit/facet/internal/ui/render"
)

// View implements tea.Model. The whole body renders under one cascade scope
// carrying the selected size, so a size change reflows every element at once.
func (m Model) View() string {
	ctx := elements.Context{Renderer: m.renderer}.WithSize(m.Size())

	sections := []string{
		m.headerView(ctx),
		sectionView(ctx, "labels", labelShowcase()),
		sectionView(ctx, "badges", badgeShowcase()),
		sectionView(ctx, "chips", chipShowcase()),
		sectionView(ctx, "deltas", deltaShowcase()),
		sectionView(ctx, "sizing", sizingShowcase()),
		sectionView(ctx, "banners", bannerShowcase()),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return body + "\n" + m.footerView(ctx) + "\n"
}

func (m Model) headerView(ctx elements.Context) string {
	title := elements.NewLabel("facet gallery").
		WithTone(elements.ToneAccent).
		WithSize(elements.SizeLG)
	status := elements.NewLabel("theme "+m.ThemeName()+"  size "+m.Size()).
		WithTone(elements.ToneMuted).
		WithSize(elements.SizeSM)

	return renderView(ctx, title) + "\n" + renderView(ctx, status) + "\n"
}

func (m Model) footerView(ctx elements.Context) string {
	var parts []string
	if m.loadErr != "" {
		alert := elements.NewLabel(m.loadErr).
			WithTone(elements.ToneDanger).
			WithSize(elements.SizeSM)
		parts = append(parts, renderView(ctx, alert))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func sectionView(ctx elements.Context, title string, content elements.Element) string {
	heading := elements.NewLabel(title).
		WithTone(elements.ToneMuted).
		WithSize(elements.SizeSM)
	return renderView(ctx, heading) + "\n" + renderView(ctx, content) + "\n"
}

// renderView draws an element, surfacing a resolution failure inline rather
// than crashing the program loop.
func renderView(ctx elements.Context, el elements.Element) string {
	out, err := el.Render(ctx)
	if err != nil {
		return "render error: " + err.Error()
	}
	return out
}

func labelShowcase() elements.Element {
	tones := []string{
		elements.ToneNeutral, elements.ToneMuted, elements.ToneAccent,
		elements.ToneInfo, elements.ToneSuccess, elements.ToneWarn, elements.ToneDanger,
	}
	group := elements.NewGroup().WithGap(2)
	for _, tone := range tones {
		group.Add(elements.NewLabel(tone).WithTone(tone))
	}
	return group
}

func badgeShowcase() elements.Element {
	return elements.NewGroup(
		elements.NewBadge("ready").WithTone(elements.ToneSuccess),
		elements.NewBadge("syncing").WithTone(elements.ToneInfo),
		elements.NewBadge("degraded").WithTone(elements.ToneWarn),
		elements.NewBadge("failed").WithTone(elements.ToneDanger),
		elements.NewBadge("paused"),
	).WithGap(1)
}

func chipShowcase() elements.Element {
	return elements.NewGroup(
		elements.NewChip("feature").WithTone(elements.ToneAccent),
		elements.NewChip("passing").WithTone(elements.ToneSuccess).WithGlyph(render.GlyphCheck),
		elements.NewChip("flaky").WithTone(elements.ToneWarn).WithGlyph(render.GlyphWarn),
		elements.NewChip("broken").WithTone(elements.ToneDanger).WithGlyph(render.GlyphCross),
	).WithGap(1)
}

func deltaShowcase() elements.Element {
	return elements.NewGroup(
		elements.NewDelta(12),
		elements.NewDelta(-3),
		elements.NewDelta(-15).WithSize(elements.SizeLG),
	).WithGap(2)
}

// sizingShowcase puts the three precedence levels side by side: the first
// badge follows the ambient scope, the second pins its own size, the third
// sits under a nested scope.
func sizingShowcase() elements.Element {
	return elements.NewGroup(
		elements.NewBadge("ambient"),
		elements.NewBadge("pinned sm").WithSize(elements.SizeSM),
		elements.NewGroup(
			elements.NewBadge("scoped lg"),
		).WithSize(elements.SizeLG),
	).WithGap(2)
}

func bannerShowcase() elements.Element {
	return elements.NewGroup(
		elements.NewBanner("themes reloaded from disk").WithTone(elements.ToneSuccess),
		elements.NewBanner("terminal below minimum width").WithTone(elements.ToneWarn),
	).WithLayout(elements.LayoutStack)
}
