package render

import "github.com/charmbracelet/lipgloss"

// Theme supplies the data half of token interpretation: the colors behind
// semantic color slots and the marks behind glyph names. Everything
// structural about a token (its family, its property) is fixed by the
// renderer; a theme only swaps the values, so any theme works with any
// element.
type Theme struct {
	Name   string
	Colors map[string]lipgloss.TerminalColor
	Glyphs map[string]string
}

// Color slot names every theme should cover. Unknown slots in a token are
// ignored at render time, so a sparse theme degrades to unstyled output
// rather than failing.
const (
	SlotSurface = "surface"
	SlotText    = "text"
	SlotMuted   = "muted"
	SlotAccent  = "accent"
	SlotInfo    = "info"
	SlotSuccess = "success"
	SlotWarn    = "warn"
	SlotDanger  = "danger"
)

// Glyph names used by the built-in elements.
const (
	GlyphPlus  = "plus"
	GlyphMinus = "minus"
	GlyphDot   = "dot"
	GlyphCheck = "check"
	GlyphCross = "cross"
	GlyphInfo  = "info"
	GlyphWarn  = "warn"
)

// DefaultTheme returns the built-in theme. Colors adapt to light and dark
// terminal backgrounds, matching the palette conventions used across the
// charm ecosystem.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Name: "default",
		Colors: map[string]lipgloss.TerminalColor{
			SlotSurface: ac("#f9fafb", "#111827"),
			SlotText:    ac("#111827", "#f9fafb"),
			SlotMuted:   ac("#6b7280", "#9ca3af"),
			SlotAccent:  ac("#7c3aed", "#a78bfa"),
			SlotInfo:    ac("#0891b2", "#22d3ee"),
			SlotSuccess: ac("#16a34a", "#4ade80"),
			SlotWarn:    ac("#ca8a04", "#facc15"),
			SlotDanger:  ac("#dc2626", "#f87171"),
		},
		Glyphs: map[string]string{
			GlyphPlus:  "▲",
			GlyphMinus: "▼",
			GlyphDot:   "●",
			GlyphCheck: "✓",
			GlyphCross: "✗",
			GlyphInfo:  "ℹ",
			GlyphWarn:  "⚠",
		},
	}
}

// MonoTheme returns a colorless theme relying on text attributes only.
// Useful for terminals without reliable color support and as a second
// built-in to cycle through in the gallery.
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Colors: map[string]lipgloss.TerminalColor{},
		Glyphs: map[string]string{
			GlyphPlus:  "+",
			GlyphMinus: "-",
			GlyphDot:   "*",
			GlyphCheck: "ok",
			GlyphCross: "x",
			GlyphInfo:  "i",
			GlyphWarn:  "!",
		},
	}
}

// BuiltinThemes lists the themes compiled into the binary, default first.
func BuiltinThemes() []Theme {
	return []Theme{DefaultTheme(), MonoTheme()}
}

// Glyph returns the mark for name, falling back to the default theme's mark
// and then to a placeholder so a missing glyph never breaks layout.
func (t Theme) Glyph(name string) string {
	if mark, ok := t.Glyphs[name]; ok {
		return mark
	}
	if mark, ok := DefaultTheme().Glyphs[name]; ok {
		return mark
	}
	return "?"
}
