// Package render interprets resolved style tokens and draws element nodes to
// the terminal. It is the one place in the repository where tokens acquire
// visual meaning: the element layer only orders and merges them.
//
// Interpretation follows the stylesheet convention the element layer relies
// on: tokens apply in list order and the last occurrence of a visual property
// wins, so a caller's override tokens (always appended last) take precedence
// over an element's computed tokens. Tokens the renderer does not recognize
// are ignored, which keeps the vocabulary open-ended.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws nodes using one theme's colors and glyphs. Create it with
// New; a Renderer is read-only after creation.
type Renderer struct {
	theme Theme
}

// New creates a renderer for the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Theme returns the theme the renderer draws with.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Render draws a node tree to a string. Leaf nodes render their text with
// their token style; container nodes render children joined horizontally, or
// vertically when the token list carries "stack", separated by the last
// "gap-N" token's width.
func (r *Renderer) Render(node *Node) string {
	if node == nil {
		return ""
	}

	content := node.Text
	if len(node.Children) > 0 {
		parts := make([]string, 0, len(node.Children))
		for _, child := range node.Children {
			parts = append(parts, r.Render(child))
		}

		sep := strings.Repeat(" ", gapWidth(node.Tokens))
		if stacked(node.Tokens) {
			content = lipgloss.JoinVertical(lipgloss.Left, parts...)
		} else {
			content = lipgloss.JoinHorizontal(lipgloss.Center, interleave(parts, sep)...)
		}
	}

	return r.styleFor(node.Tokens).Render(content)
}

// DrawGlyph renders the named glyph mark with a size token and a color
// token. It is the glyph primitive consumed by elements that show a mark.
func (r *Renderer) DrawGlyph(name, sizeToken, colorToken string) string {
	return r.styleFor([]string{sizeToken, colorToken}).Render(r.theme.Glyph(name))
}

// DrawText renders content with a semantic color token. It is the text
// primitive consumed by elements that show a label.
func (r *Renderer) DrawText(content, colorToken string) string {
	return r.styleFor([]string{colorToken}).Render(content)
}

// styleFor folds a token list into a lipgloss style. Sequential application
// implements last-occurrence-wins: a later token for the same property
// overwrites what an earlier one set.
func (r *Renderer) styleFor(tokens []string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, token := range tokens {
		st = r.applyToken(st, token)
	}
	return st
}

func (r *Renderer) applyToken(st lipgloss.Style, token string) lipgloss.Style {
	switch token {
	case "bold":
		return st.Bold(true)
	case "faint":
		return st.Faint(true)
	case "italic":
		return st.Italic(true)
	case "underline":
		return st.Underline(true)
	case "strike":
		return st.Strikethrough(true)
	case "reverse":
		return st.Reverse(true)

	// The typographic scale is one property: each step assigns the full
	// weight state so the last scale token wins outright.
	case "text-xs":
		return st.Faint(true).Bold(false)
	case "text-sm", "text-md":
		return st.Faint(false).Bold(false)
	case "text-lg":
		return st.Faint(false).Bold(true)

	case "border-none":
		return st.Border(lipgloss.Border{})
	case "border-normal":
		return st.Border(lipgloss.NormalBorder())
	case "border-rounded":
		return st.Border(lipgloss.RoundedBorder())
	case "border-thick":
		return st.Border(lipgloss.ThickBorder())
	case "border-double":
		return st.Border(lipgloss.DoubleBorder())
	}

	if slot, ok := strings.CutPrefix(token, "fg-"); ok {
		if color, found := r.theme.Colors[slot]; found {
			return st.Foreground(color)
		}
		return st
	}
	if slot, ok := strings.CutPrefix(token, "bg-"); ok {
		if color, found := r.theme.Colors[slot]; found {
			return st.Background(color)
		}
		return st
	}
	if slot, ok := strings.CutPrefix(token, "border-fg-"); ok {
		if color, found := r.theme.Colors[slot]; found {
			return st.BorderForeground(color)
		}
		return st
	}
	if n, ok := tokenValue(token, "pad-x-"); ok {
		return st.PaddingLeft(n).PaddingRight(n)
	}
	if n, ok := tokenValue(token, "pad-y-"); ok {
		return st.PaddingTop(n).PaddingBottom(n)
	}
	if n, ok := tokenValue(token, "w-"); ok {
		return st.Width(n)
	}

	// Layout tokens (stack, row, gap-N) and anything unrecognized are
	// no-ops for the style itself.
	return st
}

func tokenValue(token, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// gapWidth returns the width of the last gap-N token, defaulting to one
// space between siblings.
func gapWidth(tokens []string) int {
	gap := 1
	for _, token := range tokens {
		if n, ok := tokenValue(token, "gap-"); ok {
			gap = n
		}
	}
	return gap
}

// stacked reports the layout direction: the last of "stack"/"row" wins,
// defaulting to a horizontal row.
func stacked(tokens []string) bool {
	vertical := false
	for _, token := range tokens {
		switch token {
		case "stack":
			vertical = true
		case "row":
			vertical = false
		}
	}
	return vertical
}

func interleave(parts []string, sep string) []string {
	if sep == "" || len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
