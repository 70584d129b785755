package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

var chipSchema = variant.MustCompile(variant.Def{
	Name: "chip",
	Base: []string{"pad-x-1"},
	Axes: []variant.AxisDef{
		{
			// No default: a chip's tone carries meaning, so leaving it
			// unset is a configuration error rather than a silent neutral.
			Name:   "tone",
			Values: toneValues(),
		},
		{
			Name: "size",
			Values: sizeValues(
				[]string{"text-xs"},
				[]string{"text-sm"},
				[]string{"text-lg"},
			),
			Default: SizeMD,
		},
	},
})

// Chip is an outlined tag: a leading mark plus a short text run, both in the
// chip's tone color. Unlike the other tonal elements the tone axis is
// required; construct chips through WithTone.
type Chip struct {
	Core
	text  string
	glyph string
}

// NewChip creates a chip showing text with the default dot mark. Set a tone
// with WithTone before rendering.
func NewChip(text string) *Chip {
	return &Chip{text: text, glyph: render.GlyphDot}
}

// WithTone sets the chip's color tone. A chip without a tone fails to
// resolve.
func (c *Chip) WithTone(tone string) *Chip {
	c.setAxis("tone", tone)
	return c
}

// WithSize sets an explicit size, overriding any inherited one.
func (c *Chip) WithSize(size string) *Chip {
	c.setAxis("size", size)
	return c
}

// WithGlyph replaces the leading mark with the named glyph.
func (c *Chip) WithGlyph(name string) *Chip {
	c.glyph = name
	return c
}

// WithClass appends extra class tokens after the schema tokens.
func (c *Chip) WithClass(class string) *Chip {
	c.setClass(class)
	return c
}

// WithAttr forwards an attribute verbatim onto the output node.
func (c *Chip) WithAttr(key, value string) *Chip {
	c.setAttr(key, value)
	return c
}

// WithRef binds ref to the chip's root node on each render pass.
func (c *Chip) WithRef(ref *NodeRef) *Chip {
	c.setRef(ref)
	return c
}

// Node produces the chip's render node for ctx: the mark and the text as
// plain children under a root that carries the tone and size styling.
func (c *Chip) Node(ctx Context) (*render.Node, error) {
	tokens, _, err := c.resolve(ctx, chipSchema, Size)
	if err != nil {
		return nil, err
	}
	n := c.emit(tokens)
	n.Children = []*render.Node{
		{Text: ctx.Renderer.Theme().Glyph(c.glyph)},
		{Text: c.text},
	}
	return n, nil
}

// Render draws the chip through ctx's renderer.
func (c *Chip) Render(ctx Context) (string, error) {
	return renderElement(ctx, c)
}

// View draws the chip with the default context.
func (c *Chip) View() string {
	return mustView(c)
}

var _ Element = (*Chip)(nil)
