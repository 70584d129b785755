package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

var glyphSchema = variant.MustCompile(variant.Def{
	Name: "glyph",
	Axes: []variant.AxisDef{
		{
			Name:    "tone",
			Values:  toneValues(),
			Default: ToneNeutral,
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

// Glyph shows a single themed mark by glyph name. The active theme decides
// the literal character, so the same element renders "✓" under the default
// theme and "ok" under the mono theme.
type Glyph struct {
	Core
	name string
}

// NewGlyph creates a glyph element for the named mark.
func NewGlyph(name string) *Glyph {
	return &Glyph{name: name}
}

// WithTone sets the glyph's color tone.
func (g *Glyph) WithTone(tone string) *Glyph {
	g.setAxis("tone", tone)
	return g
}

// WithSize sets an explicit size, overriding any inherited one.
func (g *Glyph) WithSize(size string) *Glyph {
	g.setAxis("size", size)
	return g
}

// WithClass appends extra class tokens after the schema tokens.
func (g *Glyph) WithClass(class string) *Glyph {
	g.setClass(class)
	return g
}

// WithAttr forwards an attribute verbatim onto the output node.
func (g *Glyph) WithAttr(key, value string) *Glyph {
	g.setAttr(key, value)
	return g
}

// WithRef binds ref to the glyph's root node on each render pass.
func (g *Glyph) WithRef(ref *NodeRef) *Glyph {
	g.setRef(ref)
	return g
}

// Node produces the glyph's render node for ctx. The theme mark is looked up
// at node-build time so theme switches between passes take effect.
func (g *Glyph) Node(ctx Context) (*render.Node, error) {
	tokens, _, err := g.resolve(ctx, glyphSchema, Size)
	if err != nil {
		return nil, err
	}
	n := g.emit(tokens)
	n.Text = ctx.Renderer.Theme().Glyph(g.name)
	return n, nil
}

// Render draws the glyph through ctx's renderer.
func (g *Glyph) Render(ctx Context) (string, error) {
	return renderElement(ctx, g)
}

// View draws the glyph with the default context.
func (g *Glyph) View() string {
	return mustView(g)
}

var _ Element = (*Glyph)(nil)
