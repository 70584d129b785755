package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

// bannerToneValues colors both the text and the border with the tone slot.
func bannerToneValues() map[string][]string {
	tones := []string{ToneInfo, ToneSuccess, ToneWarn, ToneDanger}
	vals := make(map[string][]string, len(tones))
	for _, tone := range tones {
		vals[tone] = []string{"fg-" + tone, "border-fg-" + tone}
	}
	return vals
}

var bannerSchema = variant.MustCompile(variant.Def{
	Name: "banner",
	Base: []string{"pad-x-1", "border-rounded"},
	Axes: []variant.AxisDef{
		{
			Name:    "tone",
			Values:  bannerToneValues(),
			Default: ToneInfo,
		},
		{
			Name: "size",
			Values: sizeValues(
				[]string{"text-xs"},
				[]string{"text-sm"},
				[]string{"text-lg", "pad-y-1"},
			),
			Default: SizeMD,
		},
	},
})

// bannerGlyphs maps each banner tone to its leading mark.
var bannerGlyphs = map[string]string{
	ToneInfo:    render.GlyphInfo,
	ToneSuccess: render.GlyphCheck,
	ToneWarn:    render.GlyphWarn,
	ToneDanger:  render.GlyphCross,
}

// Banner is a bordered callout: a tone mark and a message inside a border
// colored to match. Banner tones are the four message severities.
type Banner struct {
	Core
	message string
}

// NewBanner creates a banner showing message.
func NewBanner(message string) *Banner {
	return &Banner{message: message}
}

// WithTone sets the banner severity.
func (b *Banner) WithTone(tone string) *Banner {
	b.setAxis("tone", tone)
	return b
}

// WithSize sets an explicit size, overriding any inherited one.
func (b *Banner) WithSize(size string) *Banner {
	b.setAxis("size", size)
	return b
}

// WithClass appends extra class tokens after the schema tokens.
func (b *Banner) WithClass(class string) *Banner {
	b.setClass(class)
	return b
}

// WithAttr forwards an attribute verbatim onto the output node.
func (b *Banner) WithAttr(key, value string) *Banner {
	b.setAttr(key, value)
	return b
}

// WithRef binds ref to the banner's root node on each render pass.
func (b *Banner) WithRef(ref *NodeRef) *Banner {
	b.setRef(ref)
	return b
}

// Node produces the banner's render node for ctx: the severity mark and the
// message as plain children under the bordered root.
func (b *Banner) Node(ctx Context) (*render.Node, error) {
	tokens, values, err := b.resolve(ctx, bannerSchema, Size)
	if err != nil {
		return nil, err
	}
	n := b.emit(tokens)
	n.Children = []*render.Node{
		{Text: ctx.Renderer.Theme().Glyph(bannerGlyphs[values["tone"]])},
		{Text: b.message},
	}
	return n, nil
}

// Render draws the banner through ctx's renderer.
func (b *Banner) Render(ctx Context) (string, error) {
	return renderElement(ctx, b)
}

// View draws the banner with the default context.
func (b *Banner) View() string {
	return mustView(b)
}

var _ Element = (*Banner)(nil)
