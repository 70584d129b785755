package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

// badgeToneValues inverts the usual tone mapping: the tone colors the pill
// background and the text takes the surface color.
func badgeToneValues() map[string][]string {
	tones := []string{ToneNeutral, ToneMuted, ToneAccent, ToneInfo, ToneSuccess, ToneWarn, ToneDanger}
	vals := make(map[string][]string, len(tones))
	for _, tone := range tones {
		vals[tone] = []string{"bg-" + toneSlot(tone), "fg-" + render.SlotSurface}
	}
	return vals
}

var badgeSchema = variant.MustCompile(variant.Def{
	Name: "badge",
	Base: []string{"pad-x-1"},
	Axes: []variant.AxisDef{
		{
			Name:    "tone",
			Values:  badgeToneValues(),
			Default: ToneNeutral,
		},
		{
			Name: "size",
			Values: sizeValues(
				[]string{"text-xs"},
				[]string{"text-sm"},
				[]string{"text-lg", "pad-x-2"},
			),
			Default: SizeMD,
		},
	},
})

// Badge is a filled status pill: short text on a tone-colored background.
type Badge struct {
	Core
	text string
}

// NewBadge creates a badge showing text.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithTone sets the badge's background tone.
func (b *Badge) WithTone(tone string) *Badge {
	b.setAxis("tone", tone)
	return b
}

// WithSize sets an explicit size, overriding any inherited one.
func (b *Badge) WithSize(size string) *Badge {
	b.setAxis("size", size)
	return b
}

// WithClass appends extra class tokens after the schema tokens.
func (b *Badge) WithClass(class string) *Badge {
	b.setClass(class)
	return b
}

// WithAttr forwards an attribute verbatim onto the output node.
func (b *Badge) WithAttr(key, value string) *Badge {
	b.setAttr(key, value)
	return b
}

// WithRef binds ref to the badge's root node on each render pass.
func (b *Badge) WithRef(ref *NodeRef) *Badge {
	b.setRef(ref)
	return b
}

// Node produces the badge's render node for ctx.
func (b *Badge) Node(ctx Context) (*render.Node, error) {
	tokens, _, err := b.resolve(ctx, badgeSchema, Size)
	if err != nil {
		return nil, err
	}
	n := b.emit(tokens)
	n.Text = b.text
	return n, nil
}

// Render draws the badge through ctx's renderer.
func (b *Badge) Render(ctx Context) (string, error) {
	return renderElement(ctx, b)
}

// View draws the badge with the default context.
func (b *Badge) View() string {
	return mustView(b)
}

var _ Element = (*Badge)(nil)
