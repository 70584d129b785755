package elements

import (
	"strconv"

	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

// Direction values for Delta.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

var deltaSchema = variant.MustCompile(variant.Def{
	Name: "delta",
	Axes: []variant.AxisDef{
		{
			Name: "direction",
			Values: map[string][]string{
				DirectionUp:   {"fg-" + render.SlotSuccess},
				DirectionDown: {"fg-" + render.SlotDanger},
			},
			Default: DirectionUp,
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
	Compounds: []variant.CompoundDef{
		// A large downward delta is the one reading that must not be
		// skimmed past, so it alone gets the extra emphasis.
		{
			When:   map[string]string{"direction": DirectionDown, "size": SizeLG},
			Tokens: []string{"underline"},
		},
	},
})

// Delta shows a signed quantity as a direction mark plus its magnitude,
// colored by direction. The direction follows the sign of the amount unless
// overridden.
type Delta struct {
	Core
	amount int
}

// NewDelta creates a delta for amount. Negative amounts point down.
func NewDelta(amount int) *Delta {
	d := &Delta{amount: amount}
	if amount < 0 {
		d.setAxis("direction", DirectionDown)
	}
	return d
}

// WithDirection forces the direction regardless of the amount's sign.
func (d *Delta) WithDirection(direction string) *Delta {
	d.setAxis("direction", direction)
	return d
}

// WithSize sets an explicit size, overriding any inherited one.
func (d *Delta) WithSize(size string) *Delta {
	d.setAxis("size", size)
	return d
}

// WithClass appends extra class tokens after the schema tokens.
func (d *Delta) WithClass(class string) *Delta {
	d.setClass(class)
	return d
}

// WithAttr forwards an attribute verbatim onto the output node.
func (d *Delta) WithAttr(key, value string) *Delta {
	d.setAttr(key, value)
	return d
}

// WithRef binds ref to the delta's root node on each render pass.
func (d *Delta) WithRef(ref *NodeRef) *Delta {
	d.setRef(ref)
	return d
}

// Node produces the delta's render node for ctx: the direction mark and the
// absolute magnitude as plain children under the styled root.
func (d *Delta) Node(ctx Context) (*render.Node, error) {
	tokens, values, err := d.resolve(ctx, deltaSchema, Size)
	if err != nil {
		return nil, err
	}

	mark := render.GlyphPlus
	if values["direction"] == DirectionDown {
		mark = render.GlyphMinus
	}
	magnitude := d.amount
	if magnitude < 0 {
		magnitude = -magnitude
	}

	n := d.emit(tokens)
	n.Children = []*render.Node{
		{Text: ctx.Renderer.Theme().Glyph(mark)},
		{Text: strconv.Itoa(magnitude)},
	}
	return n, nil
}

// Render draws the delta through ctx's renderer.
func (d *Delta) Render(ctx Context) (string, error) {
	return renderElement(ctx, d)
}

// View draws the delta with the default context.
func (d *Delta) View() string {
	return mustView(d)
}

var _ Element = (*Delta)(nil)
