package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

var labelSchema = variant.MustCompile(variant.Def{
	Name: "label",
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

// Label is a single run of themed text.
type Label struct {
	Core
	text string
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// WithTone sets the label's color tone.
func (l *Label) WithTone(tone string) *Label {
	l.setAxis("tone", tone)
	return l
}

// WithSize sets an explicit size, overriding any inherited one.
func (l *Label) WithSize(size string) *Label {
	l.setAxis("size", size)
	return l
}

// WithClass appends extra class tokens after the schema tokens.
func (l *Label) WithClass(class string) *Label {
	l.setClass(class)
	return l
}

// WithAttr forwards an attribute verbatim onto the output node.
func (l *Label) WithAttr(key, value string) *Label {
	l.setAttr(key, value)
	return l
}

// WithRef binds ref to the label's root node on each render pass.
func (l *Label) WithRef(ref *NodeRef) *Label {
	l.setRef(ref)
	return l
}

// Node produces the label's render node for ctx.
func (l *Label) Node(ctx Context) (*render.Node, error) {
	tokens, _, err := l.resolve(ctx, labelSchema, Size)
	if err != nil {
		return nil, err
	}
	n := l.emit(tokens)
	n.Text = l.text
	return n, nil
}

// Render draws the label through ctx's renderer.
func (l *Label) Render(ctx Context) (string, error) {
	return renderElement(ctx, l)
}

// View draws the label with the default context.
func (l *Label) View() string {
	return mustView(l)
}

var _ Element = (*Label)(nil)
