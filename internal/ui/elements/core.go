package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/cascade"
	"github.com/facetkit/facet/pkg/variant"
)

// Element is anything in the kit that can produce its root render node for a
// render pass. Group composes arbitrary Elements, and the gallery and CLI
// render them without knowing the concrete type.
type Element interface {
	Node(ctx Context) (*render.Node, error)
}

// NodeRef is an output handle. Pass one to an element's WithRef and, after
// the next Node or Render call, Node returns the root node the element
// produced. Each render pass rebinds the handle; only the element writes it.
type NodeRef struct {
	node *render.Node
}

// Node returns the node bound by the most recent render pass, or nil before
// the first one.
func (r *NodeRef) Node() *render.Node {
	if r == nil {
		return nil
	}
	return r.node
}

func (r *NodeRef) bind(n *render.Node) {
	r.node = n
}

// Core is the configuration adapter embedded by every element. It records the
// element's explicit axis values, extra class tokens, forwarded attributes,
// and output handle, and runs the shared configure-style-forward sequence
// during Node.
//
// The zero Core is ready to use.
type Core struct {
	axes  map[string]string
	class string
	attrs map[string]string
	ref   *NodeRef
}

// setAxis records an explicit axis value. The empty string means "not set"
// and leaves cascade inheritance in effect.
func (c *Core) setAxis(name, value string) {
	if value == "" {
		return
	}
	if c.axes == nil {
		c.axes = make(map[string]string)
	}
	c.axes[name] = value
}

// setClass records extra class tokens appended after every schema token, so
// they override on conflict.
func (c *Core) setClass(class string) {
	c.class = class
}

// setAttr records an attribute forwarded verbatim onto the output node.
func (c *Core) setAttr(key, value string) {
	if c.attrs == nil {
		c.attrs = make(map[string]string)
	}
	c.attrs[key] = value
}

// setRef records the output handle bound on each render pass.
func (c *Core) setRef(ref *NodeRef) {
	c.ref = ref
}

// resolve runs the configure and style steps against schema. Axes listed in
// cascaded read from ctx's scope when no explicit value was set; remaining
// axes fall to their schema defaults inside Resolve. The returned map is the
// effective assignment including defaults, for elements that branch on it.
//
// A resolution failure is returned unchanged; callers never repair or mask
// it.
func (c *Core) resolve(ctx Context, schema *variant.Schema, cascaded ...cascade.Axis) ([]string, map[string]string, error) {
	values := make(map[string]string, len(cascaded)+len(c.axes))
	for _, axis := range cascaded {
		values[axis.Name()] = ctx.Scope.Value(axis)
	}
	for name, value := range c.axes {
		values[name] = value
	}

	tokens, err := schema.Resolve(values, variant.Split(c.class)...)
	if err != nil {
		return nil, nil, err
	}

	for _, name := range schema.Axes() {
		if values[name] != "" {
			continue
		}
		if def, ok := schema.Default(name); ok {
			values[name] = def
		}
	}
	return tokens, values, nil
}

// emit assembles the element's root node: resolved tokens, a copy of the
// forwarded attribute bag, and the ref binding.
func (c *Core) emit(tokens []string) *render.Node {
	n := &render.Node{Tokens: tokens}
	if len(c.attrs) > 0 {
		n.Attrs = make(map[string]string, len(c.attrs))
		for k, v := range c.attrs {
			n.Attrs[k] = v
		}
	}
	if c.ref != nil {
		c.ref.bind(n)
	}
	return n
}

// renderElement draws el through ctx's renderer.
func renderElement(ctx Context, el Element) (string, error) {
	node, err := el.Node(ctx)
	if err != nil {
		return "", err
	}
	return ctx.Renderer.Render(node), nil
}

// mustView renders el with the default context. Elements expose this as View
// for quick display paths; a resolution failure is a programmer error there,
// so it panics.
func mustView(el Element) string {
	out, err := renderElement(DefaultContext(), el)
	if err != nil {
		panic(err)
	}
	return out
}

// toneSlot maps a tone value onto the theme color slot its foreground token
// should reference.
func toneSlot(tone string) string {
	if tone == ToneNeutral {
		return render.SlotText
	}
	return tone
}

// toneValues builds the per-value token table for a standard tone axis whose
// values color the element foreground.
func toneValues() map[string][]string {
	tones := []string{ToneNeutral, ToneMuted, ToneAccent, ToneInfo, ToneSuccess, ToneWarn, ToneDanger}
	vals := make(map[string][]string, len(tones))
	for _, tone := range tones {
		vals[tone] = []string{"fg-" + toneSlot(tone)}
	}
	return vals
}

// sizeValues builds the per-value token table for a standard size axis from
// the three per-size token lists.
func sizeValues(sm, md, lg []string) map[string][]string {
	return map[string][]string{
		SizeSM: sm,
		SizeMD: md,
		SizeLG: lg,
	}
}

// textSizeToken returns the type scale token matching a resolved size value,
// for elements that pass sizing down to child nodes or glyph primitives.
// Sizes map to visually distinct steps: sm is faint, md plain, lg bold.
func textSizeToken(size string) string {
	switch size {
	case SizeSM:
		return "text-xs"
	case SizeLG:
		return "text-lg"
	default:
		return "text-sm"
	}
}
