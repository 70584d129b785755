package elements

import (
	"strconv"

	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/variant"
)

// Layout values for Group.
const (
	LayoutRow   = "row"
	LayoutStack = "stack"
)

var groupSchema = variant.MustCompile(variant.Def{
	Name: "group",
	Axes: []variant.AxisDef{
		{
			Name: "layout",
			Values: map[string][]string{
				LayoutRow:   {"row"},
				LayoutStack: {"stack"},
			},
			Default: LayoutRow,
		},
		{
			Name: "gap",
			Values: map[string][]string{
				"0": {"gap-0"},
				"1": {"gap-1"},
				"2": {"gap-2"},
				"3": {"gap-3"},
			},
			Default: "1",
		},
	},
})

// Group lays out child elements in a row or a stack and, when given a size,
// establishes a cascade scope so every descendant inherits it. The scope
// covers exactly this group's subtree: siblings and ancestors keep resolving
// against their own scopes.
type Group struct {
	Core
	children []Element
	size     string
}

// NewGroup creates a group over children in a row layout.
func NewGroup(children ...Element) *Group {
	return &Group{children: children}
}

// Add appends more children to the group.
func (g *Group) Add(children ...Element) *Group {
	g.children = append(g.children, children...)
	return g
}

// WithSize establishes a cascade scope carrying size for this group's
// subtree. Descendants without an explicit size inherit it; an invalid value
// surfaces when a descendant resolves against it.
func (g *Group) WithSize(size string) *Group {
	g.size = size
	return g
}

// WithLayout sets the layout direction.
func (g *Group) WithLayout(layout string) *Group {
	g.setAxis("layout", layout)
	return g
}

// WithGap sets the spacing between children.
func (g *Group) WithGap(gap int) *Group {
	g.setAxis("gap", strconv.Itoa(gap))
	return g
}

// WithClass appends extra class tokens after the schema tokens.
func (g *Group) WithClass(class string) *Group {
	g.setClass(class)
	return g
}

// WithAttr forwards an attribute verbatim onto the output node.
func (g *Group) WithAttr(key, value string) *Group {
	g.setAttr(key, value)
	return g
}

// WithRef binds ref to the group's root node on each render pass.
func (g *Group) WithRef(ref *NodeRef) *Group {
	g.setRef(ref)
	return g
}

// Node produces the group's render node for ctx. Children build against the
// derived scope; the first failing child aborts the pass with its error.
func (g *Group) Node(ctx Context) (*render.Node, error) {
	tokens, _, err := g.resolve(ctx, groupSchema)
	if err != nil {
		return nil, err
	}

	childCtx := ctx
	if g.size != "" {
		childCtx = ctx.WithSize(g.size)
	}

	n := g.emit(tokens)
	n.Children = make([]*render.Node, 0, len(g.children))
	for _, child := range g.children {
		cn, err := child.Node(childCtx)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

// Render draws the group through ctx's renderer.
func (g *Group) Render(ctx Context) (string, error) {
	return renderElement(ctx, g)
}

// View draws the group with the default context.
func (g *Group) View() string {
	return mustView(g)
}

var _ Element = (*Group)(nil)
