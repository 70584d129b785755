package elements

import (
	"github.com/facetkit/facet/internal/ui/render"
	"github.com/facetkit/facet/pkg/cascade"
)

// Context carries everything an element needs for one render pass: the
// renderer that interprets tokens, and the cascade scope the element sits in.
// Contexts are values; deriving a new one never mutates the original.
type Context struct {
	Renderer *render.Renderer
	Scope    *cascade.Scope
}

// DefaultContext returns a context with the default theme renderer and no
// enclosing scope, so cascaded axes resolve to their global defaults.
func DefaultContext() Context {
	return Context{Renderer: render.New(render.DefaultTheme())}
}

// WithRenderer returns a copy of the context that draws with r.
func (c Context) WithRenderer(r *render.Renderer) Context {
	c.Renderer = r
	return c
}

// WithScope returns a copy of the context rooted in scope.
func (c Context) WithScope(scope *cascade.Scope) Context {
	c.Scope = scope
	return c
}

// WithSize returns a copy of the context whose scope carries size for the
// Size axis. Elements rendered under it inherit the value unless they set
// their own.
func (c Context) WithSize(size string) Context {
	c.Scope = c.Scope.With(cascade.Values{Size: size})
	return c
}
