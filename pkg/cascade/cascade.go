// Package cascade provides tree-scoped configuration values for UI elements.
//
// An Axis names a configuration dimension (for example "size") together with
// the ambient default that applies when no scope is in effect. A Scope is an
// immutable snapshot of axis values covering one subtree of elements: a parent
// element establishes a scope, children read from it, and a nested override
// produces a new scope without touching the enclosing one.
//
// Scopes are threaded explicitly through element construction. There is no
// package-level state; the nil *Scope is the valid "no scope" starting point
// and reads against it yield each axis's declared default.
package cascade

// Axis identifies a configuration dimension with an ambient default value.
// Axes are immutable; declare them once per dimension and share them.
type Axis struct {
	name string
	def  string
}

// NewAxis declares an axis with the given name and ambient default.
func NewAxis(name, defaultValue string) Axis {
	return Axis{name: name, def: defaultValue}
}

// Name returns the axis name.
func (a Axis) Name() string {
	return a.name
}

// Default returns the value an unscoped read of this axis produces.
func (a Axis) Default() string {
	return a.def
}

// Values holds the partial axis assignments used to establish a scope.
// Axes absent from the map inherit from the enclosing scope.
type Values map[Axis]string

// Scope is an immutable snapshot of axis values inherited by a subtree.
// A Scope is never mutated after creation: overriding values produces a
// child scope and leaves the receiver untouched, so siblings that resolved
// against the original snapshot are unaffected.
//
// The nil *Scope is valid and behaves as "no scope established": every read
// falls through to the axis default.
type Scope struct {
	values map[string]string
	parent *Scope
}

// With establishes a child scope carrying the given overrides. Axes not
// present in overrides resolve through the receiver chain as before. The
// receiver may be nil, in which case the new scope forms the root of its
// subtree. The overrides map is copied; later mutation of the caller's map
// does not leak into the scope.
func (s *Scope) With(overrides Values) *Scope {
	child := &Scope{parent: s}
	if len(overrides) > 0 {
		child.values = make(map[string]string, len(overrides))
		for axis, value := range overrides {
			child.values[axis.name] = value
		}
	}
	return child
}

// Value returns the nearest enclosing value for axis, or the axis default
// when no scope in the chain carries one. Absence of a scope is a valid,
// default-producing state, never an error.
func (s *Scope) Value(axis Axis) string {
	if v, ok := s.Lookup(axis); ok {
		return v
	}
	return axis.def
}

// Lookup returns the nearest enclosing value for axis and whether any scope
// in the chain carries one. Use Value when the axis default is the desired
// fallback.
func (s *Scope) Lookup(axis Axis) (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[axis.name]; ok {
			return v, true
		}
	}
	return "", false
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}
