// Package elements provides the presentational element kit: small, composable
// terminal UI pieces that resolve their look through declarative variant
// schemas instead of hand-assembled styles.
//
// # Architecture
//
// Every element follows the same construction pattern:
//
//  1. Configure — each styling axis resolves as explicit setting, then the
//     value inherited from the enclosing cascade scope, then the schema
//     default.
//  2. Style — the element's schema resolves the chosen axis values into an
//     ordered token list, and the caller's extra class tokens are merged on
//     last.
//  3. Forward — attributes the element does not recognize as configuration
//     are copied verbatim onto the output node, and the caller's NodeRef (if
//     supplied) receives the root node.
//
// The element layer never interprets tokens; internal/ui/render owns their
// visual meaning. Elements therefore contain no lipgloss calls at all.
//
// # Sizing cascade
//
// The size axis flows down the element tree. A Group establishes a scope:
//
//	group := elements.NewGroup(
//		elements.NewBadge("active"),
//		elements.NewDelta(-3),
//	).WithSize(elements.SizeSM)
//
// Both children render small without being told individually, while an
// explicit WithSize on a child always wins. Scopes are immutable snapshots:
// nesting a new one never affects siblings that already rendered.
//
// # Failure semantics
//
// A resolution failure (an axis value outside its schema domain, or a
// required axis left unset) is a programmer error. Node and Render surface it
// unchanged to the caller; View panics with it. Elements never substitute a
// fallback look.
package elements
