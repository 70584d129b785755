package elements

import "github.com/facetkit/facet/pkg/cascade"

// Size values accepted by every element that declares a size axis.
const (
	SizeSM = "sm"
	SizeMD = "md"
	SizeLG = "lg"
)

// Tone values shared by the tonal elements. Each maps onto one of the
// renderer's theme color slots.
const (
	ToneNeutral = "neutral"
	ToneMuted   = "muted"
	ToneAccent  = "accent"
	ToneInfo    = "info"
	ToneSuccess = "success"
	ToneWarn    = "warn"
	ToneDanger  = "danger"
)

// Size is the cascaded sizing axis. Group establishes values for it; any
// element that declares a size axis reads it when no explicit size was set.
// With no scope at all the axis falls back to its global default, md.
var Size = cascade.NewAxis("size", SizeMD)
