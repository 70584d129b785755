package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration is the common sentinel for resolution failures caused by an
// invalid or unresolvable element configuration. Failures of this kind are
// synchronous and non-retryable: they indicate a caller or schema authoring
// mistake, not a transient condition. Both concrete error types below unwrap
// to it, so callers can match the whole family with
// errors.Is(err, variant.ErrConfiguration).
var ErrConfiguration = errors.New("configuration error")

// InvalidValueError reports an axis value outside the domain the schema
// declares for that axis.
type InvalidValueError struct {
	Schema string
	Axis   string
	Value  string
	Domain []string
}

func (e *InvalidValueError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("schema %q: invalid value %q for axis %q (valid: %s)",
		e.Schema, e.Value, e.Axis, strings.Join(e.Domain, ", "))
}

// Unwrap ties the error into the ErrConfiguration family.
func (e *InvalidValueError) Unwrap() error {
	return ErrConfiguration
}

// MissingAxisError reports an axis that resolution could not satisfy: no
// explicit value was supplied and the schema declares no default for it.
type MissingAxisError struct {
	Schema string
	Axis   string
}

func (e *MissingAxisError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("schema %q: axis %q has no value and no declared default", e.Schema, e.Axis)
}

// Unwrap ties the error into the ErrConfiguration family.
func (e *MissingAxisError) Unwrap() error {
	return ErrConfiguration
}
