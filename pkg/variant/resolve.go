package variant

// Resolve produces the ordered token list for one configuration of the
// schema. Application order is fixed: base tokens first, then each axis's
// tokens in axis declaration order, then every matching compound rule in
// declaration order, then the explicit extra tokens verbatim. Later tokens
// win over earlier ones for conflicting visual properties, so extra tokens
// always take precedence over computed ones.
//
// values assigns a value per axis name; an absent key or empty string means
// "unset" and falls back to the axis default. An unset axis with no default
// fails with MissingAxisError. A set value outside the axis domain fails with
// InvalidValueError. Axis names in values that the schema does not declare
// are ignored, so one value map can serve several schemas.
//
// Resolve is pure and deterministic: identical inputs yield an identical,
// order-stable list, and the result is always freshly allocated.
func (s *Schema) Resolve(values map[string]string, extra ...string) ([]string, error) {
	resolved := make(map[string]string, len(s.axes))

	size := len(s.base) + len(extra)
	for _, axis := range s.axes {
		size += len(axis.tokens[axis.def])
	}
	out := make([]string, 0, size)
	out = append(out, s.base...)

	for _, axis := range s.axes {
		value := values[axis.name]
		if value == "" {
			if !axis.hasDef {
				return nil, &MissingAxisError{Schema: s.name, Axis: axis.name}
			}
			value = axis.def
		}

		tokens, ok := axis.tokens[value]
		if !ok {
			return nil, &InvalidValueError{
				Schema: s.name,
				Axis:   axis.name,
				Value:  value,
				Domain: s.Domain(axis.name),
			}
		}

		resolved[axis.name] = value
		out = append(out, tokens...)
	}

	for _, comp := range s.compounds {
		if comp.matches(resolved) {
			out = append(out, comp.tokens...)
		}
	}

	out = append(out, extra...)
	return out, nil
}

// matches reports whether every condition of the rule holds in the fully
// resolved assignment. Partial matches never fire.
func (c compoundRule) matches(resolved map[string]string) bool {
	for _, cond := range c.when {
		if resolved[cond.axis] != cond.value {
			return false
		}
	}
	return true
}
