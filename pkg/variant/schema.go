// Package variant resolves declarative style schemas into ordered token lists.
//
// A Schema declares the style vocabulary of one element type: base tokens that
// always apply, per-axis token rules over a finite value domain, and compound
// rules that fire on a conjunction of axis values. Resolve turns a schema plus
// chosen axis values into a flat, order-stable token list; the tokens
// themselves are opaque strings whose visual meaning belongs to whatever
// renders them.
//
// Resolution is pure: the same schema and inputs always produce the same list,
// which is what makes snapshot-style assertions on rendered output valid.
package variant

import (
	"fmt"
	"sort"
	"strings"
)

// Def declares a schema in literal form. Compile validates it and produces an
// immutable Schema; element packages typically declare their schema once at
// package level through MustCompile.
type Def struct {
	// Name identifies the schema in error messages, usually the element name.
	Name string
	// Base tokens apply to every resolution, before any axis rule.
	Base []string
	// Axes apply in declaration order after the base tokens.
	Axes []AxisDef
	// Compounds apply in declaration order after all axis rules. Later rules
	// win over earlier ones on conflicting tokens.
	Compounds []CompoundDef
}

// AxisDef declares one configuration axis: its legal values, the tokens each
// value contributes, and an optional default. An axis without a default is
// required: resolving without a value for it fails with MissingAxisError.
type AxisDef struct {
	Name string
	// Values maps each legal axis value to the tokens it contributes. A value
	// may map to an empty list to be legal without contributing tokens.
	Values map[string][]string
	// Default is substituted when no value is supplied for the axis. Leave
	// empty to make the axis required.
	Default string
}

// CompoundDef declares a rule that fires only when every listed axis carries
// exactly the listed value in the fully resolved assignment (defaults
// included).
type CompoundDef struct {
	When   map[string]string
	Tokens []string
}

// Schema is a compiled, read-only style schema. Create one with Compile or
// MustCompile; a Schema is safe for concurrent use.
type Schema struct {
	name      string
	base      []string
	axes      []axisRule
	axisIndex map[string]int
	compounds []compoundRule
}

type axisRule struct {
	name   string
	domain []string            // sorted copy of the Values keys
	tokens map[string][]string // value → tokens
	def    string
	hasDef bool
}

type compoundRule struct {
	when   []condition // sorted by axis name; matching is order-independent
	tokens []string
}

type condition struct {
	axis  string
	value string
}

// Compile validates a Def and produces an immutable Schema. It rejects
// authoring mistakes: empty names, duplicate or empty axes, defaults outside
// the declared domain, compound conditions over unknown axes or values, and
// tokens containing whitespace.
func Compile(def Def) (*Schema, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("schema name is required")
	}

	if err := checkTokens(def.Name, "base", def.Base); err != nil {
		return nil, err
	}

	s := &Schema{
		name:      def.Name,
		base:      copyTokens(def.Base),
		axisIndex: make(map[string]int, len(def.Axes)),
	}

	for _, axis := range def.Axes {
		if axis.Name == "" {
			return nil, fmt.Errorf("schema %q: axis name is required", def.Name)
		}
		if _, dup := s.axisIndex[axis.Name]; dup {
			return nil, fmt.Errorf("schema %q: duplicate axis %q", def.Name, axis.Name)
		}
		if len(axis.Values) == 0 {
			return nil, fmt.Errorf("schema %q: axis %q declares no values", def.Name, axis.Name)
		}

		rule := axisRule{
			name:   axis.Name,
			domain: make([]string, 0, len(axis.Values)),
			tokens: make(map[string][]string, len(axis.Values)),
		}
		for value, tokens := range axis.Values {
			if value == "" {
				return nil, fmt.Errorf("schema %q: axis %q declares an empty value", def.Name, axis.Name)
			}
			if err := checkTokens(def.Name, fmt.Sprintf("axis %q value %q", axis.Name, value), tokens); err != nil {
				return nil, err
			}
			rule.domain = append(rule.domain, value)
			rule.tokens[value] = copyTokens(tokens)
		}
		sort.Strings(rule.domain)

		if axis.Default != "" {
			if _, ok := rule.tokens[axis.Default]; !ok {
				return nil, fmt.Errorf("schema %q: axis %q default %q is not a declared value",
					def.Name, axis.Name, axis.Default)
			}
			rule.def = axis.Default
			rule.hasDef = true
		}

		s.axisIndex[axis.Name] = len(s.axes)
		s.axes = append(s.axes, rule)
	}

	for i, comp := range def.Compounds {
		if len(comp.When) == 0 {
			return nil, fmt.Errorf("schema %q: compound rule %d has an empty condition", def.Name, i)
		}
		if err := checkTokens(def.Name, fmt.Sprintf("compound rule %d", i), comp.Tokens); err != nil {
			return nil, err
		}

		rule := compoundRule{
			when:   make([]condition, 0, len(comp.When)),
			tokens: copyTokens(comp.Tokens),
		}
		for axisName, value := range comp.When {
			idx, ok := s.axisIndex[axisName]
			if !ok {
				return nil, fmt.Errorf("schema %q: compound rule %d references unknown axis %q",
					def.Name, i, axisName)
			}
			if _, ok := s.axes[idx].tokens[value]; !ok {
				return nil, fmt.Errorf("schema %q: compound rule %d requires value %q outside axis %q domain",
					def.Name, i, value, axisName)
			}
			rule.when = append(rule.when, condition{axis: axisName, value: value})
		}
		sort.Slice(rule.when, func(a, b int) bool { return rule.when[a].axis < rule.when[b].axis })

		s.compounds = append(s.compounds, rule)
	}

	return s, nil
}

// MustCompile is Compile that panics on error. Use it for package-level
// schema declarations, where an invalid schema is a programmer error.
func MustCompile(def Def) *Schema {
	s, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Axes returns the axis names in declaration order.
func (s *Schema) Axes() []string {
	names := make([]string, len(s.axes))
	for i, axis := range s.axes {
		names[i] = axis.name
	}
	return names
}

// Domain returns the sorted legal values for the named axis, or nil if the
// schema declares no such axis.
func (s *Schema) Domain(axisName string) []string {
	idx, ok := s.axisIndex[axisName]
	if !ok {
		return nil
	}
	domain := make([]string, len(s.axes[idx].domain))
	copy(domain, s.axes[idx].domain)
	return domain
}

// Default returns the declared default for the named axis. The second result
// is false when the axis is required or unknown.
func (s *Schema) Default(axisName string) (string, bool) {
	idx, ok := s.axisIndex[axisName]
	if !ok {
		return "", false
	}
	return s.axes[idx].def, s.axes[idx].hasDef
}

func checkTokens(schema, where string, tokens []string) error {
	for _, token := range tokens {
		if token == "" {
			return fmt.Errorf("schema %q: %s contains an empty token", schema, where)
		}
		if strings.ContainsAny(token, " \t\n") {
			return fmt.Errorf("schema %q: %s token %q contains whitespace", schema, where, token)
		}
	}
	return nil
}

func copyTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
