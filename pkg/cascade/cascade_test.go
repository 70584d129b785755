package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizeAxis = NewAxis("size", "md")

func TestAxisAccessors(t *testing.T) {
	axis := NewAxis("tone", "neutral")

	assert.Equal(t, "tone", axis.Name())
	assert.Equal(t, "neutral", axis.Default())
}

func TestValueWithoutScopeReturnsDefault(t *testing.T) {
	var scope *Scope

	assert.Equal(t, "md", scope.Value(sizeAxis))
}

func TestLookupWithoutScopeReportsAbsent(t *testing.T) {
	var scope *Scope

	_, ok := scope.Lookup(sizeAxis)
	assert.False(t, ok)
}

func TestWithEstablishesValue(t *testing.T) {
	scope := (*Scope)(nil).With(Values{sizeAxis: "sm"})

	require.NotNil(t, scope)
	assert.Equal(t, "sm", scope.Value(sizeAxis))
}

func TestNestedScopeInheritsAbsentAxes(t *testing.T) {
	outer := (*Scope)(nil).With(Values{sizeAxis: "sm"})
	inner := outer.With(Values{})

	assert.Equal(t, "sm", inner.Value(sizeAxis))
}

func TestNestedScopeOverrides(t *testing.T) {
	outer := (*Scope)(nil).With(Values{sizeAxis: "lg"})
	inner := outer.With(Values{sizeAxis: "sm"})

	assert.Equal(t, "sm", inner.Value(sizeAxis))
	assert.Equal(t, "lg", outer.Value(sizeAxis), "establishing a nested scope must not affect the enclosing one")
}

func TestSiblingScopesAreIndependent(t *testing.T) {
	root := (*Scope)(nil).With(Values{sizeAxis: "md"})
	left := root.With(Values{sizeAxis: "sm"})
	right := root.With(Values{})

	assert.Equal(t, "sm", left.Value(sizeAxis))
	assert.Equal(t, "md", right.Value(sizeAxis))
}

func TestMultipleAxesResolveIndependently(t *testing.T) {
	tone := NewAxis("tone", "neutral")

	outer := (*Scope)(nil).With(Values{sizeAxis: "lg"})
	inner := outer.With(Values{tone: "danger"})

	assert.Equal(t, "lg", inner.Value(sizeAxis))
	assert.Equal(t, "danger", inner.Value(tone))
	assert.Equal(t, "neutral", outer.Value(tone))
}

func TestWithCopiesOverrides(t *testing.T) {
	overrides := Values{sizeAxis: "sm"}
	scope := (*Scope)(nil).With(overrides)

	overrides[sizeAxis] = "lg"

	assert.Equal(t, "sm", scope.Value(sizeAxis))
}

func TestParentChain(t *testing.T) {
	root := (*Scope)(nil).With(Values{sizeAxis: "sm"})
	child := root.With(nil)

	assert.Same(t, root, child.Parent())
	assert.Nil(t, root.Parent())
	assert.Nil(t, (*Scope)(nil).Parent())
}

func TestDeepChainResolvesNearestValue(t *testing.T) {
	scope := (*Scope)(nil).
		With(Values{sizeAxis: "sm"}).
		With(nil).
		With(nil).
		With(Values{sizeAxis: "lg"}).
		With(nil)

	assert.Equal(t, "lg", scope.Value(sizeAxis))
}
