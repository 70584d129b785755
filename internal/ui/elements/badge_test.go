package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeViewShowsText(t *testing.T) {
	out := NewBadge("active").View()

	assert.Contains(t, out, "active")
	assert.Contains(t, out, " active ", "badge text should carry its pill padding")
}

func TestBadgeToneColorsBackground(t *testing.T) {
	ref := &NodeRef{}
	_, err := NewBadge("ok").WithTone(ToneSuccess).WithRef(ref).Node(DefaultContext())

	require.NoError(t, err)
	assert.True(t, ref.Node().HasToken("bg-success"))
	assert.True(t, ref.Node().HasToken("fg-surface"))
}

func TestBadgeLargePaddingOverridesBase(t *testing.T) {
	ref := &NodeRef{}
	_, err := NewBadge("ok").WithSize(SizeLG).WithRef(ref).Node(DefaultContext())
	require.NoError(t, err)

	tokens := ref.Node().Tokens
	base := indexOf(tokens, "pad-x-1")
	wide := indexOf(tokens, "pad-x-2")
	require.NotEqual(t, -1, base)
	require.NotEqual(t, -1, wide)
	assert.Greater(t, wide, base, "the size token must come after the base token to win")

	out, err := NewBadge("ok").WithSize(SizeLG).Render(DefaultContext())
	require.NoError(t, err)
	assert.Contains(t, out, "  ok  ")
}

func TestBadgeClassOverridesSchemaTokens(t *testing.T) {
	out, err := NewBadge("ok").WithClass("pad-x-0").Render(DefaultContext())

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func indexOf(tokens []string, token string) int {
	for i, t := range tokens {
		if t == token {
			return i
		}
	}
	return -1
}
