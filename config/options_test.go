package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverlayOnlyOverridesSetFields(t *testing.T) {
	base := DefaultOptions()
	base.Prompt = "> "
	base.TabStop = 8

	base.ApplyOverlay(Options{Query: "abc"})

	assert.Equal(t, "abc", base.Query)
	assert.Equal(t, "> ", base.Prompt)
	assert.Equal(t, 8, base.TabStop)
}

func TestApplyOverlayBoolsOnlyTurnOn(t *testing.T) {
	base := DefaultOptions()
	base.ApplyOverlay(Options{Exact: true})
	assert.True(t, base.Exact)

	base.ApplyOverlay(Options{})
	assert.True(t, base.Exact, "a later empty overlay must not turn Exact back off")
}

func TestApplyOverlayAppendsBindEntries(t *testing.T) {
	base := DefaultOptions()
	base.ApplyOverlay(Options{Bind: []string{"ctrl-j:down"}})
	base.ApplyOverlay(Options{Bind: []string{"ctrl-k:up"}})
	assert.Equal(t, []string{"ctrl-j:down", "ctrl-k:up"}, base.Bind)
}

func TestResolveMultiSelectNoMultiWins(t *testing.T) {
	assert.False(t, ResolveMultiSelect(Options{Multi: true, NoMulti: true}))
	assert.True(t, ResolveMultiSelect(Options{Multi: true}))
	assert.False(t, ResolveMultiSelect(Options{}))
}
