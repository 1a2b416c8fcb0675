// Test Type: Unit Test
// Description: Tests for the built-in preset tables

package presets_test

import (
	"testing"

	"github.com/arthur-debert/chunksplit/pkg/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLargeGroups(t *testing.T) {
	groups := presets.LargeGroups()
	require.NotEmpty(t, groups)

	names := make(map[string]bool)
	for _, g := range groups {
		assert.NotEmpty(t, g.Name)
		assert.NotEmpty(t, g.Fragments, "large group %s needs fragments", g.Name)
		assert.NotEmpty(t, g.Patterns, "large group %s needs patterns", g.Name)
		assert.False(t, names[g.Name], "duplicate large group %s", g.Name)
		names[g.Name] = true
	}

	// The table order is part of the contract: equal-priority matchers keep it.
	assert.Equal(t, "vue", groups[0].Name)
	assert.Equal(t, "react", groups[1].Name)
}

func TestMediumGroups(t *testing.T) {
	for _, g := range presets.MediumGroups() {
		assert.NotEmpty(t, g.Fragments)
		assert.NotEmpty(t, g.Patterns)
	}
}

func TestConservativeGroups(t *testing.T) {
	conservative := presets.ConservativeGroups()
	names := make(map[string]bool)
	for _, g := range conservative {
		names[g.Name] = true
	}

	assert.True(t, names["vue"])
	assert.True(t, names["echarts"])
	assert.False(t, names["lodash"], "lodash is large but not conservative-eligible")
	assert.False(t, names["axios"], "medium presets are never conservative-eligible")
	assert.Less(t, len(conservative), len(presets.LargeGroups())+1)
}

func TestHintGroupFor(t *testing.T) {
	g, ok := presets.HintGroupFor("vue")
	require.True(t, ok)
	assert.Equal(t, "vue", g.Name)
	assert.NotEmpty(t, g.Patterns)

	_, ok = presets.HintGroupFor("unknown-token")
	assert.False(t, ok)
}
