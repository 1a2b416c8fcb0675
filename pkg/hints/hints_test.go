// Test Type: Unit Test
// Description: Tests for framework hint detection from active plugin identifiers

package hints_test

import (
	"testing"

	"github.com/arthur-debert/chunksplit/pkg/hints"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Run("recognizes framework plugins", func(t *testing.T) {
		set := hints.Detect([]string{"vite:vue", "unplugin-element-plus"})
		assert.Equal(t, []string{"vue", "element-plus"}, set.Tokens())
		assert.True(t, set.Has("vue"))
		assert.False(t, set.Has("react"))
	})

	t.Run("keeps detection order and deduplicates", func(t *testing.T) {
		set := hints.Detect([]string{
			"@vitejs/plugin-react",
			"vite-plugin-svelte",
			"vite:react", // duplicate token, different plugin id
		})
		assert.Equal(t, []string{"react", "svelte"}, set.Tokens())
	})

	t.Run("vue-components implies vueuse, not the vue framework", func(t *testing.T) {
		set := hints.Detect([]string{"unplugin-vue-components"})
		assert.Equal(t, []string{"vueuse"}, set.Tokens())
		assert.False(t, set.Has("vue"))
	})

	t.Run("unknown plugins contribute nothing", func(t *testing.T) {
		set := hints.Detect([]string{"vite-plugin-inspect", "rollup-plugin-visualizer"})
		assert.Equal(t, 0, set.Len())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0, hints.Detect(nil).Len())
	})
}

func TestNewHintSet(t *testing.T) {
	set := hints.NewHintSet("vue", "", "react", "vue")
	assert.Equal(t, []string{"vue", "react"}, set.Tokens())
	assert.Equal(t, 2, set.Len())
}

func TestTokens_ReturnsCopy(t *testing.T) {
	set := hints.NewHintSet("vue")
	toks := set.Tokens()
	toks[0] = "mutated"
	assert.Equal(t, []string{"vue"}, set.Tokens())
}
