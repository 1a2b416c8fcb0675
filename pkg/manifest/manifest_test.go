// Test Type: Unit Test
// Description: Tests for manifest reading - dependency set construction and failure degradation

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chunksplit/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0644))
	return root
}

func TestRead(t *testing.T) {
	t.Run("collects dependencies and devDependencies", func(t *testing.T) {
		root := writeManifest(t, `{
			"name": "demo",
			"dependencies": {"react": "^18.2.0", "react-dom": "^18.2.0"},
			"devDependencies": {"@types/react": "^18.0.0"}
		}`)

		deps := manifest.Read(root)
		assert.Equal(t, 3, deps.Len())
		assert.True(t, deps.Has("react"))
		assert.True(t, deps.Has("react-dom"))
		assert.True(t, deps.Has("@types/react"))
	})

	t.Run("dotted and scoped names survive intact", func(t *testing.T) {
		root := writeManifest(t, `{
			"dependencies": {"chart.js": "^4.0.0", "@vue/reactivity": "^3.2.0"}
		}`)

		deps := manifest.Read(root)
		assert.True(t, deps.Has("chart.js"))
		assert.True(t, deps.Has("@vue/reactivity"))
	})

	t.Run("missing manifest degrades to empty set", func(t *testing.T) {
		deps := manifest.Read(t.TempDir())
		assert.Equal(t, 0, deps.Len())
	})

	t.Run("malformed manifest degrades to empty set", func(t *testing.T) {
		root := writeManifest(t, `{not json at all`)
		deps := manifest.Read(root)
		assert.Equal(t, 0, deps.Len())
	})

	t.Run("manifest without dependency sections", func(t *testing.T) {
		root := writeManifest(t, `{"name": "demo", "version": "1.0.0"}`)
		deps := manifest.Read(root)
		assert.Equal(t, 0, deps.Len())
	})
}

func TestNewDependencySet(t *testing.T) {
	deps := manifest.NewDependencySet("b", "a", "b", "", "c")
	assert.Equal(t, []string{"a", "b", "c"}, deps.Names())
	assert.Equal(t, 3, deps.Len())
	assert.False(t, deps.Has(""))
}

func TestHasUnderScope(t *testing.T) {
	deps := manifest.NewDependencySet("@angular/core", "@angular/common", "react")
	assert.True(t, deps.HasUnderScope("@angular"))
	assert.False(t, deps.HasUnderScope("@vue"))
}

func TestNames_ReturnsCopy(t *testing.T) {
	deps := manifest.NewDependencySet("a", "b")
	names := deps.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, deps.Names())
}
