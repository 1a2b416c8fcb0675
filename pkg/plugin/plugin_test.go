// Test Type: Integration Test
// Description: Tests for the plugin lifecycle - configure, build start, per-module hook

package plugin_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chunksplit/pkg/config"
	"github.com/arthur-debert/chunksplit/pkg/errors"
	"github.com/arthur-debert/chunksplit/pkg/matcher"
	"github.com/arthur-debert/chunksplit/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectWithManifest(t *testing.T, manifest string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(manifest), 0644))
	return root
}

func TestPlugin_Lifecycle(t *testing.T) {
	root := projectWithManifest(t, `{
		"dependencies": {"vue": "^3.2.0", "echarts": "^5.4.0", "axios": "^1.4.0"}
	}`)

	p := plugin.New()
	require.NoError(t, p.Configure(config.Options{Strategy: "conservative"}))
	require.NoError(t, p.BuildStart(root, nil))

	group, ok := p.ChunkName("/p/node_modules/vue/dist/vue.esm.js")
	require.True(t, ok)
	assert.Equal(t, "vue", group)

	group, ok = p.ChunkName("/p/node_modules/axios/index.js")
	require.True(t, ok)
	assert.Equal(t, matcher.FallbackGroup, group)

	_, ok = p.ChunkName("/p/src/main.js")
	assert.False(t, ok)

	summary := p.Summary()
	assert.Equal(t, 2, summary.Groups)
	assert.Equal(t, "conservative", summary.Strategy)
	assert.Equal(t, "chunksplit: 2 chunk groups (strategy: conservative)", summary.String())
}

func TestPlugin_ConfigureFailsFast(t *testing.T) {
	p := plugin.New()
	err := p.Configure(config.Options{
		Groups: []config.GroupSpec{{Name: "bad", Patterns: []string{"/[unclosed/"}}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
}

func TestPlugin_BuildStartBeforeConfigure(t *testing.T) {
	p := plugin.New()
	err := p.BuildStart(t.TempDir(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestPlugin_ChunkNameBeforeBuild(t *testing.T) {
	p := plugin.New()
	require.NoError(t, p.Configure(config.Options{}))
	_, ok := p.ChunkName("/p/node_modules/react/index.js")
	assert.False(t, ok)
}

func TestPlugin_UnreadableManifestDegrades(t *testing.T) {
	p := plugin.New()
	require.NoError(t, p.Configure(config.Options{Strategy: "balanced"}))
	// No package.json at all: the build proceeds with no strategy matchers.
	require.NoError(t, p.BuildStart(t.TempDir(), nil))

	group, ok := p.ChunkName("/p/node_modules/react/index.js")
	require.True(t, ok)
	assert.Equal(t, matcher.FallbackGroup, group)
}

func TestPlugin_HintsSurviveMissingManifest(t *testing.T) {
	p := plugin.New()
	require.NoError(t, p.Configure(config.Options{Strategy: "balanced"}))
	require.NoError(t, p.BuildStart(t.TempDir(), []string{"vite:vue"}))

	group, ok := p.ChunkName("/p/node_modules/vue/dist/vue.esm.js")
	require.True(t, ok)
	assert.Equal(t, "vue", group)
}

func TestPlugin_RebuildReplacesMatcherList(t *testing.T) {
	root := projectWithManifest(t, `{"dependencies": {"react": "^18.2.0"}}`)

	p := plugin.New()
	require.NoError(t, p.Configure(config.Options{Strategy: "aggressive"}))
	require.NoError(t, p.BuildStart(root, nil))

	group, ok := p.ChunkName("/p/node_modules/react/index.js")
	require.True(t, ok)
	assert.Equal(t, "react", group)

	// Watch-mode: the manifest changed, the next invocation rebuilds.
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"dependencies": {"vue": "^3.2.0"}}`), 0644))
	require.NoError(t, p.BuildStart(root, nil))

	group, ok = p.ChunkName("/p/node_modules/react/index.js")
	require.True(t, ok)
	assert.Equal(t, matcher.FallbackGroup, group, "stale react matcher must be gone")

	group, ok = p.ChunkName("/p/node_modules/vue/dist/vue.esm.js")
	require.True(t, ok)
	assert.Equal(t, "vue", group)
}

func TestPlugin_OutputNaming(t *testing.T) {
	t.Run("fill gaps by default", func(t *testing.T) {
		p := plugin.New()
		require.NoError(t, p.Configure(config.Options{}))
		merged := p.OutputNaming(map[string]string{"chunkFileNames": "js/[name].js"})
		assert.Equal(t, "js/[name].js", merged["chunkFileNames"])
		assert.NotEmpty(t, merged["entryFileNames"])
	})

	t.Run("override forces defaults", func(t *testing.T) {
		p := plugin.New()
		require.NoError(t, p.Configure(config.Options{Override: true}))
		merged := p.OutputNaming(map[string]string{"chunkFileNames": "js/[name].js"})
		assert.NotEqual(t, "js/[name].js", merged["chunkFileNames"])
	})
}
