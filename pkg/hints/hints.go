// Package hints derives framework hint tokens from the set of build-tool
// integrations active in the current build. Hints let the matcher builder
// activate framework groups even when the framework package itself is not
// visible in the project manifest (e.g. it is injected by the integration).
package hints

import (
	"strings"

	"github.com/arthur-debert/chunksplit/pkg/logging"
)

// HintSet is an ordered, deduplicated set of hint tokens. Order is the order
// of first detection, which the matcher builder preserves.
type HintSet struct {
	tokens []string
	set    map[string]bool
}

// NewHintSet builds a hint set from tokens, keeping first-seen order
func NewHintSet(tokens ...string) HintSet {
	set := make(map[string]bool, len(tokens))
	var uniq []string
	for _, tok := range tokens {
		if tok == "" || set[tok] {
			continue
		}
		set[tok] = true
		uniq = append(uniq, tok)
	}
	return HintSet{tokens: uniq, set: set}
}

// Has reports whether the token was detected
func (h HintSet) Has(token string) bool {
	return h.set[token]
}

// Tokens returns the tokens in detection order
func (h HintSet) Tokens() []string {
	out := make([]string, len(h.tokens))
	copy(out, h.tokens)
	return out
}

// Len returns the number of detected tokens
func (h HintSet) Len() int {
	return len(h.tokens)
}

// detection maps a plugin-identifier fragment to the hint token it implies.
// Checked in order; first fragment contained in the plugin id wins for that
// id.
var detection = []struct {
	fragment string
	token    string
}{
	// Must precede plugin-vue: unplugin-vue-components contains that
	// substring but implies component auto-import, not the framework.
	{"vue-components", "vueuse"},
	{"plugin-vue", "vue"},
	{"vite:vue", "vue"},
	{"plugin-react", "react"},
	{"vite:react", "react"},
	{"plugin-svelte", "svelte"},
	{"element-plus", "element-plus"},
	{"vueuse", "vueuse"},
}

// Detect maps active plugin identifiers to hint tokens. Unrecognized
// identifiers contribute nothing; an empty input yields an empty set.
func Detect(activePlugins []string) HintSet {
	logger := logging.GetLogger("hints")

	var tokens []string
	for _, id := range activePlugins {
		for _, d := range detection {
			if strings.Contains(id, d.fragment) {
				tokens = append(tokens, d.token)
				break
			}
		}
	}

	set := NewHintSet(tokens...)
	if set.Len() > 0 {
		logger.Debug().Strs("tokens", set.Tokens()).Msg("Detected framework hints")
	}
	return set
}
