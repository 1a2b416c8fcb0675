// Package manifest reads the project's package manifest and exposes the
// declared dependency names as a set. Read failures are never fatal here:
// classification simply proceeds with fewer strategy-based matchers.
package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/chunksplit/pkg/logging"
)

// ManifestName is the host ecosystem's standard package manifest
const ManifestName = "package.json"

// keyDelim is the koanf key delimiter. Package names legitimately contain
// dots (chart.js) and slashes (@vue/reactivity), so the delimiter must be a
// sequence that cannot appear in a dependency name.
const keyDelim = "::"

// DependencySet is the set of dependency package names declared by the
// project manifest. Iteration order is lexicographic so builds are
// reproducible regardless of manifest key order.
type DependencySet struct {
	names []string
	set   map[string]bool
}

// NewDependencySet builds a set from the given names, deduplicated and sorted
func NewDependencySet(names ...string) DependencySet {
	set := make(map[string]bool, len(names))
	var uniq []string
	for _, n := range names {
		if n == "" || set[n] {
			continue
		}
		set[n] = true
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)
	return DependencySet{names: uniq, set: set}
}

// Has reports whether name is a declared dependency
func (s DependencySet) Has(name string) bool {
	return s.set[name]
}

// HasUnderScope reports whether any declared dependency lives under the
// given scope, e.g. HasUnderScope("@vue") is true when @vue/reactivity is
// declared.
func (s DependencySet) HasUnderScope(scope string) bool {
	prefix := scope + "/"
	for _, n := range s.names {
		if len(n) > len(prefix) && n[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// Names returns the dependency names in lexicographic order
func (s DependencySet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of declared dependencies
func (s DependencySet) Len() int {
	return len(s.names)
}

// Read loads the dependency set from the manifest at the given project root.
// It collects the keys of the dependencies and devDependencies sections.
// Any read or parse failure degrades to an empty set.
func Read(root string) DependencySet {
	logger := logging.GetLogger("manifest")

	path := filepath.Join(root, ManifestName)
	if _, err := os.Stat(path); err != nil {
		logger.Warn().Str("path", path).Msg("No readable manifest, continuing with empty dependency set")
		return NewDependencySet()
	}

	k := koanf.NewWithConf(koanf.Conf{Delim: keyDelim})
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		logger.Warn().Err(err).Str("path", path).
			Msg("Failed to parse manifest, continuing with empty dependency set")
		return NewDependencySet()
	}

	var names []string
	for _, section := range []string{"dependencies", "devDependencies"} {
		for name := range k.StringMap(section) {
			names = append(names, name)
		}
	}

	set := NewDependencySet(names...)
	logger.Debug().Str("path", path).Int("count", set.Len()).Msg("Loaded manifest dependencies")
	return set
}
