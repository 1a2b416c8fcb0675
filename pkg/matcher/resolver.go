package matcher

import "github.com/arthur-debert/chunksplit/pkg/patterns"

// FallbackGroup is the reserved chunk name for third-party modules no
// matcher recognizes
const FallbackGroup = "vendor"

// Resolver classifies module paths against a fixed matcher list. It is pure:
// no side effects, no I/O, identical output for identical input. Safe to
// call once per module, thousands of times per build.
type Resolver struct {
	list List
}

// NewResolver creates a resolver over the given matcher list. The list is
// captured as-is; build a new resolver for a new invocation instead of
// mutating it.
func NewResolver(list List) *Resolver {
	return &Resolver{list: list}
}

// Resolve maps a raw module identifier to a chunk group name. The second
// return is false for first-party modules (no node_modules segment), which
// the host's default chunking handles. Unrecognized third-party modules
// classify into FallbackGroup.
func (r *Resolver) Resolve(rawID string) (string, bool) {
	path := patterns.Normalize(rawID)

	if !patterns.HasNodeModules(path) {
		return "", false
	}

	for _, m := range r.list {
		if m.Predicate(path) {
			return m.Name, true
		}
	}

	return FallbackGroup, true
}
