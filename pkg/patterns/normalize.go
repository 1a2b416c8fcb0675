package patterns

import "strings"

// Normalize canonicalizes a raw module identifier for matching. Backslash
// separators become forward slashes and the literal %5C escape some hosts
// leave in virtual module ids is decoded to a slash. Idempotent.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "/")
	s = strings.ReplaceAll(s, "%5C", "/")
	return s
}

// HasNodeModules reports whether the normalized path contains a node_modules
// path segment. Paths without one belong to first-party source.
func HasNodeModules(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == "node_modules" {
			return true
		}
	}
	return false
}
