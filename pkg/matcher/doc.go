// Package matcher builds the ordered matcher list and resolves module paths
// to chunk group names.
//
// # Ordering
//
// Matchers live in named priority tiers rather than bare integers:
//
//	TierCustom > TierHint > TierLargePreset > TierMediumPreset > TierSynthesized
//
// The built list is a total order by descending tier; matchers in the same
// tier keep the relative order in which they were constructed (custom groups
// in declared order, hint groups in detection order, strategy groups in
// preset-table or dependency-set order). The first matching matcher wins, so
// a custom group always beats a built-in group of the same name. Lower-tier
// duplicates of a name are unreachable dead entries, which is acceptable.
//
// # Lifecycle
//
// Build runs once per build invocation and the resulting List is immutable.
// A new invocation (e.g. a watch-mode rebuild) builds a fresh list and a
// fresh Resolver; nothing is mutated in place, so in-flight resolutions
// never observe a partially updated list.
package matcher
