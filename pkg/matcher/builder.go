package matcher

import (
	"sort"
	"strings"

	"github.com/arthur-debert/chunksplit/pkg/config"
	"github.com/arthur-debert/chunksplit/pkg/errors"
	"github.com/arthur-debert/chunksplit/pkg/hints"
	"github.com/arthur-debert/chunksplit/pkg/logging"
	"github.com/arthur-debert/chunksplit/pkg/manifest"
	"github.com/arthur-debert/chunksplit/pkg/patterns"
	"github.com/arthur-debert/chunksplit/pkg/presets"
)

// typesScope is the type-declarations-only convention prefix; packages under
// it ship no runtime code and never get their own chunk
const typesScope = "@types/"

// Build constructs the ordered matcher list for one build invocation from
// the resolved configuration, the project's declared dependencies and the
// detected framework hints. Deterministic for identical inputs.
func Build(cfg *config.Resolved, deps manifest.DependencySet, hintSet hints.HintSet) (List, error) {
	logger := logging.GetLogger("matcher.builder")

	var list List

	// Custom groups, declared order
	for _, g := range cfg.Groups {
		m, err := compileGroup(g.Name, sortGroupPatterns(g.Patterns), TierCustom)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"failed to compile custom group %q", g.Name)
		}
		list = append(list, m)
	}

	// Hint-activated groups, detection order
	for _, token := range hintSet.Tokens() {
		g, ok := presets.HintGroupFor(token)
		if !ok {
			logger.Debug().Str("token", token).Msg("No group associated with hint token")
			continue
		}
		m, err := compileGroup(g.Name, g.Patterns, TierHint)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}

	// Strategy groups
	switch cfg.Strategy {
	case config.StrategyAggressive:
		for _, dep := range deps.Names() {
			if strings.HasPrefix(dep, typesScope) {
				continue
			}
			m, err := compileGroup(dep, []patterns.Pattern{patterns.NewLiteral(dep)}, TierSynthesized)
			if err != nil {
				return nil, err
			}
			list = append(list, m)
		}

	case config.StrategyBalanced:
		var err error
		if list, err = appendPresets(list, presets.LargeGroups(), TierLargePreset, deps); err != nil {
			return nil, err
		}
		if list, err = appendPresets(list, presets.MediumGroups(), TierMediumPreset, deps); err != nil {
			return nil, err
		}

	case config.StrategyConservative:
		var err error
		if list, err = appendPresets(list, presets.ConservativeGroups(), TierLargePreset, deps); err != nil {
			return nil, err
		}
	}

	// Stable sort keeps insertion order within a tier.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Tier > list[j].Tier
	})

	logger.Info().
		Int("matchers", len(list)).
		Str("strategy", string(cfg.Strategy)).
		Int("dependencies", deps.Len()).
		Int("hints", hintSet.Len()).
		Msg("Built matcher list")

	return list, nil
}

// appendPresets adds every preset group relevant to the dependency set,
// preserving table order
func appendPresets(list List, groups []presets.Group, tier Tier, deps manifest.DependencySet) (List, error) {
	for _, g := range groups {
		if !relevant(g, deps) {
			continue
		}
		m, err := compileGroup(g.Name, g.Patterns, tier)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}

// relevant reports whether a preset applies to the project: one of its
// fragments must equal a declared dependency name exactly, or name a scope
// some declared dependency lives under. Exact matching avoids dragging in a
// preset because an unrelated dependency merely contains its name.
func relevant(g presets.Group, deps manifest.DependencySet) bool {
	for _, fragment := range g.Fragments {
		if deps.Has(fragment) {
			return true
		}
		if strings.HasPrefix(fragment, "@") && deps.HasUnderScope(fragment) {
			return true
		}
	}
	return false
}

// sortGroupPatterns orders a single group's patterns longest-literal-first
// so more specific literals are tried before shorter ones. Regular
// expressions count as zero length and sort after all literals. Stable, so
// equal-length patterns keep their declared order.
func sortGroupPatterns(pats []patterns.Pattern) []patterns.Pattern {
	sorted := make([]patterns.Pattern, len(pats))
	copy(sorted, pats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LiteralLen() > sorted[j].LiteralLen()
	})
	return sorted
}
