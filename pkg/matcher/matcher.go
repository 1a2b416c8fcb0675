package matcher

import "github.com/arthur-debert/chunksplit/pkg/patterns"

// Matcher maps module paths to one named chunk group. Immutable once built.
type Matcher struct {
	// Name is the chunk group this matcher classifies into
	Name string

	// Predicate tests a normalized module path
	Predicate patterns.Predicate

	// Tier is the matcher's priority tier
	Tier Tier
}

// List is the ordered matcher list for one build invocation: sorted by
// descending tier, stable within a tier.
type List []Matcher

// GroupNames returns the matcher names in consultation order
func (l List) GroupNames() []string {
	names := make([]string, 0, len(l))
	for _, m := range l {
		names = append(names, m.Name)
	}
	return names
}

// compileGroup builds one matcher whose predicate matches when any of the
// group's patterns match
func compileGroup(name string, pats []patterns.Pattern, tier Tier) (Matcher, error) {
	predicates := make([]patterns.Predicate, 0, len(pats))
	for _, p := range pats {
		pred, err := p.Compile()
		if err != nil {
			return Matcher{}, err
		}
		predicates = append(predicates, pred)
	}

	return Matcher{
		Name: name,
		Tier: tier,
		Predicate: func(path string) bool {
			for _, pred := range predicates {
				if pred(path) {
					return true
				}
			}
			return false
		},
	}, nil
}
