// Package presets holds the built-in chunk group tables: well-known large and
// medium libraries, the conservative very-large subset, and the framework
// hint associations.
//
// Each group carries two things that are deliberately separate: Fragments are
// the canonical dependency names that make the preset relevant to a project
// (tested against the declared dependency set), while Patterns are what the
// group actually matches in module paths. A group can match more packages
// than its fragments name, e.g. the echarts group also captures zrender.
package presets

import "github.com/arthur-debert/chunksplit/pkg/patterns"

// Group is one built-in chunk group definition
type Group struct {
	// Name is the output chunk name for this group
	Name string

	// Fragments are the canonical dependency names whose presence in the
	// project manifest activates this group. A fragment beginning with @
	// denotes a scope and also covers any dependency under that scope.
	Fragments []string

	// Patterns recognize the group's packages in module paths
	Patterns []patterns.Pattern
}

func literals(names ...string) []patterns.Pattern {
	ps := make([]patterns.Pattern, 0, len(names))
	for _, n := range names {
		ps = append(ps, patterns.NewLiteral(n))
	}
	return ps
}

// LargeGroups returns the large-library presets in table order
func LargeGroups() []Group {
	return []Group{
		{
			Name:      "vue",
			Fragments: []string{"vue"},
			Patterns:  literals("vue", "@vue/", "vue-router", "pinia", "vuex"),
		},
		{
			Name:      "react",
			Fragments: []string{"react", "react-dom"},
			Patterns:  literals("react", "react-dom", "react-router", "react-router-dom", "scheduler"),
		},
		{
			Name:      "angular",
			Fragments: []string{"@angular"},
			Patterns:  literals("@angular/", "rxjs", "zone.js"),
		},
		{
			Name:      "antd",
			Fragments: []string{"antd", "@ant-design"},
			Patterns:  literals("antd", "@ant-design/"),
		},
		{
			Name:      "element-plus",
			Fragments: []string{"element-plus"},
			Patterns:  literals("element-plus", "@element-plus/"),
		},
		{
			Name:      "echarts",
			Fragments: []string{"echarts"},
			Patterns:  literals("echarts", "zrender"),
		},
		{
			Name:      "three",
			Fragments: []string{"three"},
			Patterns:  literals("three"),
		},
		{
			Name:      "monaco",
			Fragments: []string{"monaco-editor"},
			Patterns:  literals("monaco-editor"),
		},
		{
			Name:      "lodash",
			Fragments: []string{"lodash", "lodash-es"},
			Patterns:  literals("lodash", "lodash-es"),
		},
		{
			Name:      "d3",
			Fragments: []string{"d3"},
			Patterns:  literals("d3"),
		},
	}
}

// MediumGroups returns the medium-library presets in table order
func MediumGroups() []Group {
	return []Group{
		{Name: "axios", Fragments: []string{"axios"}, Patterns: literals("axios")},
		{Name: "moment", Fragments: []string{"moment"}, Patterns: literals("moment")},
		{Name: "dayjs", Fragments: []string{"dayjs"}, Patterns: literals("dayjs")},
		{Name: "ramda", Fragments: []string{"ramda"}, Patterns: literals("ramda")},
		{Name: "chartjs", Fragments: []string{"chart.js"}, Patterns: literals("chart.js")},
		{Name: "immer", Fragments: []string{"immer"}, Patterns: literals("immer")},
		{Name: "zod", Fragments: []string{"zod"}, Patterns: literals("zod")},
	}
}

// conservativeEligible names the large presets considered very large; only
// these are generated under the conservative strategy.
var conservativeEligible = map[string]bool{
	"vue":          true,
	"react":        true,
	"angular":      true,
	"antd":         true,
	"element-plus": true,
	"echarts":      true,
	"three":        true,
	"monaco":       true,
}

// ConservativeGroups returns the very-large subset of the large presets,
// preserving table order
func ConservativeGroups() []Group {
	var out []Group
	for _, g := range LargeGroups() {
		if conservativeEligible[g.Name] {
			out = append(out, g)
		}
	}
	return out
}

// Hint associates a framework-hint token with the group it activates
type Hint struct {
	Token string
	Group Group
}

// HintGroups returns the hint-token associations in table order. Framework
// tokens activate the framework's own package patterns; utility tokens
// activate their associated utility-library pattern. Hint activation does
// not consult the dependency set at all.
func HintGroups() []Hint {
	return []Hint{
		{Token: "vue", Group: Group{
			Name:     "vue",
			Patterns: literals("vue", "@vue/", "vue-router", "pinia", "vuex"),
		}},
		{Token: "react", Group: Group{
			Name:     "react",
			Patterns: literals("react", "react-dom", "react-router", "react-router-dom", "scheduler"),
		}},
		{Token: "svelte", Group: Group{
			Name:     "svelte",
			Patterns: literals("svelte", "@sveltejs/"),
		}},
		{Token: "element-plus", Group: Group{
			Name:     "element-plus",
			Patterns: literals("element-plus", "@element-plus/"),
		}},
		{Token: "vueuse", Group: Group{
			Name:     "vueuse",
			Patterns: literals("@vueuse/"),
		}},
	}
}

// HintGroupFor returns the group a hint token activates, if any
func HintGroupFor(token string) (Group, bool) {
	for _, h := range HintGroups() {
		if h.Token == token {
			return h.Group, true
		}
	}
	return Group{}, false
}
