// Package config loads and resolves chunksplit's configuration.
//
// Configuration is layered with koanf: embedded defaults, then a project
// config file (.chunksplit.toml, chunksplit.toml, or their .yaml variants),
// then CHUNKSPLIT_* environment variables, then programmatic overrides.
// Resolve validates the merged result and fail-fast compiles every custom
// group pattern so a malformed expression aborts before any module is
// classified.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/chunksplit/pkg/errors"
	"github.com/arthur-debert/chunksplit/pkg/logging"
	"github.com/arthur-debert/chunksplit/pkg/patterns"
)

// Strategy selects which built-in preset tables and synthesis rules
// contribute matchers
type Strategy string

const (
	// StrategyAggressive synthesizes one group per declared dependency
	StrategyAggressive Strategy = "aggressive"

	// StrategyBalanced generates the large and medium presets relevant to
	// the project's dependencies
	StrategyBalanced Strategy = "balanced"

	// StrategyConservative generates only the very-large presets
	StrategyConservative Strategy = "conservative"
)

// DefaultMinSize is the default minimum dependency size in KB
const DefaultMinSize = 50

// ParseStrategy validates a strategy label
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAggressive, StrategyBalanced, StrategyConservative:
		return Strategy(s), nil
	case "":
		return StrategyBalanced, nil
	default:
		return "", errors.Newf(errors.ErrStrategyInvalid,
			"unknown strategy %q (want aggressive, balanced or conservative)", s)
	}
}

// GroupSpec is one custom chunk group as declared in configuration
type GroupSpec struct {
	Name     string   `koanf:"name"`
	Patterns []string `koanf:"patterns"`
}

// Options is the raw, user-facing configuration under the [split] table
type Options struct {
	// Override forces the default output naming instead of only filling gaps
	Override bool `koanf:"override"`

	// Strategy is the splitting strategy label
	Strategy string `koanf:"strategy"`

	// MinSize is the minimum dependency size in KB considered worth its own
	// chunk. Accepted and stored; no splitting decision consults it yet.
	MinSize int `koanf:"minsize"`

	// Groups are custom chunk groups, highest matching priority, in
	// declared order
	Groups []GroupSpec `koanf:"groups"`
}

// Group is a resolved custom group with parsed patterns
type Group struct {
	Name     string
	Patterns []patterns.Pattern
}

// Resolved is the fully-defaulted, validated configuration
type Resolved struct {
	Override bool
	Strategy Strategy
	MinSize  int
	Groups   []Group
}

// Default returns the built-in option values
func Default() Options {
	return Options{
		Override: false,
		Strategy: string(StrategyBalanced),
		MinSize:  DefaultMinSize,
	}
}

// configFiles lists the project config file candidates in load order,
// paired with their parsers. The first existing TOML and the first existing
// YAML candidate are each loaded, YAML layered over TOML.
var configFiles = []struct {
	names  []string
	parser koanf.Parser
}{
	{[]string{".chunksplit.toml", "chunksplit.toml"}, toml.Parser()},
	{[]string{".chunksplit.yaml", "chunksplit.yaml"}, yaml.Parser()},
}

// Load merges the configuration layers for the given project root.
// overrides is an optional flat map of koanf keys (e.g. "split.strategy")
// applied last, used by the CLI for flag values.
func Load(root string, overrides map[string]interface{}) (Options, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	for _, cf := range configFiles {
		for _, name := range cf.names {
			path := filepath.Join(root, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), cf.parser); err != nil {
				return Options{}, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded project config")
			break
		}
	}

	err := k.Load(env.Provider("CHUNKSPLIT_", ".", func(s string) string {
		return "split." + strings.ToLower(strings.TrimPrefix(s, "CHUNKSPLIT_"))
	}), nil)
	if err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var opts Options
	if err := k.Unmarshal("split", &opts); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration structure")
	}
	return opts, nil
}

// Resolve validates the options and compiles every custom-group pattern.
// A malformed pattern aborts resolution with an error naming the offending
// group.
func (o Options) Resolve() (*Resolved, error) {
	strategy, err := ParseStrategy(o.Strategy)
	if err != nil {
		return nil, err
	}

	minSize := o.MinSize
	if minSize == 0 {
		minSize = DefaultMinSize
	}
	if minSize < 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid, "minsize must not be negative, got %d", minSize)
	}

	groups := make([]Group, 0, len(o.Groups))
	for i, spec := range o.Groups {
		if spec.Name == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "custom group %d has no name", i)
		}
		group := Group{Name: spec.Name}
		for _, raw := range spec.Patterns {
			p, err := patterns.Parse(raw)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
					"custom group %q has an invalid pattern", spec.Name)
			}
			group.Patterns = append(group.Patterns, p)
		}
		groups = append(groups, group)
	}

	return &Resolved{
		Override: o.Override,
		Strategy: strategy,
		MinSize:  minSize,
		Groups:   groups,
	}, nil
}
