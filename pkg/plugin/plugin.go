// Package plugin ties the classification pipeline to a host build tool's
// lifecycle: configuration first, then one matcher build per build
// invocation, then one ChunkName call per encountered module.
package plugin

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/chunksplit/pkg/assets"
	"github.com/arthur-debert/chunksplit/pkg/config"
	"github.com/arthur-debert/chunksplit/pkg/errors"
	"github.com/arthur-debert/chunksplit/pkg/hints"
	"github.com/arthur-debert/chunksplit/pkg/logging"
	"github.com/arthur-debert/chunksplit/pkg/manifest"
	"github.com/arthur-debert/chunksplit/pkg/matcher"
)

// Plugin drives the classification pipeline across build invocations.
//
// Not safe for concurrent Configure/BuildStart; the host lifecycle is
// synchronous. Each BuildStart replaces the resolver wholesale, so a
// watch-mode rebuild never observes a half-built matcher list.
type Plugin struct {
	logger   zerolog.Logger
	cfg      *config.Resolved
	list     matcher.List
	resolver *matcher.Resolver
}

// Summary is a read-only projection of the last matcher build, suitable for
// a one-line build-log report
type Summary struct {
	Groups   int
	Strategy string
}

// String formats the summary for the build log
func (s Summary) String() string {
	return fmt.Sprintf("chunksplit: %d chunk groups (strategy: %s)", s.Groups, s.Strategy)
}

// New creates an unconfigured plugin
func New() *Plugin {
	return &Plugin{logger: logging.GetLogger("plugin")}
}

// Configure resolves the options. Runs once at plugin-configuration time;
// malformed custom patterns fail here, before any build starts.
func (p *Plugin) Configure(opts config.Options) error {
	resolved, err := opts.Resolve()
	if err != nil {
		return err
	}
	p.cfg = resolved
	p.logger.Debug().
		Str("strategy", string(resolved.Strategy)).
		Int("customGroups", len(resolved.Groups)).
		Msg("Plugin configured")
	return nil
}

// BuildStart begins a build invocation: it reads the project manifest,
// detects framework hints from the active plugins, and builds a fresh
// matcher list. The previous invocation's resolver is discarded whole.
func (p *Plugin) BuildStart(root string, activePlugins []string) error {
	if p.cfg == nil {
		return errors.New(errors.ErrInternal, "plugin used before Configure")
	}

	deps := manifest.Read(root)
	hintSet := hints.Detect(activePlugins)

	list, err := matcher.Build(p.cfg, deps, hintSet)
	if err != nil {
		return err
	}

	// Assign-then-use: the new resolver is fully constructed before the
	// old one is replaced.
	p.list = list
	p.resolver = matcher.NewResolver(list)
	return nil
}

// ChunkName is the per-module hook: it maps a module identifier to a chunk
// group name. False means no classification (first-party source, or called
// before any build started) and defers to the host's default chunking.
func (p *Plugin) ChunkName(id string) (string, bool) {
	if p.resolver == nil {
		return "", false
	}
	return p.resolver.Resolve(id)
}

// OutputNaming merges the default output templates into the host's naming
// options, honoring the override setting
func (p *Plugin) OutputNaming(existing map[string]string) map[string]string {
	override := p.cfg != nil && p.cfg.Override
	return assets.Apply(existing, override)
}

// Matchers returns the current invocation's matcher list
func (p *Plugin) Matchers() matcher.List {
	return p.list
}

// Summary returns the diagnostic projection of the last matcher build
func (p *Plugin) Summary() Summary {
	strategy := ""
	if p.cfg != nil {
		strategy = string(p.cfg.Strategy)
	}
	return Summary{Groups: len(p.list), Strategy: strategy}
}
