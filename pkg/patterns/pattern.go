// Package patterns compiles package-name patterns into boundary-safe
// predicates over normalized module paths.
//
// A pattern is either a literal package name ("react", "@vue/reactivity") or
// a regular expression. Literals are compiled so that they only match inside
// a node_modules segment, tolerate pnpm-style content-addressed store
// directories, and never match a different package that merely shares a
// prefix: a pattern for "react" matches node_modules/react/... and
// node_modules/.pnpm/react@18.2.0/... but not node_modules/react-dom/...
package patterns

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/chunksplit/pkg/errors"
)

// Kind discriminates the two pattern variants
type Kind int

const (
	// KindLiteral is a plain package name
	KindLiteral Kind = iota

	// KindRegexp is a user-supplied regular expression, matched as-is
	KindRegexp
)

// Predicate tests a normalized module path
type Predicate func(path string) bool

// Pattern is one way a module path may be recognized as belonging to a
// package: a literal package name or a regular expression
type Pattern struct {
	Kind    Kind
	Literal string         // set when Kind == KindLiteral
	Expr    *regexp.Regexp // set when Kind == KindRegexp
}

// NewLiteral returns a literal package-name pattern
func NewLiteral(name string) Pattern {
	return Pattern{Kind: KindLiteral, Literal: name}
}

// NewRegexp returns a regular-expression pattern
func NewRegexp(expr *regexp.Regexp) Pattern {
	return Pattern{Kind: KindRegexp, Expr: expr}
}

// Parse interprets a configured pattern string. A string wrapped in slashes
// ("/vue|pinia/") is compiled as a regular expression; anything else is a
// literal package name. Malformed expressions fail immediately so a broken
// configuration never reaches module resolution.
func Parse(s string) (Pattern, error) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		expr, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return Pattern{}, errors.Wrapf(err, errors.ErrPatternInvalid,
				"invalid regular expression pattern %q", s)
		}
		return NewRegexp(expr), nil
	}
	return NewLiteral(s), nil
}

// LiteralLen returns the length of the literal name, or zero for regular
// expressions. Used to order a group's patterns most-specific-first.
func (p Pattern) LiteralLen() int {
	if p.Kind == KindLiteral {
		return len(p.Literal)
	}
	return 0
}

// String returns the configured form of the pattern
func (p Pattern) String() string {
	if p.Kind == KindRegexp {
		return "/" + p.Expr.String() + "/"
	}
	return p.Literal
}

// Compile turns the pattern into a predicate over normalized paths.
// Regular-expression patterns test the path directly; callers anchor them
// for their intended boundary semantics. Literal patterns get the full
// node_modules boundary treatment.
func (p Pattern) Compile() (Predicate, error) {
	if p.Kind == KindRegexp {
		expr := p.Expr
		return expr.MatchString, nil
	}

	expr, err := compileLiteral(p.Literal)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
			"invalid package name pattern %q", p.Literal)
	}
	return expr.MatchString, nil
}

// compileLiteral builds the boundary-safe expression for a literal name.
//
// The body must follow a /node_modules/ segment, optionally through a
// .pnpm store layer, and must be terminated by a path separator, an @
// (store directory names embed @version suffixes), or end of string.
// Unscoped names additionally match under an arbitrary scope prefix.
func compileLiteral(name string) (*regexp.Regexp, error) {
	name = strings.TrimSuffix(name, "/")
	body := regexp.QuoteMeta(name)
	if !strings.HasPrefix(name, "@") {
		body = `(?:@[^/]+/)?` + body
	}
	return regexp.Compile(`(?i)(?:^|/)node_modules/(?:\.pnpm/)?` + body + `(?:[/@]|$)`)
}
