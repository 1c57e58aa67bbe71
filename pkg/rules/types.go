package rules

import (
	"fmt"

	"github.com/idaholab/moose-language-support/pkg/braceexpr"
)

// Rule maps a brace expression pattern to a style directive
type Rule struct {
	Pattern string `koanf:"pattern" toml:"pattern" yaml:"pattern"`
	Style   string `koanf:"style" toml:"style" yaml:"style"`
}

// Match is the result of matching a compiled style at a position
type Match struct {
	Start  int // Byte offset of the match
	Length int // Byte length, always > 0
	Rule   int // Index of the winning rule
}

// End returns the offset just past the match
func (m Match) End() int {
	return m.Start + m.Length
}

// Option configures Compile
type Option func(*options)

type options struct {
	maxDepth        int
	limits          braceexpr.Limits
	rejectConflicts bool
}

func defaultOptions() options {
	return options{
		maxDepth: braceexpr.DefaultMaxDepth,
		limits:   braceexpr.DefaultLimits(),
	}
}

// WithMaxDepth bounds brace nesting in every pattern
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithLimits sets the expansion limits
func WithLimits(lim braceexpr.Limits) Option {
	return func(o *options) {
		o.limits = lim
	}
}

// RejectConflicts makes Compile fail when the same pattern is declared twice
// with different directives. By default the later declaration is shadowed.
func RejectConflicts() Option {
	return func(o *options) {
		o.rejectConflicts = true
	}
}

// Fingerprint identifies the effect of a set of options, so that compiled
// styles can be cached per option set.
func Fingerprint(opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return fmt.Sprintf("depth=%d;eager=%d;ceiling=%d;reject=%t",
		o.maxDepth, o.limits.EagerCap, o.limits.HardCeiling, o.rejectConflicts)
}
