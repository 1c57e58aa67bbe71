package rules

import (
	"github.com/rs/zerolog"

	"github.com/idaholab/moose-language-support/pkg/braceexpr"
	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/logging"
)

// CompiledStyle is the immutable product of Compile
type CompiledStyle struct {
	name       string
	directives []string
	trie       trie
	lazy       []lazyRule
	literals   int
}

type lazyRule struct {
	rule    int
	matcher *braceexpr.Matcher
}

type compiler struct {
	opts   options
	logger zerolog.Logger
	style  *CompiledStyle
	seen   map[string]int // canonical pattern -> first rule
}

// Compile parses and expands every rule and builds the matching structure.
// Errors carry the index and pattern of the offending rule.
func Compile(name string, rs []Rule, opts ...Option) (*CompiledStyle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &compiler{
		opts:   o,
		logger: logging.GetLogger("rules.compiler").With().Str("style", name).Logger(),
		style: &CompiledStyle{
			name:       name,
			directives: make([]string, len(rs)),
		},
		seen: make(map[string]int, len(rs)),
	}
	defer logging.LogOperationStart(c.logger, "compile style")()

	for i, r := range rs {
		if err := c.add(i, r); err != nil {
			err = errors.AddDetail(err, errors.DetailRule, i)
			err = errors.AddDetail(err, errors.DetailPattern, r.Pattern)
			return nil, errors.AddDetail(err, errors.DetailStyle, name)
		}
	}

	c.logger.Debug().
		Int("rules", len(rs)).
		Int("literals", c.style.literals).
		Int("lazy", len(c.style.lazy)).
		Int("trieNodes", c.style.trie.nodes).
		Msg("Compiled style")
	return c.style, nil
}

func (c *compiler) add(i int, r Rule) error {
	if r.Style == "" {
		return errors.Newf(errors.ErrInvalidInput, "rule %d has no style directive", i)
	}
	c.style.directives[i] = r.Style

	n, err := braceexpr.Parse(r.Pattern, braceexpr.WithMaxDepth(c.opts.maxDepth))
	if err != nil {
		return err
	}

	canonical := n.String()
	if first, ok := c.seen[canonical]; ok {
		if c.opts.rejectConflicts && c.style.directives[first] != r.Style {
			return errors.Newf(errors.ErrDuplicateRule,
				"pattern %q is declared by rule %d with style %q and by rule %d with style %q",
				r.Pattern, first, c.style.directives[first], i, r.Style)
		}
		c.logger.Debug().
			Int("rule", i).
			Int("shadowedBy", first).
			Str("pattern", r.Pattern).
			Msg("Duplicate pattern shadowed")
		return nil
	}
	c.seen[canonical] = i

	exp, err := braceexpr.Expand(n, c.opts.limits)
	if err != nil {
		return err
	}
	if exp.IsLazy() {
		c.logger.Trace().
			Int("rule", i).
			Uint64("count", exp.Count).
			Int("maxLen", exp.Lazy.MaxLen()).
			Msg("Rule compiled to lazy matcher")
		c.style.lazy = append(c.style.lazy, lazyRule{rule: i, matcher: exp.Lazy})
		return nil
	}
	for _, lit := range exp.Literals {
		if c.style.trie.insert(lit, i) {
			c.style.literals++
		}
	}
	return nil
}

// Name returns the style name given to Compile
func (cs *CompiledStyle) Name() string {
	return cs.name
}

// Len returns the number of rules
func (cs *CompiledStyle) Len() int {
	return len(cs.directives)
}

// Directive returns the style directive of rule i
func (cs *CompiledStyle) Directive(i int) string {
	return cs.directives[i]
}

// Literals returns the number of distinct literals in the trie
func (cs *CompiledStyle) Literals() int {
	return cs.literals
}

// LazyRules returns the number of rules matched without expansion
func (cs *CompiledStyle) LazyRules() int {
	return len(cs.lazy)
}

// Match finds the best match starting exactly at pos: the longest one, and
// among equally long ones the earliest rule.
func (cs *CompiledStyle) Match(s string, pos int) (Match, bool) {
	if pos < 0 || pos >= len(s) {
		return Match{}, false
	}

	best, rule := cs.trie.longest(s, pos)
	for _, lr := range cs.lazy {
		limit := lr.matcher.MaxLen()
		if limit < best || (limit == best && lr.rule > rule) {
			continue
		}
		l := lr.matcher.Longest(s, pos)
		if l > best || (l == best && l > 0 && lr.rule < rule) {
			best, rule = l, lr.rule
		}
	}

	if best == 0 {
		return Match{}, false
	}
	return Match{Start: pos, Length: best, Rule: rule}, true
}
