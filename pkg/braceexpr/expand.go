package braceexpr

import (
	"github.com/idaholab/moose-language-support/pkg/errors"
)

const (
	// DefaultEagerCap is the largest product Expand materializes.
	DefaultEagerCap uint64 = 4096
	// DefaultHardCeiling is the largest product accepted at all.
	DefaultHardCeiling uint64 = 1 << 40
)

// Limits bound the work Expand may do.
type Limits struct {
	// EagerCap is the largest product that is enumerated into literals.
	// Larger products are matched lazily.
	EagerCap uint64
	// HardCeiling is the largest product accepted even for lazy matching.
	// Zero means DefaultHardCeiling.
	HardCeiling uint64
}

// DefaultLimits returns the default expansion limits.
func DefaultLimits() Limits {
	return Limits{EagerCap: DefaultEagerCap, HardCeiling: DefaultHardCeiling}
}

// Expansion is the result of expanding a tree: either the full list of
// literal strings or a lazy matcher.
type Expansion struct {
	Count    uint64
	Literals []string
	Lazy     *Matcher
}

// IsLazy reports whether the expansion was too large to materialize.
func (e *Expansion) IsLazy() bool {
	return e.Lazy != nil
}

// Expand expands n. The literal list follows declaration order with the
// rightmost group varying fastest. A product above lim.HardCeiling, or one
// that overflows, fails with an OVERFLOW error and nothing is expanded.
func Expand(n Node, lim Limits) (*Expansion, error) {
	if lim.HardCeiling == 0 {
		lim.HardCeiling = DefaultHardCeiling
	}
	count, ok := Count(n)
	if !ok {
		return nil, errors.New(errors.ErrOverflow, "brace expansion overflows")
	}
	if count > lim.HardCeiling {
		return nil, errors.Newf(errors.ErrOverflow,
			"brace expansion yields %d strings, ceiling is %d", count, lim.HardCeiling).
			WithDetail("count", count)
	}
	if count > lim.EagerCap {
		return &Expansion{Count: count, Lazy: NewMatcher(n)}, nil
	}
	return &Expansion{Count: count, Literals: enumerate(n, int(count))}, nil
}

// ExpandString parses and expands src.
func ExpandString(src string, lim Limits, opts ...ParseOption) (*Expansion, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return Expand(n, lim)
}

// enumerate materializes all strings of n. sizeHint presizes the result.
func enumerate(n Node, sizeHint int) []string {
	switch x := n.(type) {
	case *Literal:
		return []string{x.Text}
	case *Sequence:
		out := []string{""}
		for _, item := range x.Items {
			suffixes := enumerate(item, 0)
			next := make([]string, 0, len(out)*len(suffixes))
			for _, prefix := range out {
				for _, s := range suffixes {
					next = append(next, prefix+s)
				}
			}
			out = next
		}
		return out
	case *Alternation:
		out := make([]string, 0, sizeHint)
		for _, br := range x.Branches {
			out = append(out, enumerate(br, 0)...)
		}
		return out
	case *Range:
		c, _ := x.Count()
		out := make([]string, 0, c)
		for i := uint64(0); i < c; i++ {
			out = append(out, x.Value(i))
		}
		return out
	}
	return nil
}
