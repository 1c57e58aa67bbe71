package braceexpr

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind tags the variant of a Node.
type Kind int

const (
	KindLiteral Kind = iota
	KindSequence
	KindAlternation
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindSequence:
		return "sequence"
	case KindAlternation:
		return "alternation"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Node is an element of a parsed brace expression. The set of
// implementations is closed: *Literal, *Sequence, *Alternation and *Range.
type Node interface {
	Kind() Kind
	// String re-encodes the node as brace expression source.
	String() string
	node()
}

// Literal is plain text with all escapes resolved.
type Literal struct {
	Text string
}

// Sequence concatenates its items left to right. An empty Sequence matches
// the empty string.
type Sequence struct {
	Items []Node
}

// Alternation chooses one of its branches. It always has two or more.
type Alternation struct {
	Branches []Node
}

// Range is an inclusive run of integers or characters. For character ranges
// Lo and Hi hold code points.
type Range struct {
	Numeric  bool
	Lo, Hi   int64
	Step     int64
	Width    int  // zero padding for numeric ranges, 0 if unpadded
	Reversed bool // written high to low
}

func (*Literal) Kind() Kind     { return KindLiteral }
func (*Sequence) Kind() Kind    { return KindSequence }
func (*Alternation) Kind() Kind { return KindAlternation }
func (*Range) Kind() Kind       { return KindRange }

func (*Literal) node()     {}
func (*Sequence) node()    {}
func (*Alternation) node() {}
func (*Range) node()       {}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`, `,`, `\,`)

func (l *Literal) String() string {
	return literalEscaper.Replace(l.Text)
}

func (s *Sequence) String() string {
	var b strings.Builder
	for _, item := range s.Items {
		b.WriteString(item.String())
	}
	return b.String()
}

func (a *Alternation) String() string {
	parts := make([]string, len(a.Branches))
	for i, br := range a.Branches {
		parts[i] = br.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (r *Range) String() string {
	first, last := r.Lo, r.Hi
	if r.Reversed {
		first, last = last, first
	}
	s := "{" + r.format(first) + ".." + r.format(last)
	if r.Step != 1 {
		s += ".." + strconv.FormatInt(r.Step, 10)
	}
	return s + "}"
}

// Count returns the number of values in the range. ok is false if the count
// does not fit in a uint64.
func (r *Range) Count() (n uint64, ok bool) {
	span := uint64(r.Hi) - uint64(r.Lo)
	n = span / uint64(r.Step)
	if n == math.MaxUint64 {
		return 0, false
	}
	return n + 1, true
}

// Value returns the i-th value of the range in declared order.
func (r *Range) Value(i uint64) string {
	off := i * uint64(r.Step)
	if r.Reversed {
		return r.format(int64(uint64(r.Hi) - off))
	}
	return r.format(int64(uint64(r.Lo) + off))
}

// contains reports whether v is one of the values the range produces.
func (r *Range) contains(v int64) bool {
	if v < r.Lo || v > r.Hi {
		return false
	}
	if r.Step == 1 {
		return true
	}
	if r.Reversed {
		return (uint64(r.Hi)-uint64(v))%uint64(r.Step) == 0
	}
	return (uint64(v)-uint64(r.Lo))%uint64(r.Step) == 0
}

func (r *Range) format(v int64) string {
	if !r.Numeric {
		return string(rune(v))
	}
	s := strconv.FormatInt(v, 10)
	if r.Width == 0 || len(s) >= r.Width {
		return s
	}
	if v < 0 {
		return "-" + strings.Repeat("0", r.Width-len(s)) + s[1:]
	}
	return strings.Repeat("0", r.Width-len(s)) + s
}

// maxLen is the byte length of the longest value in the range.
func (r *Range) maxLen() int {
	if !r.Numeric {
		return utf8.RuneLen(rune(r.Hi))
	}
	return max(len(r.format(r.Lo)), len(r.format(r.Hi)))
}

// Count returns the number of strings n expands to. ok is false when the
// product overflows a uint64.
func Count(n Node) (uint64, bool) {
	switch x := n.(type) {
	case *Literal:
		return 1, true
	case *Sequence:
		total := uint64(1)
		for _, item := range x.Items {
			c, ok := Count(item)
			if !ok {
				return 0, false
			}
			hi, lo := bits.Mul64(total, c)
			if hi != 0 {
				return 0, false
			}
			total = lo
		}
		return total, true
	case *Alternation:
		total := uint64(0)
		for _, br := range x.Branches {
			c, ok := Count(br)
			if !ok {
				return 0, false
			}
			sum, carry := bits.Add64(total, c, 0)
			if carry != 0 {
				return 0, false
			}
			total = sum
		}
		return total, true
	case *Range:
		return x.Count()
	}
	return 0, false
}
