package braceexpr

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// longest int64 in decimal, without sign
const maxDigits = 19

// Matcher matches a brace expression against text without expanding it.
// It is immutable and safe for concurrent use.
type Matcher struct {
	root   Node
	maxLen int
}

// NewMatcher wraps n for on-demand matching.
func NewMatcher(n Node) *Matcher {
	return &Matcher{root: n, maxLen: maxLen(n)}
}

// Node returns the tree the matcher interprets.
func (m *Matcher) Node() Node {
	return m.root
}

// MaxLen is the byte length of the longest string the expression produces.
func (m *Matcher) MaxLen() int {
	return m.maxLen
}

// MatchAt returns the sorted end offsets of all strings of the expression
// that occur in s at pos.
func (m *Matcher) MatchAt(s string, pos int) []int {
	if pos > len(s) {
		return nil
	}
	return matchNode(m.root, s, pos)
}

// Longest returns the length of the longest non-empty match at pos, or 0.
func (m *Matcher) Longest(s string, pos int) int {
	ends := m.MatchAt(s, pos)
	if len(ends) == 0 {
		return 0
	}
	return ends[len(ends)-1] - pos
}

func matchNode(n Node, s string, pos int) []int {
	switch x := n.(type) {
	case *Literal:
		if strings.HasPrefix(s[pos:], x.Text) {
			return []int{pos + len(x.Text)}
		}
		return nil
	case *Sequence:
		ends := []int{pos}
		for _, item := range x.Items {
			var next []int
			for _, e := range ends {
				next = union(next, matchNode(item, s, e))
			}
			if len(next) == 0 {
				return nil
			}
			ends = next
		}
		return ends
	case *Alternation:
		var ends []int
		for _, br := range x.Branches {
			ends = union(ends, matchNode(br, s, pos))
		}
		return ends
	case *Range:
		if x.Numeric {
			return matchNumber(x, s, pos)
		}
		return matchChar(x, s, pos)
	}
	return nil
}

func matchChar(r *Range, s string, pos int) []int {
	if pos >= len(s) {
		return nil
	}
	c, size := utf8.DecodeRuneInString(s[pos:])
	if c == utf8.RuneError && size <= 1 {
		return nil
	}
	if !r.contains(int64(c)) {
		return nil
	}
	return []int{pos + size}
}

// matchNumber scans an optionally signed digit run at pos and keeps every
// prefix that spells a value of the range exactly as expansion would.
func matchNumber(r *Range, s string, pos int) []int {
	start := pos
	if pos < len(s) && s[pos] == '-' {
		pos++
	}
	digits := 0
	for pos+digits < len(s) && digits < max(maxDigits, r.Width) && isDigit(s[pos+digits]) {
		digits++
	}
	var ends []int
	for k := 1; k <= digits; k++ {
		end := pos + k
		text := s[start:end]
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			continue
		}
		if r.contains(v) && r.format(v) == text {
			ends = append(ends, end)
		}
	}
	return ends
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// union merges two sorted offset lists without duplicates.
func union(a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Ints(out)
	j := 0
	for i := 1; i < len(out); i++ {
		if out[i] != out[j] {
			j++
			out[j] = out[i]
		}
	}
	return out[:j+1]
}

func maxLen(n Node) int {
	switch x := n.(type) {
	case *Literal:
		return len(x.Text)
	case *Sequence:
		total := 0
		for _, item := range x.Items {
			l := maxLen(item)
			if total > math.MaxInt-l {
				return math.MaxInt
			}
			total += l
		}
		return total
	case *Alternation:
		longest := 0
		for _, br := range x.Branches {
			longest = max(longest, maxLen(br))
		}
		return longest
	case *Range:
		return x.maxLen()
	}
	return 0
}
