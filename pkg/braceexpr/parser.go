package braceexpr

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

// DefaultMaxDepth bounds brace nesting.
const DefaultMaxDepth = 64

// MaxDepthLimit is the deepest nesting WithMaxDepth will configure. The
// parser recurses once per level.
const MaxDepthLimit = 1024

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithMaxDepth sets the deepest brace nesting Parse accepts. Values below 1
// fall back to DefaultMaxDepth and values above MaxDepthLimit are clamped.
func WithMaxDepth(depth int) ParseOption {
	return func(p *parser) {
		switch {
		case depth > MaxDepthLimit:
			p.maxDepth = MaxDepthLimit
		case depth > 0:
			p.maxDepth = depth
		}
	}
}

type parser struct {
	toks     []token
	pos      int
	depth    int
	maxDepth int
}

// Parse parses brace expression source into a tree. Empty source yields an
// empty *Sequence. Structural problems are reported as SYNTAX errors with
// the byte offset of the offending token.
func Parse(src string, opts ...ParseOption) (Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	n, perr := p.sequence(true)
	if perr != nil {
		return nil, perr.WithDetail(errors.DetailPattern, src)
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// sequence parses items until EOF, or until a Comma or Close inside a group.
func (p *parser) sequence(top bool) (Node, *errors.HitError) {
	var items []Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			items = append(items, &Literal{Text: text.String()})
			text.Reset()
		}
	}

loop:
	for {
		t := p.peek()
		switch t.kind {
		case tokEOF:
			break loop
		case tokClose:
			if top {
				return nil, errors.SyntaxAt(t.off, "unbalanced '}'")
			}
			break loop
		case tokComma:
			if !top {
				break loop
			}
			p.next()
			text.WriteString(t.text)
		case tokEscaped:
			p.next()
			text.WriteString(unescape(t.text))
		case tokOpen:
			flush()
			g, err := p.group()
			if err != nil {
				return nil, err
			}
			items = append(items, g)
		default:
			p.next()
			text.WriteString(t.text)
		}
	}
	flush()

	if len(items) == 1 {
		return items[0], nil
	}
	return &Sequence{Items: items}, nil
}

// group parses a brace group starting at an Open token.
func (p *parser) group() (Node, *errors.HitError) {
	open := p.next()
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, errors.SyntaxAt(open.off, "brace nesting exceeds %d levels", p.maxDepth)
	}

	if r, ok, err := p.rangeGroup(open); ok || err != nil {
		return r, err
	}

	var branches []Node
	for {
		br, err := p.sequence(false)
		if err != nil {
			return nil, err
		}
		branches = append(branches, br)

		t := p.next()
		if t.kind == tokComma {
			continue
		}
		if t.kind != tokClose {
			return nil, errors.SyntaxAt(open.off, "unbalanced '{'")
		}
		break
	}

	if len(branches) < 2 {
		if s, ok := branches[0].(*Sequence); ok && len(s.Items) == 0 {
			return nil, errors.SyntaxAt(open.off, "empty brace group")
		}
		return nil, errors.SyntaxAt(open.off, "brace group needs two or more alternatives or a range")
	}
	return &Alternation{Branches: branches}, nil
}

// rangeGroup recognizes `{A..B}` and `{A..B..S}` right after an Open token.
// ok is false, with no tokens consumed, when the group has another shape.
func (p *parser) rangeGroup(open token) (Node, bool, *errors.HitError) {
	shape := func(kinds ...tokenKind) bool {
		if p.pos+len(kinds) > len(p.toks) {
			return false
		}
		for i, k := range kinds {
			if p.toks[p.pos+i].kind != k {
				return false
			}
		}
		return true
	}

	var lo, hi, step token
	switch {
	case shape(tokText, tokDots, tokText, tokClose):
		lo, hi = p.toks[p.pos], p.toks[p.pos+2]
		p.pos += 4
	case shape(tokText, tokDots, tokText, tokDots, tokText, tokClose):
		lo, hi, step = p.toks[p.pos], p.toks[p.pos+2], p.toks[p.pos+4]
		p.pos += 6
	default:
		return nil, false, nil
	}

	r, err := newRange(lo, hi, step)
	if err != nil {
		return nil, true, err
	}
	return r, true, nil
}

func newRange(lo, hi, step token) (*Range, *errors.HitError) {
	r := &Range{Step: 1}

	if step.kind == tokText {
		s, err := strconv.ParseInt(step.text, 10, 64)
		if err != nil {
			return nil, errors.SyntaxAt(step.off, "range step %q is not an integer", step.text)
		}
		if s < 0 {
			s = -s
		}
		if s > 0 {
			r.Step = s
		}
	}

	loNum, loErr := strconv.ParseInt(lo.text, 10, 64)
	hiNum, hiErr := strconv.ParseInt(hi.text, 10, 64)
	loChar := utf8.RuneCountInString(lo.text) == 1
	hiChar := utf8.RuneCountInString(hi.text) == 1

	switch {
	case loErr == nil && hiErr == nil:
		r.Numeric = true
		r.Lo, r.Hi = loNum, hiNum
		if padded(lo.text) || padded(hi.text) {
			r.Width = max(len(lo.text), len(hi.text))
		}
	case loErr == nil && hiChar, loChar && hiErr == nil:
		return nil, errors.SyntaxAt(lo.off, "range mixes numeric and character endpoints %q..%q", lo.text, hi.text)
	case loChar && hiChar:
		a, _ := utf8.DecodeRuneInString(lo.text)
		b, _ := utf8.DecodeRuneInString(hi.text)
		r.Lo, r.Hi = int64(a), int64(b)
	default:
		bad := lo
		if loErr == nil || loChar {
			bad = hi
		}
		if numErr, ok := rangeErr(bad.text); ok {
			return nil, errors.SyntaxAt(bad.off, "range endpoint %q: %s", bad.text, numErr)
		}
		return nil, errors.SyntaxAt(bad.off, "range endpoint %q is neither an integer nor a single character", bad.text)
	}

	if r.Lo > r.Hi {
		r.Lo, r.Hi = r.Hi, r.Lo
		r.Reversed = true
	}
	return r, nil
}

// padded reports whether a numeric endpoint is written with leading zeros.
func padded(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

// rangeErr explains integers that do not fit an int64.
func rangeErr(s string) (string, bool) {
	_, err := strconv.ParseInt(s, 10, 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return "value out of range", true
	}
	return "", false
}
