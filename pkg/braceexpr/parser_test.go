package braceexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected Node
	}{
		{
			name:     "empty input",
			src:      "",
			expected: &Sequence{},
		},
		{
			name:     "plain text",
			src:      "hello",
			expected: &Literal{Text: "hello"},
		},
		{
			name:     "top level comma is literal",
			src:      "a,b",
			expected: &Literal{Text: "a,b"},
		},
		{
			name:     "top level dots are literal",
			src:      "1..3",
			expected: &Literal{Text: "1..3"},
		},
		{
			name:     "escaped braces",
			src:      `\{literal\}`,
			expected: &Literal{Text: "{literal}"},
		},
		{
			name:     "unknown escape kept verbatim",
			src:      `a\nb`,
			expected: &Literal{Text: `a\nb`},
		},
		{
			name: "alternation",
			src:  "{a,b,c}",
			expected: &Alternation{Branches: []Node{
				&Literal{Text: "a"}, &Literal{Text: "b"}, &Literal{Text: "c"},
			}},
		},
		{
			name: "empty alternative",
			src:  "{a,}",
			expected: &Alternation{Branches: []Node{
				&Literal{Text: "a"}, &Sequence{},
			}},
		},
		{
			name:     "numeric range",
			src:      "{1..3}",
			expected: &Range{Numeric: true, Lo: 1, Hi: 3, Step: 1},
		},
		{
			name:     "character range",
			src:      "{a..e}",
			expected: &Range{Lo: 'a', Hi: 'e', Step: 1},
		},
		{
			name:     "reversed stepped range",
			src:      "{10..1..3}",
			expected: &Range{Numeric: true, Lo: 1, Hi: 10, Step: 3, Reversed: true},
		},
		{
			name:     "padded range",
			src:      "{01..10}",
			expected: &Range{Numeric: true, Lo: 1, Hi: 10, Step: 1, Width: 2},
		},
		{
			name:     "negative step is ignored",
			src:      "{0..20..-5}",
			expected: &Range{Numeric: true, Lo: 0, Hi: 20, Step: 5},
		},
		{
			name: "dots inside alternation are literal",
			src:  "{a..b,c}",
			expected: &Alternation{Branches: []Node{
				&Literal{Text: "a..b"}, &Literal{Text: "c"},
			}},
		},
		{
			name: "nested",
			src:  "x{a,{b,c}}y",
			expected: &Sequence{Items: []Node{
				&Literal{Text: "x"},
				&Alternation{Branches: []Node{
					&Literal{Text: "a"},
					&Alternation{Branches: []Node{&Literal{Text: "b"}, &Literal{Text: "c"}}},
				}},
				&Literal{Text: "y"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		offset  int
		message string
	}{
		{name: "empty group", src: "a{}", offset: 1, message: "empty brace group"},
		{name: "single alternative", src: "{a}", offset: 0, message: "two or more"},
		{name: "unbalanced open", src: "x{a,b", offset: 1, message: "unbalanced '{'"},
		{name: "unbalanced close", src: "ab}", offset: 2, message: "unbalanced '}'"},
		{name: "bad endpoint", src: "{1..a}", offset: 1, message: "mixes numeric and character"},
		{name: "long endpoint", src: "{ab..c}", offset: 1, message: "neither an integer"},
		{name: "huge endpoint", src: "{1..99999999999999999999}", offset: 4, message: "out of range"},
		{name: "bad step", src: "{1..5..x}", offset: 7, message: "not an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
			assert.Contains(t, err.Error(), tt.message)

			off, ok := errors.Offset(err)
			require.True(t, ok)
			assert.Equal(t, tt.offset, off)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	src := strings.Repeat("{a,", 5) + strings.Repeat("}", 5)

	_, err := Parse(src, WithMaxDepth(5))
	require.NoError(t, err)

	_, err = Parse(src, WithMaxDepth(4))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
	off, ok := errors.Offset(err)
	require.True(t, ok)
	assert.Equal(t, 12, off)

	// deep input fails with the default limit instead of exhausting the stack
	deep := strings.Repeat("{a,", 10000) + strings.Repeat("}", 10000)
	_, err = Parse(deep)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))

	// oversized limits are clamped
	_, err = Parse(deep, WithMaxDepth(1<<30))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 1024 levels")
}

func TestNodeString(t *testing.T) {
	srcs := []string{
		"{a,b,c}",
		"x{a,{b,c}}y",
		"{1..3}",
		"{10..1..3}",
		"{01..10}",
		`\{lit\,eral\}`,
		"{a..e}",
	}
	for _, src := range srcs {
		n, err := Parse(src)
		require.NoError(t, err, src)
		again, err := Parse(n.String())
		require.NoError(t, err, src)
		assert.Equal(t, n, again, src)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("{") })
	assert.NotPanics(t, func() { MustParse("{a,b}") })
}
