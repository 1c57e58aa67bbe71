package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idaholab/moose-language-support/pkg/braceexpr"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// recorder captures the span stream
type recorder struct {
	spans []string
}

func (r *recorder) Literal(w io.Writer, text string) error {
	r.spans = append(r.spans, "L:"+text)
	_, err := io.WriteString(w, text)
	return err
}

func (r *recorder) Styled(w io.Writer, text, directive string) error {
	r.spans = append(r.spans, directive+":"+text)
	_, err := io.WriteString(w, text)
	return err
}

func compile(t *testing.T, rs ...rules.Rule) *rules.CompiledStyle {
	t.Helper()
	style, err := rules.Compile("test", rs)
	require.NoError(t, err)
	return style
}

func TestFormatSpans(t *testing.T) {
	style := compile(t,
		rules.Rule{Pattern: "{if,else}", Style: "kw"},
		rules.Rule{Pattern: "{0..9}", Style: "num"},
	)
	rec := &recorder{}
	f := New(style, WithRenderer(rec))

	out := f.Format("if x1 else")
	assert.Equal(t, "if x1 else", out)
	assert.Equal(t, []string{"kw:if", "L: x", "num:1", "L: ", "kw:else"}, rec.spans)
}

func TestFormatIdentityWithoutMatches(t *testing.T) {
	style := compile(t, rules.Rule{Pattern: "{foo,bar}", Style: "kw"})
	inputs := []string{"", "nothing here", "fo ba", "\xff\xfe", "日本語"}
	for _, in := range inputs {
		assert.Equal(t, in, New(style).Format(in))
	}
}

func TestFormatRoundTrip(t *testing.T) {
	style := compile(t,
		rules.Rule{Pattern: "{a,ab,abc}", Style: "x"},
		rules.Rule{Pattern: "{é,日}{,本}", Style: "y"},
		rules.Rule{Pattern: "{00..99}", Style: "z"},
	)
	inputs := []string{
		"abcabab a",
		"日本語 é",
		"12 345 6",
		"broken \xe6\x97 utf8 \xff end",
		strings.Repeat("ab日c", 100),
	}
	for _, in := range inputs {
		rec := &recorder{}
		out := New(style, WithRenderer(rec)).Format(in)
		assert.Equal(t, in, out)

		var rebuilt strings.Builder
		for _, span := range rec.spans {
			rebuilt.WriteString(span[strings.IndexByte(span, ':')+1:])
		}
		assert.Equal(t, in, rebuilt.String())
	}
}

func TestFormatLongestMatch(t *testing.T) {
	style := compile(t,
		rules.Rule{Pattern: "a", Style: "short"},
		rules.Rule{Pattern: "ab", Style: "long"},
	)
	var buf bytes.Buffer
	require.NoError(t, New(style, WithRenderer(render.Markup{})).FormatTo(&buf, "ab a"))
	assert.Equal(t, "[long]ab[/long] [short]a[/short]", buf.String())
}

func TestFormatPriorityTieBreak(t *testing.T) {
	style := compile(t,
		rules.Rule{Pattern: "{ab,cd}", Style: "r1"},
		rules.Rule{Pattern: "ab", Style: "r2"},
	)
	out := New(style, WithRenderer(render.Markup{})).Format("ab")
	assert.Equal(t, "[r1]ab[/r1]", out)
}

func TestFormatLazyRule(t *testing.T) {
	style, err := rules.Compile("lazy", []rules.Rule{
		{Pattern: "id{0..99999}", Style: "id"},
	}, rules.WithLimits(braceexpr.Limits{EagerCap: 10}))
	require.NoError(t, err)
	require.Equal(t, 1, style.LazyRules())

	out := New(style, WithRenderer(render.Markup{})).Format("id42 idx id123456")
	assert.Equal(t, "[id]id42[/id] idx [id]id12345[/id]6", out)
}

func TestFormatHTMLEscapesLiterals(t *testing.T) {
	style := compile(t, rules.Rule{Pattern: "<b>", Style: "tag"})
	out := New(style, WithRenderer(render.NewHTML(render.DefaultClassPrefix))).Format("a<b>&c")
	assert.Equal(t, `a<span class="hit-tag">&lt;b&gt;</span>&amp;c`, out)
}

func TestIdempotentPassthrough(t *testing.T) {
	style := compile(t, rules.Rule{Pattern: "{x,y}", Style: "kw"})
	once := New(style, WithRenderer(render.Markup{})).Format("x and y")

	empty, err := rules.Compile("empty", nil)
	require.NoError(t, err)
	plain := New(empty)
	assert.Equal(t, once, plain.Format(once))
	assert.Equal(t, once, plain.Format(plain.Format(once)))
	assert.Equal(t, once, New(nil).Format(once))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatToWriterError(t *testing.T) {
	style := compile(t, rules.Rule{Pattern: "x", Style: "kw"})
	err := New(style).FormatTo(failingWriter{}, "a x b")
	assert.EqualError(t, err, "disk full")

	assert.NoError(t, New(style).FormatTo(failingWriter{}, ""))
}

func TestFormatterAccessors(t *testing.T) {
	style := compile(t, rules.Rule{Pattern: "x", Style: "kw"})
	f := New(style, WithLocation("/styles"), WithRenderer(nil))
	assert.Same(t, style, f.Style())
	assert.Equal(t, "/styles", f.Location())
	assert.Equal(t, render.Plain{}, f.Renderer())
	assert.Equal(t, ".", New(style).Location())
}

func TestConcurrentFormat(t *testing.T) {
	style := compile(t,
		rules.Rule{Pattern: "{if,else,end}", Style: "kw"},
		rules.Rule{Pattern: "{0..9}", Style: "num"},
	)
	f := New(style, WithRenderer(render.Markup{}))
	want := f.Format("if 1 else 2 end")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// a separate formatter sharing the compiled style
			g := New(style, WithRenderer(render.Markup{}))
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, g.Format("if 1 else 2 end"))
				assert.Equal(t, fmt.Sprintf("[num]%d[/num]", i%10), f.Format(fmt.Sprint(i%10)))
			}
		}(i)
	}
	wg.Wait()
}
