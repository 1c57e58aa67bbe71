// Package formatter applies a compiled style to text.
//
// The formatter walks the input once. At each position it asks the compiled
// style for the best match; a match is emitted as one styled span and the
// cursor jumps past it, otherwise the rune under the cursor joins the
// current literal run. Literal runs are flushed before each styled span and
// at the end of input, so the emitted spans concatenate to the input.
package formatter

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// Formatter binds a compiled style to a renderer. It is immutable and safe
// for concurrent use.
type Formatter struct {
	style    *rules.CompiledStyle
	renderer render.Renderer
	location string
}

// Option configures a Formatter
type Option func(*Formatter)

// WithRenderer sets the renderer. The default is render.Plain.
func WithRenderer(r render.Renderer) Option {
	return func(f *Formatter) {
		if r != nil {
			f.renderer = r
		}
	}
}

// WithLocation records the directory the style's includes were resolved
// against
func WithLocation(dir string) Option {
	return func(f *Formatter) {
		f.location = dir
	}
}

// New returns a formatter for style
func New(style *rules.CompiledStyle, opts ...Option) *Formatter {
	f := &Formatter{
		style:    style,
		renderer: render.Plain{},
		location: ".",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Style returns the compiled style
func (f *Formatter) Style() *rules.CompiledStyle {
	return f.style
}

// Renderer returns the renderer
func (f *Formatter) Renderer() render.Renderer {
	return f.renderer
}

// Location returns the working location
func (f *Formatter) Location() string {
	return f.location
}

// Format formats input. It never fails.
func (f *Formatter) Format(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	// strings.Builder never fails, and the bundled renderers only fail
	// when the writer does
	_ = f.FormatTo(&b, input)
	return b.String()
}

// FormatTo formats input into w. The only errors are those returned by the
// renderer writing to w.
func (f *Formatter) FormatTo(w io.Writer, input string) error {
	if f.style == nil || f.style.Len() == 0 {
		if input == "" {
			return nil
		}
		return f.renderer.Literal(w, input)
	}

	run := 0 // start of the pending literal run
	pos := 0
	for pos < len(input) {
		m, ok := f.style.Match(input, pos)
		if !ok {
			_, size := utf8.DecodeRuneInString(input[pos:])
			pos += size
			continue
		}

		if run < pos {
			if err := f.renderer.Literal(w, input[run:pos]); err != nil {
				return err
			}
		}
		if err := f.renderer.Styled(w, input[m.Start:m.End()], f.style.Directive(m.Rule)); err != nil {
			return err
		}
		pos = m.End()
		run = pos
	}

	if run < len(input) {
		return f.renderer.Literal(w, input[run:])
	}
	return nil
}
