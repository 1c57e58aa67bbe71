// Package render turns formatter output into concrete markup.
//
// A Renderer receives the formatted text as a stream of literal runs and
// styled spans. Renderers hold no per-call state, so a single value may be
// shared by concurrent formatters.
package render

import (
	"io"
)

// Renderer emits literal and styled spans to a writer
type Renderer interface {
	// Literal writes text that matched no rule
	Literal(w io.Writer, text string) error
	// Styled writes text matched by a rule carrying directive
	Styled(w io.Writer, text, directive string) error
}

// Plain writes text unchanged and drops directives
type Plain struct{}

func (Plain) Literal(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

func (Plain) Styled(w io.Writer, text, _ string) error {
	_, err := io.WriteString(w, text)
	return err
}
