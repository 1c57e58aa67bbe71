package render

import (
	"io"
	"strings"
)

var markupEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`)

// Markup writes styled spans as bracket tags, [keyword]if[/keyword]. Opening
// brackets and backslashes in text are escaped with a backslash so tags
// can be told apart from content.
type Markup struct{}

func (Markup) Literal(w io.Writer, text string) error {
	_, err := markupEscaper.WriteString(w, text)
	return err
}

func (Markup) Styled(w io.Writer, text, directive string) error {
	var b strings.Builder
	b.Grow(len(text) + 2*len(directive) + 5)
	b.WriteString("[")
	b.WriteString(directive)
	b.WriteString("]")
	_, _ = markupEscaper.WriteString(&b, text)
	b.WriteString("[/")
	b.WriteString(directive)
	b.WriteString("]")
	_, err := io.WriteString(w, b.String())
	return err
}
