package render

import (
	"io"

	"golang.org/x/net/html"
)

// DefaultClassPrefix is prepended to directives to form CSS class names
const DefaultClassPrefix = "hit-"

// HTML wraps styled spans in <span class="PREFIX+DIRECTIVE"> elements. All
// text is HTML escaped.
type HTML struct {
	ClassPrefix string
}

// NewHTML returns an HTML renderer using prefix for class names
func NewHTML(prefix string) *HTML {
	return &HTML{ClassPrefix: prefix}
}

func (h *HTML) Literal(w io.Writer, text string) error {
	_, err := io.WriteString(w, html.EscapeString(text))
	return err
}

func (h *HTML) Styled(w io.Writer, text, directive string) error {
	_, err := io.WriteString(w, `<span class="`+html.EscapeString(h.ClassPrefix+directive)+`">`+
		html.EscapeString(text)+`</span>`)
	return err
}
