package render

import (
	"io"
	"strings"
)

// ANSI draws styled spans with lipgloss. Directives without a style are
// written unstyled.
type ANSI struct {
	styles StyleMap
}

// NewANSI returns an ANSI renderer over styles
func NewANSI(styles StyleMap) *ANSI {
	return &ANSI{styles: styles}
}

func (a *ANSI) Literal(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// Styled renders line by line so that lipgloss never pads a multi-line span
// to a common width.
func (a *ANSI) Styled(w io.Writer, text, directive string) error {
	style, ok := a.styles[directive]
	if !ok {
		_, err := io.WriteString(w, text)
		return err
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
