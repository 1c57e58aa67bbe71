package render

import (
	"io"
	"strings"
	"unicode"

	"github.com/beevik/etree"
)

// XML writes each styled span as an element named after its directive.
// Literal runs are written as character data. etree replaces characters
// XML 1.0 cannot carry with U+FFFD on write.
type XML struct{}

func (XML) Literal(w io.Writer, text string) error {
	doc := etree.NewDocument()
	doc.CreateText(text)
	_, err := doc.WriteTo(w)
	return err
}

func (XML) Styled(w io.Writer, text, directive string) error {
	doc := etree.NewDocument()
	el := doc.CreateElement(ElementName(directive))
	el.SetText(text)
	_, err := doc.WriteTo(w)
	return err
}

// ElementName maps a directive to a valid XML element name. Characters that
// may not appear in a name become underscores, and a name that cannot start
// with its first character is prefixed with one.
func ElementName(directive string) string {
	if directive == "" {
		return "span"
	}
	var b strings.Builder
	for i, r := range directive {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r) || r == '-' || r == '.':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if strings.HasPrefix(strings.ToLower(name), "xml") {
		name = "_" + name
	}
	return name
}
