package braceexpr

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

// braceLexer splits pattern source into structural tokens. Escapes are
// tokens of their own so an escaped brace never reaches depth tracking.
// Rule order matters: Dots must win over Dot.
var braceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escaped", Pattern: `\\[\s\S]?`},
	{Name: "Open", Pattern: `\{`},
	{Name: "Close", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dots", Pattern: `\.\.`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Text", Pattern: `[^{},.\\]+`},
})

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokEscaped
	tokOpen
	tokClose
	tokComma
	tokDots
	tokDot
	tokText
)

type token struct {
	kind tokenKind
	text string
	off  int
}

var tokenKinds = func() map[lexer.TokenType]tokenKind {
	sym := braceLexer.Symbols()
	return map[lexer.TokenType]tokenKind{
		sym["Escaped"]: tokEscaped,
		sym["Open"]:    tokOpen,
		sym["Close"]:   tokClose,
		sym["Comma"]:   tokComma,
		sym["Dots"]:    tokDots,
		sym["Dot"]:     tokDot,
		sym["Text"]:    tokText,
	}
}()

// tokenize lexes src. The returned slice always ends with a tokEOF token
// positioned at len(src).
func tokenize(src string) ([]token, error) {
	lex, err := braceLexer.Lex("", strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSyntax, "cannot tokenize pattern")
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSyntax, "cannot tokenize pattern").
			WithDetail(errors.DetailPattern, src)
	}
	toks := make([]token, 0, len(raw)+1)
	for _, t := range raw {
		if t.EOF() {
			continue
		}
		kind, ok := tokenKinds[t.Type]
		if !ok {
			return nil, errors.SyntaxAt(t.Pos.Offset, "unexpected token %q", t.Value)
		}
		toks = append(toks, token{kind: kind, text: t.Value, off: t.Pos.Offset})
	}
	return append(toks, token{kind: tokEOF, off: len(src)}), nil
}

// unescape resolves an Escaped token. Only structural characters and the
// backslash itself are unescaped; other sequences are kept verbatim.
func unescape(tok string) string {
	if len(tok) == 1 {
		return tok
	}
	switch tok[1:] {
	case "{", "}", ",", ".", `\`:
		return tok[1:]
	}
	return tok
}
