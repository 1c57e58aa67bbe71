package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

// Format selects a renderer
type Format int

const (
	// FormatAuto picks ANSI on a color terminal and plain text otherwise
	FormatAuto Format = iota
	FormatPlain
	FormatANSI
	FormatHTML
	FormatXML
	FormatMarkup
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPlain:
		return "plain"
	case FormatANSI:
		return "ansi"
	case FormatHTML:
		return "html"
	case FormatXML:
		return "xml"
	case FormatMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "plain", "text":
		return FormatPlain, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	case "xml":
		return FormatXML, nil
	case "markup":
		return FormatMarkup, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// DetectFormat determines the format for output based on environment and
// terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatPlain
	}

	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return FormatPlain
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatPlain
	}
	return FormatANSI
}

// Option configures New
type Option func(*settings)

type settings struct {
	classPrefix string
	output      *os.File
}

// WithClassPrefix sets the CSS class prefix of the HTML renderer
func WithClassPrefix(prefix string) Option {
	return func(s *settings) {
		s.classPrefix = prefix
	}
}

// WithOutput sets the file FormatAuto detects against. Defaults to stdout.
func WithOutput(f *os.File) Option {
	return func(s *settings) {
		s.output = f
	}
}

// New returns the renderer for f. The palette is used by the ANSI renderer
// and defaults to DefaultPalette.
func New(f Format, palette *Palette, opts ...Option) (Renderer, error) {
	s := settings{classPrefix: DefaultClassPrefix, output: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}

	if f == FormatAuto {
		f = DetectFormat(s.output)
	}

	switch f {
	case FormatPlain:
		return Plain{}, nil
	case FormatANSI:
		if palette == nil {
			palette = DefaultPalette()
		}
		r := lipgloss.NewRenderer(s.output)
		// ansi was asked for explicitly, so draw colors even when piped
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
		return NewANSI(BuildStyleMap(palette, r)), nil
	case FormatHTML:
		return NewHTML(s.classPrefix), nil
	case FormatXML:
		return XML{}, nil
	case FormatMarkup:
		return Markup{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %d", int(f))
	}
}
