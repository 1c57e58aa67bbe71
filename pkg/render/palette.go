package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

// ColorDef is an adaptive color with variants for light and dark terminals
type ColorDef struct {
	Light string `yaml:"light" toml:"light" koanf:"light"`
	Dark  string `yaml:"dark" toml:"dark" koanf:"dark"`
}

// StyleDef describes how a directive is drawn on a terminal. Foreground and
// Background name a palette color or hold a literal color such as "#d33682"
// or "212".
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty" toml:"bold,omitempty" koanf:"bold"`
	Italic        bool   `yaml:"italic,omitempty" toml:"italic,omitempty" koanf:"italic"`
	Underline     bool   `yaml:"underline,omitempty" toml:"underline,omitempty" koanf:"underline"`
	Faint         bool   `yaml:"faint,omitempty" toml:"faint,omitempty" koanf:"faint"`
	Strikethrough bool   `yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty" koanf:"strikethrough"`
	Reverse       bool   `yaml:"reverse,omitempty" toml:"reverse,omitempty" koanf:"reverse"`
	Foreground    string `yaml:"foreground,omitempty" toml:"foreground,omitempty" koanf:"foreground"`
	Background    string `yaml:"background,omitempty" toml:"background,omitempty" koanf:"background"`
}

// Palette maps directives to terminal styles
type Palette struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleMap maps directives to lipgloss styles
type StyleMap map[string]lipgloss.Style

// DefaultPalette covers the directives used by the bundled style sheets
func DefaultPalette() *Palette {
	return &Palette{
		Colors: map[string]ColorDef{
			"accent":  {Light: "#8839ef", Dark: "#cba6f7"},
			"string":  {Light: "#40a02b", Dark: "#a6e3a1"},
			"number":  {Light: "#fe640b", Dark: "#fab387"},
			"muted":   {Light: "#8c8fa1", Dark: "#6c7086"},
			"type":    {Light: "#df8e1d", Dark: "#f9e2af"},
			"func":    {Light: "#1e66f5", Dark: "#89b4fa"},
			"error":   {Light: "#d20f39", Dark: "#f38ba8"},
			"warning": {Light: "#df8e1d", Dark: "#f9e2af"},
		},
		Styles: map[string]StyleDef{
			"keyword":   {Bold: true, Foreground: "accent"},
			"string":    {Foreground: "string"},
			"number":    {Foreground: "number"},
			"comment":   {Italic: true, Foreground: "muted"},
			"type":      {Foreground: "type"},
			"function":  {Foreground: "func"},
			"error":     {Bold: true, Foreground: "error"},
			"warning":   {Foreground: "warning"},
			"bold":      {Bold: true},
			"italic":    {Italic: true},
			"underline": {Underline: true},
		},
	}
}

// LoadPalette reads a palette from a YAML file
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "palette file %s not found", path).
				WithDetail(errors.DetailPath, path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read palette file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return ParsePalette(data)
}

// ParsePalette decodes a YAML palette
func ParsePalette(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse palette")
	}
	return &p, nil
}

// Merge returns a palette holding p's entries overlaid by other's
func (p *Palette) Merge(other *Palette) *Palette {
	out := &Palette{
		Colors: make(map[string]ColorDef),
		Styles: make(map[string]StyleDef),
	}
	for _, src := range []*Palette{p, other} {
		if src == nil {
			continue
		}
		for k, v := range src.Colors {
			out.Colors[k] = v
		}
		for k, v := range src.Styles {
			out.Styles[k] = v
		}
	}
	return out
}

// BuildStyleMap builds lipgloss styles for every style in p. Styles are
// bound to r, or to the default renderer when r is nil.
func BuildStyleMap(p *Palette, r *lipgloss.Renderer) StyleMap {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(StyleMap)
	if p == nil {
		return styles
	}
	for name, def := range p.Styles {
		styles[name] = buildStyle(r, p, def)
	}
	return styles
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, p *Palette, def StyleDef) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}
	if def.Reverse {
		style = style.Reverse(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(p.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(p.color(def.Background))
	}
	return style
}

func (p *Palette) color(name string) lipgloss.TerminalColor {
	if c, ok := p.Colors[name]; ok {
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}
	return lipgloss.Color(name)
}
