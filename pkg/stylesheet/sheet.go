package stylesheet

import (
	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// InMemory is the location of a sheet that was not read from a file
const InMemory = "-"

// Sheet is a parsed style sheet
type Sheet struct {
	Name     string                     `koanf:"name" toml:"name"`
	Includes []string                   `koanf:"include" toml:"include,omitempty"`
	Rules    []rules.Rule               `koanf:"rules" toml:"rules"`
	Styles   map[string]render.StyleDef `koanf:"styles" toml:"styles,omitempty"`
	Colors   map[string]render.ColorDef `koanf:"colors" toml:"colors,omitempty"`

	// Path is the file the sheet was read from, empty for in-memory sheets
	Path string `koanf:"-" toml:"-"`
	// Location is the directory includes are resolved against
	Location string `koanf:"-" toml:"-"`
}

// Palette returns the terminal styles declared by the sheet
func (s *Sheet) Palette() *render.Palette {
	return &render.Palette{Colors: s.Colors, Styles: s.Styles}
}

// Compile compiles the sheet's rules. Includes must already be resolved.
func (s *Sheet) Compile(opts ...rules.Option) (*rules.CompiledStyle, error) {
	if len(s.Includes) > 0 {
		return nil, errors.Newf(errors.ErrInternal, "style %q has unresolved includes", s.Name)
	}
	return rules.Compile(s.Name, s.Rules, opts...)
}

// Validate checks that every rule has a pattern and a style
func (s *Sheet) Validate() error {
	for i, r := range s.Rules {
		if r.Pattern == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d has no pattern", i).
				WithDetail(errors.DetailRule, i).
				WithDetail(errors.DetailStyle, s.Name)
		}
		if r.Style == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d (%s) has no style", i, r.Pattern).
				WithDetail(errors.DetailRule, i).
				WithDetail(errors.DetailPattern, r.Pattern).
				WithDetail(errors.DetailStyle, s.Name)
		}
	}
	return nil
}

func (s *Sheet) clone() *Sheet {
	out := &Sheet{
		Name:     s.Name,
		Path:     s.Path,
		Location: s.Location,
		Rules:    append([]rules.Rule(nil), s.Rules...),
		Styles:   make(map[string]render.StyleDef, len(s.Styles)),
		Colors:   make(map[string]render.ColorDef, len(s.Colors)),
	}
	for k, v := range s.Styles {
		out.Styles[k] = v
	}
	for k, v := range s.Colors {
		out.Colors[k] = v
	}
	return out
}
