package stylesheet

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// Encode serializes a sheet as TOML
func Encode(s *Sheet) ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode style sheet")
	}
	return data, nil
}

// Starter returns the sheet written by `hitfmt init`
func Starter(name string) *Sheet {
	return &Sheet{
		Name: name,
		Rules: []rules.Rule{
			{Pattern: "{if,else,for,while,return}", Style: "keyword"},
			{Pattern: "{true,false,nil}", Style: "number"},
			{Pattern: "{TODO,FIXME}{,:}", Style: "warning"},
			{Pattern: "{0..9}", Style: "number"},
		},
		Styles: map[string]render.StyleDef{
			"keyword": {Bold: true, Foreground: "accent"},
			"number":  {Foreground: "number"},
			"warning": {Bold: true, Foreground: "warning"},
		},
		Colors: map[string]render.ColorDef{
			"accent":  {Light: "#8839ef", Dark: "#cba6f7"},
			"number":  {Light: "#fe640b", Dark: "#fab387"},
			"warning": {Light: "#df8e1d", Dark: "#f9e2af"},
		},
	}
}
