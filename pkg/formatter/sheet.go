package formatter

import (
	"github.com/idaholab/moose-language-support/pkg/logging"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

// SheetOptions controls how FromSheet builds a formatter
type SheetOptions struct {
	// Format selects the renderer
	Format render.Format
	// Palette overrides the sheet's own terminal styles
	Palette *render.Palette
	// ClassPrefix is the HTML class prefix, render.DefaultClassPrefix if empty
	ClassPrefix string
	// Rules are passed to the rule compiler
	Rules []rules.Option
	// Cache, when set, shares compiled styles between calls
	Cache *stylesheet.Cache
}

// FromSheet compiles a resolved sheet and builds a formatter for it. The
// ANSI palette layers the defaults, the sheet's styles, then opts.Palette.
func FromSheet(sheet *stylesheet.Sheet, opts SheetOptions) (*Formatter, error) {
	logger := logging.GetLogger("formatter")

	var style *rules.CompiledStyle
	var err error
	if opts.Cache != nil {
		style, err = opts.Cache.Compile(sheet, opts.Rules...)
	} else {
		style, err = sheet.Compile(opts.Rules...)
	}
	if err != nil {
		return nil, err
	}

	prefix := opts.ClassPrefix
	if prefix == "" {
		prefix = render.DefaultClassPrefix
	}
	palette := render.DefaultPalette().Merge(sheet.Palette()).Merge(opts.Palette)
	r, err := render.New(opts.Format, palette, render.WithClassPrefix(prefix))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("style", style.Name()).
		Str("location", sheet.Location).
		Str("format", opts.Format.String()).
		Msg("Created formatter")
	return New(style, WithRenderer(r), WithLocation(sheet.Location)), nil
}
