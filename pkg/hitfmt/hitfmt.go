// Package hitfmt is the embedding surface: format text with a style given
// as sheet source or by name.
package hitfmt

import (
	"os"
	"strings"

	"github.com/idaholab/moose-language-support/pkg/config"
	"github.com/idaholab/moose-language-support/pkg/formatter"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

var cache = stylesheet.NewCache()

// Options controls NewFormatter. The zero value uses the embedded default
// configuration and plain output.
type Options struct {
	Config *config.Config
	Format render.Format
	// Palette overrides the sheet's terminal styles
	Palette *render.Palette
}

// Process formats input with style and returns plain text. style is either
// TOML sheet source or the name of a sheet found in the working directory
// or the user style directory.
func Process(input, style string) (string, error) {
	return ProcessWith(input, style, render.FormatPlain)
}

// ProcessWith is Process with a choice of output format
func ProcessWith(input, style string, format render.Format) (string, error) {
	f, err := NewFormatter(stylesheet.InMemory, style, Options{Format: format})
	if err != nil {
		return "", err
	}
	return f.Format(input), nil
}

// NewFormatter builds a formatter for style. location is the directory that
// named styles and relative includes are resolved against; InMemory means
// the working directory.
func NewFormatter(location, style string, opts Options) (*formatter.Formatter, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	sheet, err := load(location, style, cfg)
	if err != nil {
		return nil, err
	}
	return formatter.FromSheet(sheet, formatter.SheetOptions{
		Format:      opts.Format,
		Palette:     opts.Palette,
		ClassPrefix: cfg.Output.ClassPrefix,
		Rules:       cfg.CompileOptions(),
		Cache:       cache,
	})
}

// IsSource reports whether style is sheet source rather than a name. A
// string naming an existing file is never source, even when its path holds
// characters that also appear in TOML.
func IsSource(style string) bool {
	if !strings.ContainsAny(style, "\n=[") {
		return false
	}
	if info, err := os.Stat(style); err == nil && !info.IsDir() {
		return false
	}
	return true
}

func load(location, style string, cfg *config.Config) (*stylesheet.Sheet, error) {
	src := cfg.StyleSource(location)
	if !IsSource(style) {
		return stylesheet.Load(style, src)
	}

	sheet, err := stylesheet.Parse([]byte(style), "toml")
	if err != nil {
		return nil, err
	}
	if sheet.Name == "" {
		sheet.Name = stylesheet.InMemory
	}
	sheet.Location = location
	return stylesheet.Resolve(sheet, src)
}
