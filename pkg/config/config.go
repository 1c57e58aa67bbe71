package config

import (
	"github.com/idaholab/moose-language-support/pkg/braceexpr"
	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
	"github.com/idaholab/moose-language-support/pkg/stylesheet"
)

// Config is the complete hitfmt configuration
type Config struct {
	Parser    Parser    `koanf:"parser"`
	Expansion Expansion `koanf:"expansion"`
	Rules     Rules     `koanf:"rules"`
	Output    Output    `koanf:"output"`
	Styles    Styles    `koanf:"styles"`
}

// Parser bounds brace expression parsing
type Parser struct {
	MaxDepth int `koanf:"max_depth"`
}

// Expansion bounds brace expansion
type Expansion struct {
	EagerCap    uint64 `koanf:"eager_cap"`
	HardCeiling uint64 `koanf:"hard_ceiling"`
}

// Rules controls rule compilation
type Rules struct {
	RejectConflicts bool `koanf:"reject_conflicts"`
}

// Output selects and tunes the renderer
type Output struct {
	Format      string `koanf:"format"`
	ClassPrefix string `koanf:"class_prefix"`
	Palette     string `koanf:"palette"`
}

// Styles configures style lookup by name
type Styles struct {
	Default string   `koanf:"default"`
	Paths   []string `koanf:"paths"`
}

// Validate checks the configuration for values no component accepts
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 1 || c.Parser.MaxDepth > braceexpr.MaxDepthLimit {
		return errors.Newf(errors.ErrConfigValid, "parser.max_depth must be between 1 and %d, got %d",
			braceexpr.MaxDepthLimit, c.Parser.MaxDepth)
	}
	if c.Expansion.HardCeiling == 0 {
		return errors.New(errors.ErrConfigValid, "expansion.hard_ceiling must be positive")
	}
	if c.Expansion.EagerCap > c.Expansion.HardCeiling {
		return errors.Newf(errors.ErrConfigValid,
			"expansion.eager_cap (%d) exceeds expansion.hard_ceiling (%d)",
			c.Expansion.EagerCap, c.Expansion.HardCeiling)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	return nil
}

// Limits returns the expansion limits
func (c *Config) Limits() braceexpr.Limits {
	return braceexpr.Limits{
		EagerCap:    c.Expansion.EagerCap,
		HardCeiling: c.Expansion.HardCeiling,
	}
}

// CompileOptions returns the rule compiler options the configuration implies
func (c *Config) CompileOptions() []rules.Option {
	opts := []rules.Option{
		rules.WithMaxDepth(c.Parser.MaxDepth),
		rules.WithLimits(c.Limits()),
	}
	if c.Rules.RejectConflicts {
		opts = append(opts, rules.RejectConflicts())
	}
	return opts
}

// Format returns the configured output format
func (c *Config) Format() render.Format {
	f, err := render.ParseFormat(c.Output.Format)
	if err != nil {
		return render.FormatAuto
	}
	return f
}

// StyleSource returns a source searching the configured style paths and
// then the default directories for location
func (c *Config) StyleSource(location string) stylesheet.Source {
	dirs := append([]string(nil), c.Styles.Paths...)
	return stylesheet.NewDirSource(append(dirs, stylesheet.DefaultDirs(location)...)...)
}
