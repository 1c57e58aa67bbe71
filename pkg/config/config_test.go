package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idaholab/moose-language-support/pkg/braceexpr"
	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// isolate points XDG at empty directories
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	return home
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, braceexpr.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Equal(t, braceexpr.DefaultLimits(), cfg.Limits())
	assert.False(t, cfg.Rules.RejectConflicts)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, render.DefaultClassPrefix, cfg.Output.ClassPrefix)
	assert.Equal(t, render.FormatAuto, cfg.Format())
	assert.Empty(t, cfg.Styles.Paths)

	assert.Equal(t, cfg, Default())
	assert.Contains(t, DefaultConfigContent(), "[parser]")
}

func TestLayering(t *testing.T) {
	home := isolate(t)

	userPath := UserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
	require.NoError(t, os.WriteFile(userPath, []byte(`
[parser]
max_depth = 10

[output]
format = "html"
class_prefix = "user-"
`), 0644))

	explicit := filepath.Join(home, "explicit.toml")
	require.NoError(t, os.WriteFile(explicit, []byte(`
[output]
class_prefix = "explicit-"

[styles]
paths = ["/a", "/b"]
`), 0644))

	t.Setenv("HITFMT_PARSER__MAX_DEPTH", "20")
	t.Setenv("HITFMT_RULES__REJECT_CONFLICTS", "true")

	cfg, err := Load(LoadOptions{
		File:      explicit,
		Overrides: map[string]interface{}{"output.format": "xml"},
	})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Parser.MaxDepth, "env beats files")
	assert.True(t, cfg.Rules.RejectConflicts)
	assert.Equal(t, "explicit-", cfg.Output.ClassPrefix, "explicit file beats user file")
	assert.Equal(t, "xml", cfg.Output.Format, "overrides beat everything")
	assert.Equal(t, []string{"/a", "/b"}, cfg.Styles.Paths)

	skipped, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 64, skipped.Parser.MaxDepth)
}

func TestLoadErrors(t *testing.T) {
	home := isolate(t)

	_, err := Load(LoadOptions{File: filepath.Join(home, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	bad := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[parser\n"), 0644))
	_, err = Load(LoadOptions{File: bad})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	t.Setenv("HITFMT_OUTPUT__FORMAT", "pdf")
	_, err = Load(LoadOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"depth", func(c *Config) { c.Parser.MaxDepth = 0 }},
		{"depth too large", func(c *Config) { c.Parser.MaxDepth = braceexpr.MaxDepthLimit + 1 }},
		{"ceiling", func(c *Config) { c.Expansion.HardCeiling = 0 }},
		{"cap above ceiling", func(c *Config) { c.Expansion.EagerCap = c.Expansion.HardCeiling + 1 }},
		{"format", func(c *Config) { c.Output.Format = "rtf" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestCompileOptions(t *testing.T) {
	cfg := Default()
	assert.Equal(t, rules.Fingerprint(), rules.Fingerprint(cfg.CompileOptions()...))

	cfg.Rules.RejectConflicts = true
	cfg.Parser.MaxDepth = 2
	_, err := rules.Compile("x", []rules.Rule{{Pattern: "{a,{b,{c,d}}}", Style: "k"}}, cfg.CompileOptions()...)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))

	_, err = rules.Compile("x", []rules.Rule{
		{Pattern: "a", Style: "k"},
		{Pattern: "a", Style: "j"},
	}, cfg.CompileOptions()...)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateRule))
}

func TestStyleSource(t *testing.T) {
	isolate(t)
	extra := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(extra, "mine.toml"), nil, 0644))

	cfg := Default()
	cfg.Styles.Paths = []string{extra}
	path, err := cfg.StyleSource(t.TempDir()).Lookup("mine")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(extra, "mine.toml"), path)
}
