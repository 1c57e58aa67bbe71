package stylesheet

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/render"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

const shellSheet = `
name = "shell"

[[rules]]
pattern = "{if,then,else,fi}"
style = "keyword"

[[rules]]
pattern = "{0..9}"
style = "number"

[styles.keyword]
foreground = "accent"
bold = true

[colors.accent]
light = "#000000"
dark = "#ffffff"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseTOML(t *testing.T) {
	s, err := Parse([]byte(shellSheet), "toml")
	require.NoError(t, err)

	assert.Equal(t, "shell", s.Name)
	assert.Equal(t, InMemory, s.Location)
	assert.Equal(t, []rules.Rule{
		{Pattern: "{if,then,else,fi}", Style: "keyword"},
		{Pattern: "{0..9}", Style: "number"},
	}, s.Rules)
	assert.Equal(t, render.StyleDef{Bold: true, Foreground: "accent"}, s.Styles["keyword"])
	assert.Equal(t, render.ColorDef{Light: "#000000", Dark: "#ffffff"}, s.Colors["accent"])
}

func TestParseYAML(t *testing.T) {
	s, err := Parse([]byte(`
name: yml
include: base
rules:
  - pattern: "{a,b}"
    style: letter
styles:
  letter:
    italic: true
`), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "yml", s.Name)
	assert.Equal(t, []string{"base"}, s.Includes)
	assert.Equal(t, "letter", s.Rules[0].Style)
	assert.True(t, s.Styles["letter"].Italic)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format string
		code   errors.ErrorCode
	}{
		{"bad toml", "name = ", "toml", errors.ErrConfigParse},
		{"missing style", "[[rules]]\npattern = \"a\"\n", "toml", errors.ErrConfigValid},
		{"missing pattern", "[[rules]]\nstyle = \"a\"\n", "toml", errors.ErrConfigValid},
		{"unknown format", "", "ini", errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unnamed.toml", "[[rules]]\npattern = \"x\"\nstyle = \"y\"\n")

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", s.Name)
	assert.Equal(t, path, s.Path)
	assert.Equal(t, dir, s.Location)

	_, err = LoadFile(filepath.Join(dir, "nope.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestDirSource(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "shell.yaml", "rules: []\n")
	writeFile(t, first, "shell.toml", "")
	writeFile(t, second, "only.toml", "")
	require.NoError(t, os.MkdirAll(filepath.Join(first, "dir.toml"), 0755))

	src := NewDirSource(first, second)

	path, err := src.Lookup("shell")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "shell.toml"), path)

	path, err = src.Lookup("only")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "only.toml"), path)

	path, err = src.Lookup("shell.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "shell.yaml"), path)

	_, err = src.Lookup("dir")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))

	_, err = src.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	assert.True(t, errors.IsStyleError(err))
}

func TestDefaultDirs(t *testing.T) {
	config := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", config)

	dirs := DefaultDirs("/work")
	assert.Equal(t, []string{"/work", filepath.Join(config, "hitfmt", "styles")}, dirs)
	assert.Equal(t, ".", DefaultDirs(InMemory)[0])
}

func TestResolveIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib/base.toml", `
include = ["common"]

[[rules]]
pattern = "base"
style = "b"

[styles.keyword]
italic = true

[styles.b]
underline = true
`)
	writeFile(t, dir, "lib/common.toml", `
[[rules]]
pattern = "common"
style = "c"
`)
	main := writeFile(t, dir, "main.toml", `
name = "main"
include = ["lib/base.toml"]

[[rules]]
pattern = "own"
style = "keyword"

[styles.keyword]
bold = true
`)

	s, err := LoadFile(main)
	require.NoError(t, err)
	resolved, err := Resolve(s, nil)
	require.NoError(t, err)

	assert.Empty(t, resolved.Includes)
	assert.Equal(t, []rules.Rule{
		{Pattern: "own", Style: "keyword"},
		{Pattern: "base", Style: "b"},
		{Pattern: "common", Style: "c"},
	}, resolved.Rules)
	assert.Equal(t, render.StyleDef{Bold: true}, resolved.Styles["keyword"])
	assert.True(t, resolved.Styles["b"].Underline)

	// the input sheet is left untouched
	assert.Len(t, s.Rules, 1)
	assert.Equal(t, []string{"lib/base.toml"}, s.Includes)
}

func TestResolveFallbackSource(t *testing.T) {
	shared := t.TempDir()
	writeFile(t, shared, "base.toml", "[[rules]]\npattern = \"shared\"\nstyle = \"s\"\n")

	s, err := Parse([]byte("include = [\"base\"]\n[[rules]]\npattern = \"x\"\nstyle = \"x\"\n"), "toml")
	require.NoError(t, err)
	s.Location = t.TempDir()

	_, err = Resolve(s, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))

	resolved, err := Resolve(s, NewDirSource(shared))
	require.NoError(t, err)
	assert.Len(t, resolved.Rules, 2)
}

func TestResolveCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", "include = [\"b\"]\n")
	writeFile(t, dir, "b.toml", "include = [\"c.toml\"]\n")
	writeFile(t, dir, "c.toml", "include = [\"a\"]\n")

	_, err := Load("a", NewDirSource(dir))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIncludeCycle))
	assert.Contains(t, err.Error(), "a.toml -> ")

	writeFile(t, dir, "self.toml", "include = [\"self\"]\n")
	_, err = Load("self", NewDirSource(dir))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIncludeCycle))
}

func TestSheetCompile(t *testing.T) {
	s, err := Parse([]byte(shellSheet), "toml")
	require.NoError(t, err)

	style, err := s.Compile()
	require.NoError(t, err)
	assert.Equal(t, "shell", style.Name())
	assert.Equal(t, 2, style.Len())

	s.Includes = []string{"x"}
	_, err = s.Compile()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestEncodeRoundTrip(t *testing.T) {
	s := Starter("starter")
	data, err := Encode(s)
	require.NoError(t, err)

	back, err := Parse(data, "toml")
	require.NoError(t, err)
	assert.Equal(t, s.Name, back.Name)
	assert.Equal(t, s.Rules, back.Rules)
	assert.Equal(t, s.Styles, back.Styles)
	assert.Equal(t, s.Colors, back.Colors)

	_, err = back.Compile()
	assert.NoError(t, err)
}

func TestCache(t *testing.T) {
	s, err := Parse([]byte(shellSheet), "toml")
	require.NoError(t, err)
	c := NewCache()

	first, err := c.Compile(s)
	require.NoError(t, err)
	again, err := c.Compile(s)
	require.NoError(t, err)
	assert.Same(t, first, again)

	strict, err := c.Compile(s, rules.RejectConflicts())
	require.NoError(t, err)
	assert.NotSame(t, first, strict)

	other := s.clone()
	other.Rules = append(other.Rules, rules.Rule{Pattern: "extra", Style: "x"})
	changed, err := c.Compile(other)
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
	assert.Equal(t, 3, c.Len())

	bad := s.clone()
	bad.Rules = []rules.Rule{{Pattern: "{", Style: "x"}}
	_, err = c.Compile(bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
	assert.Equal(t, 3, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	s, err := Parse([]byte(shellSheet), "toml")
	require.NoError(t, err)
	c := NewCache()

	var wg sync.WaitGroup
	results := make([]*rules.CompiledStyle, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			style, err := c.Compile(s)
			assert.NoError(t, err)
			results[i] = style
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
