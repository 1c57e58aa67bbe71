package stylesheet

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/logging"
)

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// FormatOf returns the sheet format implied by a file name
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func parserFor(format string) (koanf.Parser, error) {
	switch strings.ToLower(format) {
	case "", "toml":
		return toml.Parser(), nil
	case "yaml", "yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported style sheet format %q", format)
	}
}

// Parse parses sheet source in the given format ("toml" or "yaml"). The
// result has location InMemory.
func Parse(src []byte, format string) (*Sheet, error) {
	p, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: src}, p); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse style sheet")
	}
	s, err := decode(k)
	if err != nil {
		return nil, err
	}
	s.Location = InMemory
	return s, nil
}

// LoadFile reads a sheet from path. A sheet without a name is named after
// its file.
func LoadFile(path string) (*Sheet, error) {
	logger := logging.GetLogger("stylesheet.loader")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", path)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "style sheet %s not found", path).
				WithDetail(errors.DetailPath, abs)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path).
			WithDetail(errors.DetailPath, abs)
	}

	p, err := parserFor(FormatOf(abs))
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(abs), p); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse style sheet %s", path).
			WithDetail(errors.DetailPath, abs)
	}
	s, err := decode(k)
	if err != nil {
		return nil, errors.AddDetail(err, errors.DetailPath, abs)
	}

	s.Path = abs
	s.Location = filepath.Dir(abs)
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}

	logger.Debug().
		Str("path", abs).
		Str("name", s.Name).
		Int("rules", len(s.Rules)).
		Int("includes", len(s.Includes)).
		Msg("Loaded style sheet")
	return s, nil
}

func decode(k *koanf.Koanf) (*Sheet, error) {
	var s Sheet
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid style sheet")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
