package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/logging"
)

// EnvPrefix prefixes environment variables read into the configuration
const EnvPrefix = "HITFMT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded defaults, used as the template
// for a new config file
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// File is an explicit config file. It must exist when set.
	File string
	// Overrides are dotted keys applied last, e.g. "output.format"
	Overrides map[string]interface{}
	// SkipUserConfig ignores $XDG_CONFIG_HOME/hitfmt/config.toml
	SkipUserConfig bool
	// SkipEnv ignores HITFMT_ environment variables
	SkipEnv bool
}

// UserConfigPath returns the path of the per-user config file
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// envKey maps HITFMT_OUTPUT__CLASS_PREFIX to output.class_prefix
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Load builds the layered configuration and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User config if it exists
	if !opts.SkipUserConfig {
		path := UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", path).
					WithDetail(errors.DetailPath, path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Explicit config file
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail(errors.DetailPath, opts.File)
		}
		if err := k.Load(file.Provider(opts.File), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.File).
				WithDetail(errors.DetailPath, opts.File)
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	// 4. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 5. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(string(os.PathListSeparator)),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Configuration loaded")
	return &cfg, nil
}

// Default returns the embedded defaults alone
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// the embedded defaults are fixed at build time
		panic(err)
	}
	return cfg
}
