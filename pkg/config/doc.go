// Package config loads hitfmt settings.
//
// Sources are layered, later ones winning:
//
//  1. defaults embedded in the binary
//  2. $XDG_CONFIG_HOME/hitfmt/config.toml
//  3. an explicit file (--config)
//  4. HITFMT_ environment variables, with a double underscore between
//     section and key: HITFMT_OUTPUT__FORMAT=html
//  5. overrides supplied by the caller, usually command line flags
package config
