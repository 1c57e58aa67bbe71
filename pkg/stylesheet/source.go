package stylesheet

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/logging"
)

// Extensions tried, in order, when looking a style up by name
var Extensions = []string{"", ".toml", ".yaml", ".yml"}

// Source resolves a style name to a sheet file
type Source interface {
	Lookup(name string) (path string, err error)
}

// DirSource looks styles up in a list of directories, first match wins
type DirSource struct {
	Dirs []string
}

// NewDirSource returns a source searching dirs in order
func NewDirSource(dirs ...string) *DirSource {
	return &DirSource{Dirs: dirs}
}

// Lookup returns the first existing file among dir/name plus each of
// Extensions, for every directory. Absolute names are checked as is.
func (d *DirSource) Lookup(name string) (string, error) {
	dirs := d.Dirs
	if filepath.IsAbs(name) {
		dirs = []string{""}
	}
	for _, dir := range dirs {
		if dir == InMemory {
			dir = "."
		}
		for _, ext := range Extensions {
			path := filepath.Join(dir, name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", errors.Newf(errors.ErrUnknownStyle, "style %q not found", name).
		WithDetail(errors.DetailStyle, name).
		WithDetail("searched", dirs)
}

// DefaultDirs returns the directories searched for named styles: the working
// location followed by $XDG_CONFIG_HOME/hitfmt/styles.
func DefaultDirs(location string) []string {
	xdg.Reload()
	if location == "" || location == InMemory {
		location = "."
	}
	return []string{location, filepath.Join(xdg.ConfigHome, logging.AppName, "styles")}
}

// Load looks name up in src, reads it and resolves its includes
func Load(name string, src Source) (*Sheet, error) {
	path, err := src.Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Resolve(s, src)
}
