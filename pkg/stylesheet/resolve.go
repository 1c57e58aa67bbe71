package stylesheet

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idaholab/moose-language-support/pkg/errors"
	"github.com/idaholab/moose-language-support/pkg/logging"
)

type resolver struct {
	fallback Source
	stack    []string
	logger   zerolog.Logger
}

// Resolve returns a copy of s with its includes merged in, depth first. An
// include is looked up next to the sheet that names it, then in fallback if
// that is not nil. Own rules precede included rules, and own styles and
// colors replace included ones of the same name. An include chain that
// returns to a sheet already being resolved fails with INCLUDE_CYCLE.
func Resolve(s *Sheet, fallback Source) (*Sheet, error) {
	r := &resolver{
		fallback: fallback,
		logger:   logging.GetLogger("stylesheet.resolver"),
	}
	if s.Path != "" {
		r.stack = append(r.stack, s.Path)
	}
	return r.resolve(s)
}

func (r *resolver) resolve(s *Sheet) (*Sheet, error) {
	out := s.clone()
	for _, inc := range s.Includes {
		path, err := r.lookup(s.Location, inc)
		if err != nil {
			return nil, errors.AddDetail(err, "includedBy", s.Name)
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		for _, p := range r.stack {
			if p == path {
				chain := append(append([]string(nil), r.stack...), path)
				return nil, errors.Newf(errors.ErrIncludeCycle,
					"include cycle: %s", strings.Join(chain, " -> ")).
					WithDetail(errors.DetailPath, path)
			}
		}

		child, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		r.stack = append(r.stack, path)
		resolved, err := r.resolve(child)
		r.stack = r.stack[:len(r.stack)-1]
		if err != nil {
			return nil, err
		}

		r.logger.Trace().
			Str("sheet", s.Name).
			Str("include", path).
			Int("rules", len(resolved.Rules)).
			Msg("Merged include")

		out.Rules = append(out.Rules, resolved.Rules...)
		for k, v := range resolved.Styles {
			if _, ok := out.Styles[k]; !ok {
				out.Styles[k] = v
			}
		}
		for k, v := range resolved.Colors {
			if _, ok := out.Colors[k]; !ok {
				out.Colors[k] = v
			}
		}
	}
	return out, nil
}

func (r *resolver) lookup(location, name string) (string, error) {
	path, err := NewDirSource(location).Lookup(name)
	if err == nil || r.fallback == nil {
		return path, err
	}
	return r.fallback.Lookup(name)
}
