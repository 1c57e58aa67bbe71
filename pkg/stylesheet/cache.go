package stylesheet

import (
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/idaholab/moose-language-support/pkg/logging"
	"github.com/idaholab/moose-language-support/pkg/rules"
)

// Cache shares compiled styles between formatters built from identical
// sheets and options. It lives for the life of the process.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*rules.CompiledStyle
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*rules.CompiledStyle)}
}

// Key identifies a sheet compiled with opts: the blake3 hash of the sheet's
// canonical encoding and the option fingerprint.
func Key(s *Sheet, opts ...rules.Option) (string, error) {
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	h := blake3.New()
	_, _ = h.Write(data)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(rules.Fingerprint(opts...)))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compile returns the compiled style for s, compiling it on first use.
// Errors are not cached.
func (c *Cache) Compile(s *Sheet, opts ...rules.Option) (*rules.CompiledStyle, error) {
	logger := logging.GetLogger("stylesheet.cache")

	key, err := Key(s, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	style, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		logger.Trace().Str("style", s.Name).Str("key", key[:12]).Msg("Cache hit")
		return style, nil
	}

	style, err = s.Compile(opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = style
	logger.Debug().Str("style", s.Name).Str("key", key[:12]).Msg("Cached compiled style")
	return style, nil
}

// Len returns the number of cached styles
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
