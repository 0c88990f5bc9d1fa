package text

import (
	"fmt"
	"os"
	"sort"
)

// Backend decodes font data into a Font.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt vs github.com/go-text/typesetting).
type Backend interface {
	Load(data []byte) (Font, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(data []byte) (Font, error)

// Load implements Backend.
func (f BackendFunc) Load(data []byte) (Font, error) { return f(data) }

// Backend names registered by default.
const (
	BackendSFNT   = "sfnt"
	BackendGoText = "gotext"
)

// DefaultBackend is the backend used when none is requested.
const DefaultBackend = BackendSFNT

// backendRegistry holds registered font backends.
var backendRegistry = map[string]Backend{
	BackendSFNT:   BackendFunc(loadSFNT),
	BackendGoText: BackendFunc(loadGoText),
}

// RegisterBackend registers a custom font backend under name, replacing any
// backend already registered with that name. It is not safe to call
// concurrently with LoadFont.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FontOption configures LoadFont.
type FontOption func(*fontConfig)

type fontConfig struct {
	backend string
}

func defaultFontConfig() fontConfig {
	return fontConfig{backend: DefaultBackend}
}

// WithBackend selects the font backend by its registered name.
func WithBackend(name string) FontOption {
	return func(c *fontConfig) {
		c.backend = name
	}
}

// LoadFont decodes TTF or OTF data with the configured backend.
// A decode failure is fatal for the font and is returned as *BackendError.
func LoadFont(data []byte, opts ...FontOption) (Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, ok := backendRegistry[cfg.backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
	}

	f, err := b.Load(data)
	if err != nil {
		return nil, &BackendError{Backend: cfg.backend, Err: err}
	}

	m := f.Metrics()
	if !(m.UnitsPerEm > 0) {
		return nil, &BackendError{
			Backend: cfg.backend,
			Err:     fmt.Errorf("%w: units per em %v", ErrInvalidMetrics, m.UnitsPerEm),
		}
	}

	slogger().Info("text: font loaded",
		"backend", cfg.backend,
		"bytes", len(data),
		"upem", m.UnitsPerEm,
		"ascender", m.Ascender,
		"height", m.Height,
	)
	return f, nil
}

// LoadFontFile reads a font file from disk and decodes it with LoadFont.
func LoadFontFile(path string, opts ...FontOption) (Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided path
	if err != nil {
		return nil, fmt.Errorf("text: read font %s: %w", path, err)
	}
	return LoadFont(data, opts...)
}
