package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNotMapped is returned by Font.GlyphIndex when a rune has no glyph.
	// Layout skips such runes.
	ErrNotMapped = errors.New("text: rune not mapped to a glyph")

	// ErrNoOutline is returned by Font.Outline for glyphs without vector data.
	// The glyph cache stores an empty path for them.
	ErrNoOutline = errors.New("text: glyph has no vector outline")

	// ErrUnknownBackend is returned when a font backend name is not registered.
	ErrUnknownBackend = errors.New("text: unknown font backend")

	// ErrInvalidMetrics is returned when a font reports a non-positive units per em.
	ErrInvalidMetrics = errors.New("text: invalid font metrics")

	// ErrOddRowWidth is returned when a packing row width cannot hold whole
	// two-scalar elements.
	ErrOddRowWidth = errors.New("text: row width must be even")

	// ErrIndexOverflow is returned when a mesh would need more vertices than
	// 16-bit indices can address.
	ErrIndexOverflow = errors.New("text: mesh exceeds 16-bit index range")
)

// BackendError reports a failure inside a font backend.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return "text: " + e.Backend + " backend: " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
