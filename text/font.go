package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// FontMetrics holds font-wide metrics in font units.
type FontMetrics struct {
	// UnitsPerEm is the size of the em square. Layout scales by size/UnitsPerEm.
	UnitsPerEm float32

	// Ascender is the distance from the baseline to the top of the font (positive).
	Ascender float32

	// Height is ascender minus descender: the extent of one line without gap.
	Height float32

	// LineGap is the recommended extra space between lines.
	LineGap float32
}

// LineHeight returns the baseline-to-baseline distance in font units.
func (m FontMetrics) LineHeight() float32 {
	return m.Height + m.LineGap
}

// OutlineVisitor receives a glyph outline as a sequence of drawing commands
// in font units, y pointing up. Every contour is terminated by Close.
type OutlineVisitor interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CurveTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// Font is the outline decoder the rest of the package depends on.
// Implementations are not required to be safe for concurrent use.
type Font interface {
	// GlyphIndex maps a rune to its glyph. It returns ErrNotMapped when the
	// font has no glyph for r.
	GlyphIndex(r rune) (GlyphID, error)

	// GlyphAdvance returns the horizontal advance of a glyph in font units.
	GlyphAdvance(gid GlyphID) (float32, error)

	// Outline walks the outline of a glyph. Glyphs without any contours
	// (such as a space) visit nothing and return nil. Glyphs that exist but
	// carry no vector outline (bitmap or color glyphs) return ErrNoOutline.
	Outline(gid GlyphID, v OutlineVisitor) error

	// Metrics returns the font-wide metrics.
	Metrics() FontMetrics
}
