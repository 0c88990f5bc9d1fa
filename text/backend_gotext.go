package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextFont implements Font using github.com/go-text/typesetting.
//
// font.Face is NOT safe for concurrent use, and neither is gotextFont.
type gotextFont struct {
	face    *font.Face
	metrics FontMetrics
}

func loadGoText(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	ext, ok := face.FontHExtents()
	if !ok {
		return nil, fmt.Errorf("parse font: missing horizontal extents")
	}

	return &gotextFont{
		face: face,
		metrics: FontMetrics{
			UnitsPerEm: float32(face.Upem()),
			Ascender:   ext.Ascender,
			Height:     ext.Ascender - ext.Descender,
			LineGap:    ext.LineGap,
		},
	}, nil
}

// GlyphIndex implements Font.GlyphIndex.
func (f *gotextFont) GlyphIndex(r rune) (GlyphID, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, ErrNotMapped
	}
	return GlyphID(gid), nil //nolint:gosec // glyph count of an sfnt font fits uint16
}

// GlyphAdvance implements Font.GlyphAdvance.
func (f *gotextFont) GlyphAdvance(gid GlyphID) (float32, error) {
	return f.face.HorizontalAdvance(font.GID(gid)), nil
}

// Outline implements Font.Outline.
//
// Segments are y-up already; contours are closed implicitly as with sfnt.
func (f *gotextFont) Outline(gid GlyphID, v OutlineVisitor) error {
	outline, ok := f.face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		return ErrNoOutline
	}

	open := false
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				v.Close()
			}
			v.MoveTo(a[0].X, a[0].Y)
			open = true
		case opentype.SegmentOpLineTo:
			v.LineTo(a[0].X, a[0].Y)
		case opentype.SegmentOpQuadTo:
			v.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case opentype.SegmentOpCubeTo:
			v.CurveTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if open {
		v.Close()
	}
	return nil
}

// Metrics implements Font.Metrics.
func (f *gotextFont) Metrics() FontMetrics {
	return f.metrics
}
