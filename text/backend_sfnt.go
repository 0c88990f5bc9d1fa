package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntFont implements Font using golang.org/x/image/font/sfnt.
//
// All queries are made at a ppem equal to the units per em, so that the
// 26.6 results are font units times 64.
type sfntFont struct {
	font    *opentype.Font
	buf     sfnt.Buffer
	ppem    fixed.Int26_6
	metrics FontMetrics
}

func loadSFNT(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	upem := f.UnitsPerEm()
	s := &sfntFont{
		font: f,
		ppem: fixed.Int26_6(upem) << 6,
	}

	m, err := f.Metrics(&s.buf, s.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("read metrics: %w", err)
	}
	s.metrics = FontMetrics{
		UnitsPerEm: float32(upem),
		Ascender:   fixedToFloat32(m.Ascent),
		Height:     fixedToFloat32(m.Ascent + m.Descent),
		LineGap:    fixedToFloat32(m.Height - m.Ascent - m.Descent),
	}
	return s, nil
}

// GlyphIndex implements Font.GlyphIndex.
func (f *sfntFont) GlyphIndex(r rune) (GlyphID, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("text: glyph index %U: %w", r, err)
	}
	if idx == 0 {
		return 0, ErrNotMapped
	}
	return GlyphID(idx), nil
}

// GlyphAdvance implements Font.GlyphAdvance.
func (f *sfntFont) GlyphAdvance(gid GlyphID) (float32, error) {
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("text: glyph advance %d: %w", gid, err)
	}
	return fixedToFloat32(adv), nil
}

// Outline implements Font.Outline.
//
// sfnt segments are y-down and contours are implicit: a contour ends at the
// next MoveTo or at the end of the segment list.
func (f *sfntFont) Outline(gid GlyphID, v OutlineVisitor) error {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return ErrNoOutline
		}
		return fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				v.Close()
			}
			x, y := fixedPointToFloat32(seg.Args[0])
			v.MoveTo(x, y)
			open = true

		case sfnt.SegmentOpLineTo:
			x, y := fixedPointToFloat32(seg.Args[0])
			v.LineTo(x, y)

		case sfnt.SegmentOpQuadTo:
			cx, cy := fixedPointToFloat32(seg.Args[0])
			x, y := fixedPointToFloat32(seg.Args[1])
			v.QuadTo(cx, cy, x, y)

		case sfnt.SegmentOpCubeTo:
			c1x, c1y := fixedPointToFloat32(seg.Args[0])
			c2x, c2y := fixedPointToFloat32(seg.Args[1])
			x, y := fixedPointToFloat32(seg.Args[2])
			v.CurveTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		v.Close()
	}
	return nil
}

// Metrics implements Font.Metrics.
func (f *sfntFont) Metrics() FontMetrics {
	return f.metrics
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64.0
}

// fixedPointToFloat32 converts a y-down 26.6 point to y-up float32 coordinates.
func fixedPointToFloat32(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64.0, -float32(p.Y) / 64.0
}
