package text

// fakeGlyph is one glyph of fakeFont. draw is nil for glyphs without
// contours.
type fakeGlyph struct {
	advance float32
	draw    func(v OutlineVisitor)
	err     error
}

// fakeFont is an in-memory Font with exact metrics.
//
// Metrics: upem 1000, ascender 800, descender -200, line gap 200.
// Glyphs:
//
//	'A' (1): box 0..500 x 0..700, advance 600
//	'B' (2): box with a cubic bowl, advance 550
//	' ' (3): no contours, advance 250
//	'\u00e9' (4): box 0..400 x 0..900, advance 450
type fakeFont struct {
	metrics FontMetrics
	runes   map[rune]GlyphID
	glyphs  map[GlyphID]fakeGlyph

	outlineCalls map[GlyphID]int
}

func newFakeFont() *fakeFont {
	return &fakeFont{
		metrics: FontMetrics{
			UnitsPerEm: 1000,
			Ascender:   800,
			Height:     1000,
			LineGap:    200,
		},
		runes: map[rune]GlyphID{
			'A':      1,
			'B':      2,
			' ':      3,
			'\u00e9': 4,
		},
		glyphs: map[GlyphID]fakeGlyph{
			1: {advance: 600, draw: drawBox(0, 0, 500, 700)},
			2: {advance: 550, draw: func(v OutlineVisitor) {
				v.MoveTo(0, 0)
				v.LineTo(300, 0)
				v.CurveTo(500, 0, 500, 350, 300, 350)
				v.LineTo(0, 350)
				v.Close()
			}},
			3: {advance: 250},
			4: {advance: 450, draw: drawBox(0, 0, 400, 900)},
		},
		outlineCalls: make(map[GlyphID]int),
	}
}

func drawBox(x0, y0, x1, y1 float32) func(v OutlineVisitor) {
	return func(v OutlineVisitor) {
		v.MoveTo(x0, y0)
		v.LineTo(x1, y0)
		v.LineTo(x1, y1)
		v.LineTo(x0, y1)
		v.Close()
	}
}

func (f *fakeFont) GlyphIndex(r rune) (GlyphID, error) {
	gid, ok := f.runes[r]
	if !ok {
		return 0, ErrNotMapped
	}
	return gid, nil
}

func (f *fakeFont) GlyphAdvance(gid GlyphID) (float32, error) {
	return f.glyphs[gid].advance, nil
}

func (f *fakeFont) Outline(gid GlyphID, v OutlineVisitor) error {
	f.outlineCalls[gid]++
	g := f.glyphs[gid]
	if g.err != nil {
		return g.err
	}
	if g.draw != nil {
		g.draw(v)
	}
	return nil
}

func (f *fakeFont) Metrics() FontMetrics {
	return f.metrics
}
