package text

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gouache"
)

// LayoutOptions configures text preprocessing before glyph lookup.
type LayoutOptions struct {
	// Normalize applies Unicode NFC so that decomposed sequences map to
	// precomposed glyphs where the font has them.
	// Default: true
	Normalize bool

	// NormalizeNewlines turns "\r\n" and lone "\r" into "\n".
	// Default: true
	NormalizeNewlines bool
}

// DefaultLayoutOptions returns the default layout options.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Normalize:         true,
		NormalizeNewlines: true,
	}
}

// Placement is one positioned glyph: the glyph ID and its pen position in
// pixels, y pointing up. Pos is the glyph origin on the baseline.
type Placement struct {
	GID  GlyphID
	Rune rune
	Pos  gouache.Vec2
}

// TextLayout is the result of laying out a string at a given size.
type TextLayout struct {
	// Placements holds one entry per mapped rune, in input order.
	Placements []Placement

	// Scale converts font units to pixels: size / units per em.
	Scale float32

	// Width is the largest pen x reached on any line.
	Width float32

	// Height is the number of lines times LineHeight.
	Height float32

	// LineHeight is the baseline-to-baseline distance in pixels.
	LineHeight float32

	// Lines is the number of lines.
	Lines int
}

// Layout places the glyphs of s for font f at size pixels per em.
//
// The first baseline sits one scaled ascender above the origin and each
// newline moves the pen down one line, so text grows toward negative y.
// Runes the font does not map are skipped. Layout is deterministic.
func Layout(f Font, size float32, s string, opts LayoutOptions) *TextLayout {
	m := f.Metrics()

	var scale float32
	if m.UnitsPerEm > 0 {
		scale = size / m.UnitsPerEm
	}
	lineHeight := scale * m.LineHeight()

	if opts.NormalizeNewlines {
		s = normalizeNewlines(s)
	}
	if opts.Normalize {
		s = norm.NFC.String(s)
	}

	l := &TextLayout{
		Placements: make([]Placement, 0, len(s)),
		Scale:      scale,
		Height:     lineHeight,
		LineHeight: lineHeight,
		Lines:      1,
	}

	pen := gouache.V2(0, scale*m.Ascender)
	for _, r := range s {
		if r == '\n' {
			pen.X = 0
			pen.Y -= lineHeight
			l.Height += lineHeight
			l.Lines++
			continue
		}

		gid, err := f.GlyphIndex(r)
		if err != nil {
			if !errors.Is(err, ErrNotMapped) {
				slogger().Warn("text: glyph lookup failed", "rune", r, "err", err)
			} else {
				slogger().Debug("text: rune not mapped", "rune", r)
			}
			continue
		}

		adv, err := f.GlyphAdvance(gid)
		if err != nil {
			slogger().Warn("text: glyph advance failed", "gid", gid, "err", err)
			adv = 0
		}

		l.Placements = append(l.Placements, Placement{GID: gid, Rune: r, Pos: pen})
		pen.X += scale * adv
		if pen.X > l.Width {
			l.Width = pen.X
		}
	}

	return l
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
