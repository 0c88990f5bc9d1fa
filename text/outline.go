package text

import (
	"github.com/gogpu/gouache"
)

// pathSink adapts a gouache.PathBuilder to OutlineVisitor.
type pathSink struct {
	b *gouache.PathBuilder
}

func (s pathSink) MoveTo(x, y float32) {
	s.b.MoveTo(gouache.V2(x, y))
}

func (s pathSink) LineTo(x, y float32) {
	s.b.LineTo(gouache.V2(x, y))
}

func (s pathSink) QuadTo(cx, cy, x, y float32) {
	s.b.QuadTo(gouache.V2(cx, cy), gouache.V2(x, y))
}

func (s pathSink) CurveTo(c1x, c1y, c2x, c2y, x, y float32) {
	s.b.CubicTo(gouache.V2(c1x, c1y), gouache.V2(c2x, c2y), gouache.V2(x, y))
}

func (s pathSink) Close() {
	s.b.Close()
}

// BuildPath decodes the outline of gid and flattens it into a quantized path.
// A glyph without contours yields an empty path.
func BuildPath(f Font, gid GlyphID) (*gouache.Path, error) {
	b := gouache.NewPathBuilder()
	if err := f.Outline(gid, pathSink{b: b}); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
