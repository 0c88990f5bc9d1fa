package gouache

import "math"

// Component is one contour of an outline: the half-open range
// [Start, End) of points it owns.
type Component struct {
	Start, End int
}

// Len returns the number of points in the contour.
func (c Component) Len() int {
	return c.End - c.Start
}

// PathBuilder accumulates outline commands into a flat point list plus
// contour ranges. Every edge is stored as a quadratic segment: a control
// point followed by an end point, so a downstream shader only has to
// evaluate one curve type. Lines become degenerate quadratics and cubics are
// approximated adaptively.
//
// A PathBuilder is append-only and is used once per glyph.
// All methods return the builder for chaining.
type PathBuilder struct {
	components []Component
	points     []Vec2
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

func (b *PathBuilder) addPoint(p Vec2) {
	if n := len(b.components); n > 0 {
		b.components[n-1].End++
	}
	b.points = append(b.points, p)
}

// ensureContour opens a contour at the origin when a drawing command
// arrives before any MoveTo.
func (b *PathBuilder) ensureContour() {
	if len(b.components) == 0 {
		b.MoveTo(Vec2{})
	}
}

// MoveTo starts a new contour at p.
func (b *PathBuilder) MoveTo(p Vec2) *PathBuilder {
	n := len(b.points)
	b.components = append(b.components, Component{Start: n, End: n})
	b.addPoint(p)
	return b
}

// LineTo adds a straight edge to p, encoded as a quadratic whose control
// point equals its end point.
func (b *PathBuilder) LineTo(p Vec2) *PathBuilder {
	b.ensureContour()
	b.addPoint(p)
	b.addPoint(p)
	return b
}

// QuadTo adds a quadratic Bezier with control point c ending at p.
func (b *PathBuilder) QuadTo(c, p Vec2) *PathBuilder {
	b.ensureContour()
	b.addPoint(c)
	b.addPoint(p)
	return b
}

// CubicTo adds a cubic Bezier, approximated by as many quadratics as needed
// to stay within Tolerance of the true curve.
//
// Each step measures how far the remaining cubic is from a quadratic
// (its third difference), cuts off the longest leading piece that a single
// quadratic can represent within the tolerance, and emits that piece using
// the midpoint control point of the two tangent-line estimates.
func (b *PathBuilder) CubicTo(c1, c2, p Vec2) *PathBuilder {
	b.ensureContour()

	p1 := b.points[len(b.points)-1]
	tol := Tolerance(p1, c1, c2, p)

	p2, p3, p4 := c1, c2, p
	for n := 0; n < maxCubicQuads; n++ {
		e := p2.Mul(3).Sub(p3.Mul(3)).Sub(p1).Add(p4).Length()
		if e == 0 || !finite(e) || !finite(tol) {
			break
		}
		split := float32(math.Cbrt(float64(tol / e)))
		// The negated comparison also terminates on NaN input. A zero split
		// (tolerance underflow) would never advance.
		if !(split > 0 && split <= 1) {
			break
		}

		p12 := p1.Lerp(p2, split)
		p23 := p2.Lerp(p3, split)
		p34 := p3.Lerp(p4, split)
		p123 := p12.Lerp(p23, split)
		p234 := p23.Lerp(p34, split)
		mid := p123.Lerp(p234, split)

		b.QuadTo(midControl(p1, p12, p123, mid), mid)

		p1, p2, p3 = mid, p234, p34
	}

	b.QuadTo(midControl(p1, p2, p3, p4), p4)
	return b
}

// maxCubicQuads bounds the quadratics CubicTo emits for one cubic. The
// count depends only on the curve's shape, so real outlines stay far below.
const maxCubicQuads = 256

func finite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}

// midControl returns the quadratic control point (3*a + 3*b - start - end)/4
// for the cubic start, a, b, end.
func midControl(start, a, b, end Vec2) Vec2 {
	return a.Mul(3).Add(b.Mul(3)).Sub(start).Sub(end).Mul(0.25)
}

// Tolerance returns the flattening budget CubicTo uses for the cubic
// p1, c1, c2, p4. It scales with the cubic's bounding box, so the
// approximation error stays proportional to glyph size:
//
//	0.001 * max(width, height) * 18/sqrt(3)
//
// The 18/sqrt(3) factor converts the third-difference magnitude into the
// geometric distance between the cubic and its quadratic fit, so the
// resulting deviation is at most 0.001 * max(width, height).
func Tolerance(p1, c1, c2, p4 Vec2) float32 {
	lo := p1.Min(c1).Min(c2).Min(p4)
	hi := p1.Max(c1).Max(c2).Max(p4)
	size := max(hi.X-lo.X, hi.Y-lo.Y)
	return 0.001 * size * 18 / float32(math.Sqrt(3))
}

// Close closes the current contour. If its first and last points differ,
// the first point is added twice (a degenerate quadratic back to the start).
func (b *PathBuilder) Close() *PathBuilder {
	n := len(b.components)
	if n == 0 {
		return b
	}
	c := b.components[n-1]
	if c.Len() == 0 {
		return b
	}
	first := b.points[c.Start]
	if first != b.points[c.End-1] {
		b.addPoint(first)
		b.addPoint(first)
	}
	return b
}

// Points returns a copy of the accumulated points.
func (b *PathBuilder) Points() []Vec2 {
	return append([]Vec2(nil), b.points...)
}

// Components returns a copy of the accumulated contour ranges.
func (b *PathBuilder) Components() []Component {
	return append([]Component(nil), b.components...)
}

// Build computes the bounding box, quantizes every point to unorm16 relative
// to it and returns the immutable Path. An empty builder yields an empty path
// with a zero bounding box.
func (b *PathBuilder) Build() *Path {
	if len(b.points) == 0 {
		return &Path{}
	}

	lo, hi := b.points[0], b.points[0]
	for _, p := range b.points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	points := make([]uint16, 0, 2*len(b.points))
	for _, p := range b.points {
		points = append(points, Quantize(p.X, lo.X, hi.X), Quantize(p.Y, lo.Y, hi.Y))
	}

	components := make([]uint32, 0, 2*len(b.components))
	for _, c := range b.components {
		components = append(components, uint32(c.Start), uint32(c.End)) //nolint:gosec // point counts are far below 2^32
	}

	return &Path{
		Min:        lo,
		Max:        hi,
		Points:     points,
		Components: components,
	}
}
