package gouache

import "math"

// UnormMax is the largest unorm16 value; it represents the maximum of an
// axis range.
const UnormMax = 65535

// Path is the immutable result of a PathBuilder: a quantized glyph outline.
//
// Points holds two unorm16 scalars (x, y) per point, each a fraction of the
// bounding box extent on its axis. Components holds two scalars (start, end)
// per contour, as point indices into Points.
type Path struct {
	Min, Max Vec2

	Points     []uint16
	Components []uint32
}

// Empty reports whether the path has no points (for example a space glyph).
func (p *Path) Empty() bool {
	return len(p.Points) == 0
}

// PointCount returns the number of points.
func (p *Path) PointCount() int {
	return len(p.Points) / 2
}

// ComponentCount returns the number of contours.
func (p *Path) ComponentCount() int {
	return len(p.Components) / 2
}

// Component returns the i-th contour range.
func (p *Path) Component(i int) Component {
	return Component{Start: int(p.Components[2*i]), End: int(p.Components[2*i+1])}
}

// Point returns the i-th point, dequantized back into outline coordinates.
func (p *Path) Point(i int) Vec2 {
	return Vec2{
		X: Dequantize(p.Points[2*i], p.Min.X, p.Max.X),
		Y: Dequantize(p.Points[2*i+1], p.Min.Y, p.Max.Y),
	}
}

// Size returns the bounding box extent.
func (p *Path) Size() Vec2 {
	return p.Max.Sub(p.Min)
}

// Quantize maps v in [lo, hi] to round(65535 * (v-lo)/(hi-lo)), clamped to
// the unorm16 range. An axis with no usable extent (hi <= lo, or a
// non-finite extent) maps every value to 0.
func Quantize(v, lo, hi float32) uint16 {
	extent := float64(hi) - float64(lo)
	if !(extent > 0) || math.IsInf(extent, 0) {
		return 0
	}
	q := math.Round(UnormMax * (float64(v) - float64(lo)) / extent)
	switch {
	case q >= UnormMax:
		return UnormMax
	case q > 0:
		return uint16(q)
	default:
		// Negative and NaN.
		return 0
	}
}

// Dequantize is the inverse of Quantize: lo + q/65535 * (hi-lo).
// On a degenerate axis it returns lo.
func Dequantize(q uint16, lo, hi float32) float32 {
	extent := float64(hi) - float64(lo)
	if !(extent > 0) || math.IsInf(extent, 0) {
		return lo
	}
	return float32(float64(lo) + float64(q)/UnormMax*extent)
}
