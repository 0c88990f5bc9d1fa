package gouache

import "math"

// Vec2 is a 2D point or displacement in font units or pixels.
// float32 matches the precision of the vertex data handed to the GPU.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float32 {
	return v.Sub(w).Length()
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// Approx reports whether both components are within epsilon of w.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return abs32(v.X-w.X) <= epsilon && abs32(v.Y-w.Y) <= epsilon
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
