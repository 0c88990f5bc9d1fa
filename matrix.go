package gouache

// Mat4 is a 4x4 transformation matrix stored in row-major order:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
//
// Points are column vectors, so translation lives in m[3], m[7], m[11].
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a matrix scaling x, y and z uniformly by s.
func Scale(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Ortho returns the matrix mapping pixel coordinates with the origin at the
// bottom-left corner and y pointing up to clip space [-1, 1].
func Ortho(width, height float32) Mat4 {
	return Mat4{
		2 / width, 0, 0, -1,
		0, 2 / height, 0, -1,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the product m * other. Applying the result to a point is the
// same as applying other first, then m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i*4+k] * other[k*4+j]
			}
			r[i*4+j] = sum
		}
	}
	return r
}

// TransformPoint applies the matrix to a point at z=0, w=1.
func (m Mat4) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[7],
	}
}
