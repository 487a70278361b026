package mandelbrot

// Mat4 is a 4x4 matrix stored row-major, used with the row-vector
// convention v' = v * M. Transforms therefore apply left to right:
// M = A * B runs A first, then B.
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
type Mat4 [16]float64

// identityMat4 returns the identity matrix.
func identityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// scaleMat4 returns a uniform xy scale matrix.
func scaleMat4(s float64) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// translateMat4 returns an xy translation matrix. With the row-vector
// convention the offsets live in the bottom row.
func translateMat4(tx, ty float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, 0, 1,
	}
}

// orthoMat4 returns the orthographic projection with the given diagonal
// terms for the x and y axes.
func orthoMat4(sx, sy float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// mul returns a * b.
func (a Mat4) mul(b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Apply transforms the point (x, y) by m: (x, y, 0, 1) * m.
func (m Mat4) Apply(x, y float64) (float64, float64) {
	return x*m[0] + y*m[4] + m[12], x*m[1] + y*m[5] + m[13]
}

// toF32 flattens m into dst as float32, in storage order. Because Kage
// reads mat4 uniforms column-major and this package uses the row-vector
// convention, passing the row-major data unchanged makes the shader's
// `M * v` compute exactly this package's `v * M`.
func (m Mat4) toF32(dst []float32) {
	for i, v := range m {
		dst[i] = float32(v)
	}
}
