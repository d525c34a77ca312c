package m4

import (
	"github.com/chewxy/math32"
)

// Matrix is a 4x4 transform stored row-major in 16 floats. Translation lives in
// elements 12, 13, 14, so a Matrix can be handed to the GPU (or raylib) as-is.
// Matrices are values; every function returns a new one.
type Matrix [16]float32

// Identity returns the multiplicative identity.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that moves points by (tx, ty, tz).
func Translation(tx, ty, tz float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, tz, 1,
	}
}

// XRotation returns a rotation of angle radians about the X axis.
func XRotation(angle float32) Matrix {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// YRotation returns a rotation of angle radians about the Y axis.
func YRotation(angle float32) Matrix {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// ZRotation returns a rotation of angle radians about the Z axis.
func ZRotation(angle float32) Matrix {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Matrix{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling returns a matrix that scales by (sx, sy, sz).
func Scaling(sx, sy, sz float32) Matrix {
	return Matrix{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Multiply returns b × a. Under Apply (the GPU's view of the matrix) b acts on the
// point first and a second: Multiply(Translation(t), ZRotation(r)) spins a model
// about its own origin and then moves it to t, while Multiply(Scaling(s),
// Translation(t)) moves first and scales the offset too. Callers depend on this
// order; do not swap it.
func Multiply(a, b Matrix) Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		b0 := b[row*4+0]
		b1 := b[row*4+1]
		b2 := b[row*4+2]
		b3 := b[row*4+3]
		for col := 0; col < 4; col++ {
			out[row*4+col] = b0*a[0*4+col] + b1*a[1*4+col] + b2*a[2*4+col] + b3*a[3*4+col]
		}
	}
	return out
}

// Translate is Multiply(m, Translation(tx, ty, tz)).
func Translate(m Matrix, tx, ty, tz float32) Matrix {
	return Multiply(m, Translation(tx, ty, tz))
}

// XRotate is Multiply(m, XRotation(angle)).
func XRotate(m Matrix, angle float32) Matrix {
	return Multiply(m, XRotation(angle))
}

// YRotate is Multiply(m, YRotation(angle)).
func YRotate(m Matrix, angle float32) Matrix {
	return Multiply(m, YRotation(angle))
}

// ZRotate is Multiply(m, ZRotation(angle)).
func ZRotate(m Matrix, angle float32) Matrix {
	return Multiply(m, ZRotation(angle))
}

// Scale is Multiply(m, Scaling(sx, sy, sz)).
func Scale(m Matrix, sx, sy, sz float32) Matrix {
	return Multiply(m, Scaling(sx, sy, sz))
}

// Transpose swaps rows and columns.
func Transpose(m Matrix) Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// Apply transforms the homogeneous point v by m, treating v as a row vector
// that post-multiplies m (v' = v·m in row-major storage, i.e. the GPU's M·v).
func (m Matrix) Apply(v [4]float32) [4]float32 {
	var out [4]float32
	for col := 0; col < 4; col++ {
		out[col] = v[0]*m[0*4+col] + v[1]*m[1*4+col] + v[2]*m[2*4+col] + v[3]*m[3*4+col]
	}
	return out
}

// Equal reports whether every element of a and b differs by at most tol.
func Equal(a, b Matrix, tol float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
