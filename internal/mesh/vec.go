package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// degenerateEpsilon is the smallest length the strict helpers accept.
const degenerateEpsilon = 1e-7

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Dot returns the dot product.
func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length returns the Euclidean length.
func (a Vec3) Length() float32 {
	return math32.Sqrt(a.Dot(a))
}

// Normalize divides by the length without checking it; a zero vector yields NaN.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	return Vec3{a[0] / l, a[1] / l, a[2] / l}
}

// NormalizeStrict is Normalize that reports ErrDegenerateGeometry for (near) zero vectors.
func (a Vec3) NormalizeStrict() (Vec3, error) {
	l := a.Length()
	if l < degenerateEpsilon || !finite(l) {
		return Vec3{}, fmt.Errorf("normalize %v: %w", a, ErrDegenerateGeometry)
	}
	return Vec3{a[0] / l, a[1] / l, a[2] / l}, nil
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// FaceNormal returns the unit normal (b-a) × (c-b) of a quad edge pair. Collinear
// points give NaN.
func FaceNormal(a, b, c Vec4) Vec3 {
	u := b.XYZ().Sub(a.XYZ())
	v := c.XYZ().Sub(b.XYZ())
	return u.Cross(v).Normalize()
}

// FaceNormalStrict is FaceNormal that fails with ErrDegenerateGeometry when the face
// has no area.
func FaceNormalStrict(a, b, c Vec4) (Vec3, error) {
	u := b.XYZ().Sub(a.XYZ())
	v := c.XYZ().Sub(b.XYZ())
	n, err := u.Cross(v).NormalizeStrict()
	if err != nil {
		return Vec3{}, fmt.Errorf("face %v %v %v: %w", a, b, c, err)
	}
	return n, nil
}
