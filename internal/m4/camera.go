package m4

import (
	"github.com/chewxy/math32"
)

// Projection maps pixel coordinates (origin top-left, Y down) of a width×height
// viewport with the given depth range into clip space.
func Projection(width, height, depth float32) Matrix {
	return Matrix{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		-1, 1, 0, 1,
	}
}

// Ortho returns an orthographic projection of the box [left,right]×[bottom,top]×[near,far].
// Degenerate extents divide by zero.
func Ortho(left, right, bottom, top, near, far float32) Matrix {
	w := right - left
	h := top - bottom
	d := far - near
	return Matrix{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -2 / d, 0,
		-(left + right) / w, -(top + bottom) / h, -(near + far) / d, 1,
	}
}

// LookAt returns a view matrix for a camera at eye looking toward at with the given up
// vector. When eye and at coincide there is no view direction and the identity is returned.
func LookAt(eye, at, up [3]float32) Matrix {
	if eye == at {
		return Identity()
	}
	v := normalize(sub(at, eye))
	n := normalize(cross(v, up))
	u := normalize(cross(n, v))
	return Matrix{
		n[0], u[0], -v[0], 0,
		n[1], u[1], -v[1], 0,
		n[2], u[2], -v[2], 0,
		-dot(n, eye), -dot(u, eye), dot(v, eye), 1,
	}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(a [3]float32) [3]float32 {
	l := math32.Sqrt(dot(a, a))
	return [3]float32{a[0] / l, a[1] / l, a[2] / l}
}
