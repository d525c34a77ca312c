package mesh

import (
	"math"
)

// DefaultSphereDepth is the subdivision depth used when a negative depth is requested.
const DefaultSphereDepth = 3

// point is a sphere vertex while subdividing. The recursion and the UV projection run
// in float64; in float32 the renormalized midpoints near x = ±0.5 give y/√(1−x²)
// slightly above 1, and asin turns that into NaN.
type point [3]float64

// Seed tetrahedron of the geodesic sphere.
var (
	tetraA = point{0, 0, -1}
	tetraB = point{0, 0.942809, 0.333333}
	tetraC = point{-0.816497, -0.471405, 0.333333}
	tetraD = point{0.816497, -0.471405, 0.333333}
)

// Sphere returns a unit geodesic sphere built by subdividing each tetrahedron face
// depth times. The result has 4·4^depth triangles (12 vertices at depth 0). A negative
// depth selects DefaultSphereDepth.
//
// Colors encode position ((1+p)/2 per channel) and normals equal positions. Texture
// coordinates come from SphereUV and are NaN wherever |x| == 1.
func Sphere(depth int) Mesh {
	if depth < 0 {
		depth = DefaultSphereDepth
	}
	n := 4 * 3 * pow4(depth)
	b := &sphereBuilder{m: Mesh{
		Vertices:  make([]Vec4, 0, n),
		Colors:    make([]Color, 0, n),
		TexCoords: make([]Vec2, 0, n),
		Normals:   make([]Vec3, 0, n),
	}}
	b.divide(tetraA, tetraB, tetraC, depth)
	b.divide(tetraD, tetraC, tetraB, depth)
	b.divide(tetraA, tetraD, tetraB, depth)
	b.divide(tetraA, tetraC, tetraD, depth)
	return b.m
}

// SphereVertexCount returns the number of vertices Sphere(depth) emits.
func SphereVertexCount(depth int) int {
	if depth < 0 {
		depth = DefaultSphereDepth
	}
	return 4 * 3 * pow4(depth)
}

// SphereUV projects a point on the unit sphere to texture space with
// u = acos(x)/2π and v = asin(y/√(1−x²))/2π. At x = ±1 the divisor is zero and the
// result is NaN, which shows up as a seam at the two poles of the x axis.
func SphereUV(p Vec4) Vec2 {
	return sphereUV(float64(p[0]), float64(p[1]))
}

func sphereUV(x, y float64) Vec2 {
	u := 0.5 * math.Acos(x) / math.Pi
	v := 0.5 * math.Asin(y/math.Sqrt(1-x*x)) / math.Pi
	return Vec2{float32(u), float32(v)}
}

type sphereBuilder struct {
	m Mesh
}

func (b *sphereBuilder) divide(a, c1, c2 point, depth int) {
	if depth == 0 {
		b.triangle(a, c1, c2)
		return
	}
	ab := unitMidpoint(a, c1)
	ac := unitMidpoint(a, c2)
	bc := unitMidpoint(c1, c2)
	b.divide(a, ab, ac, depth-1)
	b.divide(ab, c1, bc, depth-1)
	b.divide(bc, c2, ac, depth-1)
	b.divide(ab, bc, ac, depth-1)
}

func (b *sphereBuilder) triangle(ps ...point) {
	for _, p := range ps {
		v := Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
		b.m.Vertices = append(b.m.Vertices, Vec4{v[0], v[1], v[2], 1})
		b.m.Normals = append(b.m.Normals, v)
		b.m.Colors = append(b.m.Colors, Color{(1 + v[0]) / 2, (1 + v[1]) / 2, (1 + v[2]) / 2, 1})
		b.m.TexCoords = append(b.m.TexCoords, sphereUV(p[0], p[1]))
	}
}

// unitMidpoint is the edge midpoint pushed back onto the unit sphere.
func unitMidpoint(a, b point) point {
	mid := point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
	l := math.Sqrt(mid[0]*mid[0] + mid[1]*mid[1] + mid[2]*mid[2])
	return point{mid[0] / l, mid[1] / l, mid[2] / l}
}

func pow4(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 4
	}
	return out
}
