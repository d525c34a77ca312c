package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeCounts(t *testing.T) {
	m := Cube()
	assert.Len(t, m.Vertices, 36)
	assert.Len(t, m.Colors, 36)
	assert.Len(t, m.TexCoords, 36)
	assert.Equal(t, 12, m.TriangleCount())
	require.NoError(t, m.Validate())
}

func TestCubeFacesAreFlatColored(t *testing.T) {
	m := Cube()
	for face := 0; face < 6; face++ {
		first := m.Colors[face*6]
		assert.Equal(t, cubeCornerColors[cubeFaces[face][0]], first)
		for i := 1; i < 6; i++ {
			assert.Equal(t, first, m.Colors[face*6+i], "face %d vertex %d", face, i)
		}
	}
}

func TestCubeGeometry(t *testing.T) {
	m := Cube()
	for i, v := range m.Vertices {
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, CubeHalfExtent, math32.Abs(v[axis]), 1e-7, "vertex %d axis %d", i, axis)
		}
		assert.Equal(t, float32(1), v[3])
		assert.Equal(t, quadUVs[i%6], m.TexCoords[i])
	}
	// First face is quad(1,0,3,2) split as [a,b,c,a,c,d].
	want := []Vec4{cubeCorners[1], cubeCorners[0], cubeCorners[3], cubeCorners[1], cubeCorners[3], cubeCorners[2]}
	assert.Equal(t, want, m.Vertices[:6])
}

func TestSolidCube(t *testing.T) {
	plain := Cube()
	m := SolidCube(White)
	assert.Equal(t, plain.Vertices, m.Vertices)
	for _, c := range m.Colors {
		assert.Equal(t, White, c)
	}

	blue, err := plain.Recolor(Blue)
	require.NoError(t, err)
	assert.Equal(t, Blue, blue.Colors[0])
	// Recolor must not leak into the source mesh.
	assert.Equal(t, Green, plain.Colors[6*2])
}

func TestSphereCounts(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		m := Sphere(depth)
		want := 4 * pow4(depth) * 3
		assert.Len(t, m.Vertices, want, "depth %d", depth)
		assert.Len(t, m.Colors, want)
		assert.Len(t, m.TexCoords, want)
		assert.Len(t, m.Normals, want)
		assert.Equal(t, want, SphereVertexCount(depth))
	}
	assert.Len(t, Sphere(0).Vertices, 12)
	assert.Len(t, Sphere(-1).Vertices, SphereVertexCount(DefaultSphereDepth))
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	m := Sphere(3)
	for i, v := range m.Vertices {
		r := v.XYZ().Length()
		if math32.IsNaN(r) {
			continue
		}
		assert.InDelta(t, 1, r, 1e-5, "vertex %d", i)
		assert.Equal(t, float32(1), v[3])
	}
}

func TestSphereColorsEncodePosition(t *testing.T) {
	m := Sphere(1)
	for i, v := range m.Vertices {
		c := m.Colors[i]
		for ch := 0; ch < 3; ch++ {
			assert.InDelta(t, (1+v[ch])/2, c[ch], 1e-7)
			assert.GreaterOrEqual(t, c[ch], float32(0))
			assert.LessOrEqual(t, c[ch], float32(1))
		}
		assert.Equal(t, float32(1), c[3])
	}
}

func TestSphereUV(t *testing.T) {
	uv := SphereUV(Vec4{0, 0, -1, 1})
	assert.InDelta(t, 0.25, uv[0], 1e-6)
	assert.InDelta(t, 0, uv[1], 1e-6)

	uv = SphereUV(Vec4{0, 1, 0, 1})
	assert.InDelta(t, 0.25, uv[1], 1e-6)

	// Pole singularity: sqrt(1-x²) is zero.
	for _, p := range []Vec4{{1, 0, 0, 1}, {-1, 0, 0, 1}} {
		uv := SphereUV(p)
		assert.True(t, math32.IsNaN(uv[1]), "v at %v = %v", p, uv[1])
	}
}

func TestSphereUVNaNOnlyOnXAxis(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		m := Sphere(depth)
		for i, uv := range m.TexCoords {
			if !math32.IsNaN(uv[0]) && !math32.IsNaN(uv[1]) {
				continue
			}
			x := m.Vertices[i][0]
			assert.Equal(t, float32(1), math32.Abs(x), "depth %d vertex %d at %v", depth, i, m.Vertices[i])
		}
	}

	// Renormalized midpoints near x = ±0.5 stay inside asin's domain.
	m := Sphere(3)
	for i, v := range m.Vertices {
		if math32.Abs(math32.Abs(v[0])-0.5) < 1e-3 && math32.Abs(v[1]) > 0.86 {
			assert.False(t, math32.IsNaN(m.TexCoords[i][1]), "vertex %d at %v", i, v)
		}
	}
}

func TestCylinderCounts(t *testing.T) {
	m := Cylinder(DefaultCylinderOptions())
	want := 36*6 + 2*36*3
	assert.Len(t, m.Vertices, want)
	assert.Len(t, m.Colors, want)
	assert.Len(t, m.TexCoords, want)
	assert.Len(t, m.Normals, want)
	require.NoError(t, m.Validate())

	assert.Len(t, Cylinder(CylinderOptions{Slices: 8, Stacks: 3, NoCaps: true}).Vertices, 8*3*6)
	assert.Equal(t, want, CylinderVertexCount(CylinderOptions{}))
	assert.Len(t, Cylinder(CylinderOptions{}).Vertices, want)
}

func TestCylinderTexCoords(t *testing.T) {
	m := Cylinder(DefaultCylinderOptions())
	u := float32(1) / 36
	// First quad emits a b c a c d; the lower edge's V is one band below zero.
	want := []Vec2{{u, 0}, {0, -1}, {u, -1}, {u, 0}, {u, -1}, {u, 0}}
	for i, uv := range want {
		assert.InDelta(t, uv[0], m.TexCoords[i][0], 1e-6, "u %d", i)
		assert.InDelta(t, uv[1], m.TexCoords[i][1], 1e-6, "v %d", i)
	}
	assert.Equal(t, m.Vertices[0], m.Vertices[3])
	assert.Equal(t, m.Vertices[2], m.Vertices[4])
	assert.InDelta(t, 0.5, m.Vertices[0][1], 1e-6)
	assert.InDelta(t, -0.5, m.Vertices[1][1], 1e-6)
	assert.InDelta(t, 0.5, m.Vertices[5][1], 1e-6)

	side := 36 * 6
	assert.Equal(t, Vec2{0, 1}, m.TexCoords[side])
	assert.Equal(t, Vec2{0, 1}, m.TexCoords[len(m.TexCoords)-1])

	// With two stacks the second band starts at V = 0.5.
	two := Cylinder(CylinderOptions{Stacks: 2, NoCaps: true})
	assert.InDelta(t, 0, two.TexCoords[0][1], 1e-6)
	assert.InDelta(t, -0.5, two.TexCoords[1][1], 1e-6)
	assert.InDelta(t, 0.5, two.TexCoords[36*6][1], 1e-6)
	assert.InDelta(t, 0, two.TexCoords[36*6+1][1], 1e-6)
}

func TestCylinderColorsAndNormals(t *testing.T) {
	m := Cylinder(CylinderOptions{Slices: 12, Stacks: 2})
	side := 12 * 2 * 6
	for i := 0; i < side; i++ {
		assert.Equal(t, Red, m.Colors[i])
		n := m.Normals[i]
		assert.InDelta(t, 1, n.Length(), 1e-5)
		assert.InDelta(t, 0, n[1], 1e-5, "side normals are horizontal")
	}
	for i := side; i < side+12*3; i++ {
		assert.Equal(t, Green, m.Colors[i])
		assert.Equal(t, Vec3{0, 1, 0}, m.Normals[i])
		assert.Equal(t, float32(0.5), m.Vertices[i][1])
	}
	for i := side + 12*3; i < m.Len(); i++ {
		assert.Equal(t, Blue, m.Colors[i])
		assert.Equal(t, Vec3{0, -1, 0}, m.Normals[i])
		assert.Equal(t, float32(-0.5), m.Vertices[i][1])
	}
}

func TestCylinderSidesOnRadius(t *testing.T) {
	m := Cylinder(DefaultCylinderOptions())
	for i := 0; i < 36*6; i++ {
		v := m.Vertices[i]
		assert.InDelta(t, 0.5, math32.Hypot(v[0], v[2]), 1e-5)
		assert.LessOrEqual(t, math32.Abs(v[1]), float32(0.5))
	}
}

func TestFaceNormalStrict(t *testing.T) {
	a := Vec4{0, 0, 0, 1}
	_, err := FaceNormalStrict(a, a, a)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	n := FaceNormal(a, a, a)
	assert.True(t, math32.IsNaN(n[0]))

	n, err = FaceNormalStrict(Vec4{0, 1, 0, 1}, Vec4{0, 0, 0, 1}, Vec4{1, 0, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Length(), 1e-6)
}

func TestValidate(t *testing.T) {
	m := Cube()
	m.Colors = m.Colors[:10]
	assert.ErrorIs(t, m.Validate(), ErrLengthMismatch)

	m, err := Cube().Clone()
	require.NoError(t, err)
	m.Vertices[3][0] = math32.NaN()
	assert.ErrorIs(t, m.Validate(), ErrDegenerateGeometry)

	// NaN texture coordinates at the sphere poles are allowed.
	s, err := Sphere(0).Clone()
	require.NoError(t, err)
	s.TexCoords[0] = Vec2{math32.NaN(), math32.NaN()}
	assert.NoError(t, s.Validate())
}

func TestTriangulate(t *testing.T) {
	fan := Polygon(0, 0, 1, 1, 5, White)
	assert.Equal(t, 7, fan.Len())
	tri := fan.Triangulate()
	assert.Equal(t, Triangles, tri.Topology)
	assert.Len(t, tri.Vertices, 5*3)
	for i := 0; i < tri.Len(); i += 3 {
		assert.Equal(t, fan.Vertices[0], tri.Vertices[i], "fan hub")
	}

	strip := Columns(4, Red)
	assert.Equal(t, 10, strip.Len())
	assert.Equal(t, 8, strip.TriangleCount())
	assert.Len(t, strip.Triangulate().Vertices, 24)
	require.NoError(t, strip.Triangulate().Validate())
}

func TestAppend(t *testing.T) {
	all := Append(Cube(), SolidCube(White), Sphere(1))
	assert.Equal(t, 36+36+SphereVertexCount(1), all.Len())
	assert.Empty(t, all.Normals, "cube has no normals")
	require.NoError(t, all.Validate())

	withNormals := Append(Sphere(0), Cylinder(CylinderOptions{Slices: 4}))
	assert.Len(t, withNormals.Normals, withNormals.Len())
}

func TestStarNotches(t *testing.T) {
	p := Polygon(0.1, 0, 0.25, 1, 5, White)
	notches := StarNotches(p, FlagRed)
	assert.Len(t, notches.Vertices, 5*3)
	for i := 2; i < notches.Len(); i += 3 {
		d := math32.Hypot(notches.Vertices[i][0]-0.1, notches.Vertices[i][1])
		assert.Less(t, d, float32(0.25), "inner notch point lies inside the pentagon")
	}
}

func TestCircle(t *testing.T) {
	c := Circle(0, 0, 0.5, 1, 0, White)
	assert.Equal(t, DefaultCirclePoints+1, c.Len())
	assert.Equal(t, TriangleFan, c.Topology)
	for _, v := range c.Vertices {
		assert.InDelta(t, 0.5, math32.Hypot(v[0], v[1]), 1e-5)
	}
}

func TestBuffers(t *testing.T) {
	strip := Strip([]Vec2{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}, {0.5, -0.5}}, FlagRed)
	b := strip.Buffers()
	assert.Equal(t, 2, b.Triangles)
	assert.Len(t, b.Positions, 3*6)
	assert.Len(t, b.TexCoords, 2*6)
	assert.Len(t, b.Colors, 4*6)
	assert.Nil(t, b.Normals)
	assert.Equal(t, []uint8{227, 10, 23, 255}, b.Colors[:4])
	assert.Equal(t, []float32{-0.5, -0.5, 0}, b.Positions[:3])

	s := Sphere(0).Buffers()
	assert.Equal(t, 4, s.Triangles)
	assert.Len(t, s.Normals, 3*12)
}

func TestChannelClamps(t *testing.T) {
	assert.Equal(t, uint8(0), channel(-1))
	assert.Equal(t, uint8(0), channel(math32.NaN()))
	assert.Equal(t, uint8(255), channel(2))
	assert.Equal(t, uint8(128), channel(0.5))
}
