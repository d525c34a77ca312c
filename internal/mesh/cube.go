package mesh

// CubeHalfExtent is the distance from the cube's center to each face.
const CubeHalfExtent = 0.1

var cubeCorners = [8]Vec4{
	{-CubeHalfExtent, -CubeHalfExtent, CubeHalfExtent, 1},
	{-CubeHalfExtent, CubeHalfExtent, CubeHalfExtent, 1},
	{CubeHalfExtent, CubeHalfExtent, CubeHalfExtent, 1},
	{CubeHalfExtent, -CubeHalfExtent, CubeHalfExtent, 1},
	{-CubeHalfExtent, -CubeHalfExtent, -CubeHalfExtent, 1},
	{-CubeHalfExtent, CubeHalfExtent, -CubeHalfExtent, 1},
	{CubeHalfExtent, CubeHalfExtent, -CubeHalfExtent, 1},
	{CubeHalfExtent, -CubeHalfExtent, -CubeHalfExtent, 1},
}

var cubeCornerColors = [8]Color{Black, Red, Yellow, Green, Blue, Magenta, Cyan, White}

// cubeFaces lists each face by four corner indices, wound so the first corner picks
// the face color.
var cubeFaces = [6][4]int{
	{1, 0, 3, 2},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
	{6, 5, 1, 2},
	{4, 5, 6, 7},
	{5, 4, 0, 1},
}

// quadUVs matches the [a,b,c,a,c,d] split of every face.
var quadUVs = [6]Vec2{{0, 0}, {0, 1}, {1, 0}, {0, 1}, {1, 1}, {1, 0}}

// Cube returns the 36-vertex color cube centered at the origin. Every face is flat
// colored with the color of its first corner.
func Cube() Mesh {
	m := Mesh{
		Vertices:  make([]Vec4, 0, 36),
		Colors:    make([]Color, 0, 36),
		TexCoords: make([]Vec2, 0, 36),
	}
	for _, f := range cubeFaces {
		m = appendQuad(m, f[0], f[1], f[2], f[3])
	}
	return m
}

// SolidCube returns the cube geometry with every vertex colored c (the platform).
func SolidCube(c Color) Mesh {
	m := Cube()
	m.fill(c)
	return m
}

func appendQuad(m Mesh, a, b, c, d int) Mesh {
	indices := [6]int{a, b, c, a, c, d}
	for i, idx := range indices {
		m.Vertices = append(m.Vertices, cubeCorners[idx])
		m.Colors = append(m.Colors, cubeCornerColors[a])
		m.TexCoords = append(m.TexCoords, quadUVs[i%len(quadUVs)])
	}
	return m
}
