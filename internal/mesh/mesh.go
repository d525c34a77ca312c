package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
)

// Vec2 is a texture coordinate (u, v).
type Vec2 [2]float32

// Vec3 is a direction, used for normals.
type Vec3 [3]float32

// Vec4 is a homogeneous position (x, y, z, w). Generators always set w = 1.
type Vec4 [4]float32

// Color is RGBA with every channel in [0, 1].
type Color [4]float32

var (
	Black   = Color{0, 0, 0, 1}
	Red     = Color{1, 0, 0, 1}
	Yellow  = Color{1, 1, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Magenta = Color{1, 0, 1, 1}
	Cyan    = Color{0, 1, 1, 1}
	White   = Color{1, 1, 1, 1}

	// FlagRed and FlagBlue are the flag exercise's palette.
	FlagRed  = Color{227.0 / 255.0, 10.0 / 255.0, 23.0 / 255.0, 1}
	FlagBlue = Color{0, 10.0 / 255.0, 200.0 / 255.0, 1}
)

// Topology says how consecutive vertices form triangles.
type Topology int

const (
	Triangles Topology = iota
	TriangleFan
	TriangleStrip
)

// ErrDegenerateGeometry is returned by the strict helpers when a face has no area
// or a vector to normalize has (near) zero length.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// ErrLengthMismatch is returned by Validate when the parallel arrays differ in length.
var ErrLengthMismatch = errors.New("mesh arrays differ in length")

// Mesh is a flat vertex list: index i across Vertices, Colors, TexCoords (and Normals
// when present) describes one vertex. There is no index buffer; every triangle carries
// its own copies. Meshes are built once and treated as immutable afterwards.
type Mesh struct {
	Vertices  []Vec4
	Colors    []Color
	TexCoords []Vec2
	Normals   []Vec3 // empty for generators that do not produce normals
	Topology  Topology
}

// Len returns the number of vertices.
func (m Mesh) Len() int {
	return len(m.Vertices)
}

// TriangleCount returns how many triangles the mesh draws for its topology.
func (m Mesh) TriangleCount() int {
	n := len(m.Vertices)
	switch m.Topology {
	case TriangleFan, TriangleStrip:
		if n < 3 {
			return 0
		}
		return n - 2
	default:
		return n / 3
	}
}

// Clone returns a deep copy whose slices can be modified without touching m.
func (m Mesh) Clone() (Mesh, error) {
	var out Mesh
	if err := copier.CopyWithOption(&out, &m, copier.Option{DeepCopy: true}); err != nil {
		return Mesh{}, fmt.Errorf("mesh: clone: %w", err)
	}
	return out, nil
}

// Recolor returns a copy of m with every vertex set to c.
func (m Mesh) Recolor(c Color) (Mesh, error) {
	out, err := m.Clone()
	if err != nil {
		return Mesh{}, err
	}
	out.fill(c)
	return out, nil
}

func (m Mesh) fill(c Color) {
	for i := range m.Colors {
		m.Colors[i] = c
	}
}

// Append concatenates triangle-list meshes in order, the way the demos pack several
// shapes into one vertex buffer. Normals are kept only if every part has them.
func Append(parts ...Mesh) Mesh {
	var out Mesh
	withNormals := len(parts) > 0
	for _, p := range parts {
		if len(p.Normals) == 0 {
			withNormals = false
		}
	}
	for _, p := range parts {
		p = p.Triangulate()
		out.Vertices = append(out.Vertices, p.Vertices...)
		out.Colors = append(out.Colors, p.Colors...)
		out.TexCoords = append(out.TexCoords, p.TexCoords...)
		if withNormals {
			out.Normals = append(out.Normals, p.Normals...)
		}
	}
	return out
}

// Triangulate expands a fan or strip into an equivalent triangle list. Triangle lists
// are returned unchanged.
func (m Mesh) Triangulate() Mesh {
	if m.Topology == Triangles {
		return m
	}
	n := m.TriangleCount()
	out := Mesh{Topology: Triangles}
	pick := func(i int) {
		out.Vertices = append(out.Vertices, m.Vertices[i])
		if i < len(m.Colors) {
			out.Colors = append(out.Colors, m.Colors[i])
		}
		if i < len(m.TexCoords) {
			out.TexCoords = append(out.TexCoords, m.TexCoords[i])
		}
		if i < len(m.Normals) {
			out.Normals = append(out.Normals, m.Normals[i])
		}
	}
	for t := 0; t < n; t++ {
		switch m.Topology {
		case TriangleFan:
			pick(0)
			pick(t + 1)
			pick(t + 2)
		case TriangleStrip:
			// Alternate winding so every triangle faces the same way.
			if t%2 == 0 {
				pick(t)
				pick(t + 1)
			} else {
				pick(t + 1)
				pick(t)
			}
			pick(t + 2)
		}
	}
	return out
}

// Validate checks the hardened invariants: parallel arrays of equal length and finite
// positions and normals. Texture coordinates are not checked because the sphere's pole
// projection produces NaN at x = ±1.
func (m Mesh) Validate() error {
	n := len(m.Vertices)
	if len(m.Colors) != n || len(m.TexCoords) != n || (len(m.Normals) != 0 && len(m.Normals) != n) {
		return fmt.Errorf("%w: %d vertices, %d colors, %d texcoords, %d normals",
			ErrLengthMismatch, n, len(m.Colors), len(m.TexCoords), len(m.Normals))
	}
	for i, v := range m.Vertices {
		if !finite(v[0]) || !finite(v[1]) || !finite(v[2]) || !finite(v[3]) {
			return fmt.Errorf("vertex %d: %w: position %v", i, ErrDegenerateGeometry, v)
		}
	}
	for i, nv := range m.Normals {
		if !finite(nv[0]) || !finite(nv[1]) || !finite(nv[2]) {
			return fmt.Errorf("vertex %d: %w: normal %v", i, ErrDegenerateGeometry, nv)
		}
	}
	return nil
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
