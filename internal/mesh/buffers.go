package mesh

// Buffers is a mesh flattened into the tightly packed arrays a GPU upload wants:
// xyz positions, uv pairs, xyz normals and 8-bit RGBA colors.
type Buffers struct {
	Positions []float32
	TexCoords []float32
	Normals   []float32
	Colors    []uint8
	Triangles int
}

// Buffers triangulates m and packs it. The w component is dropped; generators always set it to 1.
// Normals stays nil when m has none.
func (m Mesh) Buffers() Buffers {
	t := m.Triangulate()
	n := t.Len()
	b := Buffers{
		Positions: make([]float32, 0, 3*n),
		TexCoords: make([]float32, 0, 2*n),
		Colors:    make([]uint8, 0, 4*n),
		Triangles: n / 3,
	}
	for i, v := range t.Vertices {
		b.Positions = append(b.Positions, v[0], v[1], v[2])
		var uv Vec2
		if i < len(t.TexCoords) {
			uv = t.TexCoords[i]
		}
		b.TexCoords = append(b.TexCoords, uv[0], uv[1])
		c := White
		if i < len(t.Colors) {
			c = t.Colors[i]
		}
		b.Colors = append(b.Colors, channel(c[0]), channel(c[1]), channel(c[2]), channel(c[3]))
	}
	if len(t.Normals) == n && n > 0 {
		b.Normals = make([]float32, 0, 3*n)
		for _, nv := range t.Normals {
			b.Normals = append(b.Normals, nv[0], nv[1], nv[2])
		}
	}
	return b
}

// channel maps [0, 1] to [0, 255], clamping out-of-range and NaN values.
func channel(f float32) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
