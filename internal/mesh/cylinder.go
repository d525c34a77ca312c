package mesh

import (
	"github.com/chewxy/math32"
)

const (
	cylinderTop    = 0.5
	cylinderBottom = -0.5
	cylinderRadius = 0.5
)

// CylinderOptions controls cylinder tessellation. The zero value is the default
// cylinder: zero Slices or Stacks select 36 and 1, and both caps are drawn.
type CylinderOptions struct {
	Slices int
	Stacks int
	NoCaps bool
}

// DefaultCylinderOptions returns 36 slices, 1 stack, caps on.
func DefaultCylinderOptions() CylinderOptions {
	return CylinderOptions{Slices: 36, Stacks: 1}
}

func (o CylinderOptions) normalized() CylinderOptions {
	d := DefaultCylinderOptions()
	if o.Slices <= 0 {
		o.Slices = d.Slices
	}
	if o.Stacks <= 0 {
		o.Stacks = d.Stacks
	}
	return o
}

// CylinderVertexCount returns the number of vertices Cylinder(opts) emits.
func CylinderVertexCount(opts CylinderOptions) int {
	opts = opts.normalized()
	n := opts.Stacks * opts.Slices * 6
	if !opts.NoCaps {
		n += 2 * opts.Slices * 3
	}
	return n
}

// Cylinder returns a Y-aligned cylinder of radius 0.5 spanning y ∈ [-0.5, 0.5].
// Sides are red with one flat normal per quad; the top cap is green, the bottom blue.
// Normals are not guarded against degenerate faces; use Validate or FaceNormalStrict
// when the options come from untrusted input.
func Cylinder(opts CylinderOptions) Mesh {
	opts = opts.normalized()
	slices, stacks := opts.Slices, opts.Stacks
	n := CylinderVertexCount(opts)
	m := Mesh{
		Vertices:  make([]Vec4, 0, n),
		Colors:    make([]Color, 0, n),
		TexCoords: make([]Vec2, 0, n),
		Normals:   make([]Vec3, 0, n),
	}
	emit := func(p Vec4, c Color, nrm Vec3, uv Vec2) {
		m.Vertices = append(m.Vertices, Vec4{p[0], p[1], p[2], 1})
		m.Colors = append(m.Colors, c)
		m.Normals = append(m.Normals, nrm)
		m.TexCoords = append(m.TexCoords, uv)
	}

	height := float32(cylinderTop - cylinderBottom)
	fs, fst := float32(slices), float32(stacks)
	for j := 0; j < stacks; j++ {
		top := cylinderBottom + float32(j+1)*height/fst
		bottom := cylinderBottom + float32(j)*height/fst
		topRing := ring(slices, top)
		bottomRing := ring(slices, bottom)

		// Side V follows the stack index, so the lower edge of a band sits one band
		// below its upper edge (negative for the first band).
		vUpper := float32(j) * height / fst
		vLower := float32(j-1) * height / fst
		for i := 0; i < slices; i++ {
			a := topRing[i]
			d := topRing[i+1]
			b := bottomRing[i]
			c := bottomRing[i+1]
			nrm := FaceNormal(a, b, c)
			uNext := float32(i+1) / fs
			uThis := float32(i) / fs

			emit(a, Red, nrm, Vec2{uNext, vUpper})
			emit(b, Red, nrm, Vec2{uThis, vLower})
			emit(c, Red, nrm, Vec2{uNext, vLower})
			emit(a, Red, nrm, Vec2{uNext, vUpper})
			emit(c, Red, nrm, Vec2{uNext, vLower})
			emit(d, Red, nrm, Vec2{uNext, vUpper})
		}
	}

	if opts.NoCaps {
		return m
	}
	topRing := ring(slices, cylinderTop)
	bottomRing := ring(slices, cylinderBottom)
	capUV := Vec2{0, 1}
	topCenter := Vec4{0, cylinderTop, 0, 1}
	for i := 0; i < slices; i++ {
		emit(topCenter, Green, Vec3{0, 1, 0}, capUV)
		emit(topRing[i], Green, Vec3{0, 1, 0}, capUV)
		emit(topRing[i+1], Green, Vec3{0, 1, 0}, capUV)
	}
	bottomCenter := Vec4{0, cylinderBottom, 0, 1}
	for i := 0; i < slices; i++ {
		emit(bottomCenter, Blue, Vec3{0, -1, 0}, capUV)
		emit(bottomRing[i], Blue, Vec3{0, -1, 0}, capUV)
		emit(bottomRing[i+1], Blue, Vec3{0, -1, 0}, capUV)
	}
	return m
}

// ring returns slices+1 points on the circle at height y; the last repeats the first
// so quads and fans can always use i and i+1.
func ring(slices int, y float32) []Vec4 {
	pts := make([]Vec4, 0, slices+1)
	for i := 0; i < slices; i++ {
		theta := 2 * float32(i) * math32.Pi / float32(slices)
		pts = append(pts, Vec4{cylinderRadius * math32.Sin(theta), y, cylinderRadius * math32.Cos(theta), 1})
	}
	return append(pts, Vec4{0, y, cylinderRadius, 1})
}
