package mesh

import (
	"github.com/chewxy/math32"
)

// DefaultCirclePoints is the rim resolution used by the flag's circles.
const DefaultCirclePoints = 360

// Flat builds a single-colored mesh in the z = 0 plane from 2D points.
func Flat(points []Vec2, c Color, topo Topology) Mesh {
	m := Mesh{
		Vertices:  make([]Vec4, 0, len(points)),
		Colors:    make([]Color, 0, len(points)),
		TexCoords: make([]Vec2, 0, len(points)),
		Topology:  topo,
	}
	for _, p := range points {
		m.Vertices = append(m.Vertices, Vec4{p[0], p[1], 0, 1})
		m.Colors = append(m.Colors, c)
		m.TexCoords = append(m.TexCoords, Vec2{(p[0] + 1) / 2, (p[1] + 1) / 2})
	}
	return m
}

// Circle returns a rim of points+1 vertices (the last closes the loop) around (cx, cy).
// aspect scales X so the circle stays round on a non-square viewport (height/width).
// Drawn as a fan the first rim vertex acts as the hub, which fills a convex disc.
func Circle(cx, cy, radius, aspect float32, points int, c Color) Mesh {
	if points <= 0 {
		points = DefaultCirclePoints
	}
	pts := make([]Vec2, 0, points+1)
	for i := 0; i <= points; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(points)
		pts = append(pts, Vec2{cx + radius*aspect*math32.Cos(angle), cy + radius*math32.Sin(angle)})
	}
	return Flat(pts, c, TriangleFan)
}

// Polygon returns a regular polygon as a fan: the center followed by sides+1 rim
// vertices starting one step past angle zero, so the rim closes on itself.
func Polygon(cx, cy, radius, aspect float32, sides int, c Color) Mesh {
	pts := []Vec2{{cx, cy}}
	for i := 1; i < sides+2; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(sides)
		pts = append(pts, Vec2{cx + radius*aspect*math32.Cos(angle), cy + radius*math32.Sin(angle)})
	}
	return Flat(pts, c, TriangleFan)
}

// StarNotches cuts a star out of a polygon fan: for every rim edge it returns the
// triangle formed by the edge and the point halfway between the edge midpoint and the
// center. Drawn over the polygon in the background color they leave a star.
func StarNotches(polygon Mesh, c Color) Mesh {
	if polygon.Len() < 3 {
		return Flat(nil, c, Triangles)
	}
	center := polygon.Vertices[0]
	var pts []Vec2
	for i := 1; i+1 < polygon.Len(); i++ {
		p1 := polygon.Vertices[i]
		p2 := polygon.Vertices[i+1]
		mx, my := (p1[0]+p2[0])/2, (p1[1]+p2[1])/2
		px, py := (mx+center[0])/2, (my+center[1])/2
		pts = append(pts, Vec2{p1[0], p1[1]}, Vec2{p2[0], p2[1]}, Vec2{px, py})
	}
	return Flat(pts, c, Triangles)
}

// Strip returns points drawn as a triangle strip.
func Strip(points []Vec2, c Color) Mesh {
	return Flat(points, c, TriangleStrip)
}

// Columns returns a strip of full-height columns covering x ∈ [-1, 1] in count steps.
func Columns(count int, c Color) Mesh {
	if count <= 0 {
		count = 1
	}
	pts := make([]Vec2, 0, 2*(count+1))
	for k := 0; k <= count; k++ {
		x := -1 + 2*float32(k)/float32(count)
		pts = append(pts, Vec2{x, 1}, Vec2{x, -1})
	}
	return Flat(pts, c, TriangleStrip)
}
