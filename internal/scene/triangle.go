package scene

import (
	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
)

// KeySquare is the triangle demo's mesh.
const KeySquare = "square"

// squarePoints trace the square back to its start; as a strip the closing point adds
// a zero-area triangle.
var squarePoints = []mesh.Vec2{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}}

// Triangle is the first exercise: a red square drawn as one triangle strip.
type Triangle struct{}

func NewTriangle() *Triangle { return &Triangle{} }

func (d *Triangle) Name() string                   { return "triangle" }
func (d *Triangle) DepthTest() bool                { return false }
func (d *Triangle) Textures() map[string]string    { return nil }
func (d *Triangle) Step()                          {}
func (d *Triangle) Camera() (m4.Matrix, m4.Matrix) { return identityCamera() }
func (d *Triangle) Register(*controls.Registry)    {}
func (d *Triangle) Keys() []config.Key             { return nil }
func (d *Triangle) Status() []string               { return nil }

func (d *Triangle) Meshes() map[string]mesh.Mesh {
	return map[string]mesh.Mesh{KeySquare: mesh.Strip(squarePoints, mesh.Red)}
}

func (d *Triangle) Draws() []DrawCall {
	return []DrawCall{{Mesh: KeySquare, Model: m4.Identity()}}
}
