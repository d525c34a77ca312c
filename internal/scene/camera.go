package scene

import (
	"github.com/chewxy/math32"

	"demo-scenes/internal/m4"
)

// CameraStep is the angle, in radians, one theta/phi command moves the camera.
const CameraStep = 5 * math32.Pi / 180

// OrbitCamera looks at the origin from a point on a sphere of the given radius and
// projects orthographically onto the unit box between Near and Far.
type OrbitCamera struct {
	Near, Far  float32
	Radius     float32
	Theta, Phi float32
}

// NewOrbitCamera returns the camera at its starting position: radius 0.1, both angles
// five steps up from zero, depth range [-1, 1].
func NewOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Near:   -1,
		Far:    1,
		Radius: 0.1,
		Theta:  5 * CameraStep,
		Phi:    5 * CameraStep,
	}
}

// Eye returns the camera position (r·sin φ, r·sin θ, r·cos φ).
func (c OrbitCamera) Eye() [3]float32 {
	return [3]float32{
		c.Radius * math32.Sin(c.Phi),
		c.Radius * math32.Sin(c.Theta),
		c.Radius * math32.Cos(c.Phi),
	}
}

// View looks from Eye at the origin with +Y up.
func (c OrbitCamera) View() m4.Matrix {
	return m4.LookAt(c.Eye(), [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
}

// Projection is Ortho(-1, 1, -1, 1, Near, Far).
func (c OrbitCamera) Projection() m4.Matrix {
	return m4.Ortho(-1, 1, -1, 1, c.Near, c.Far)
}

// ScaleDepth multiplies both Near and Far by f.
func (c *OrbitCamera) ScaleDepth(f float32) {
	c.Near *= f
	c.Far *= f
}
