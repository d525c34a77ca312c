package scene

import (
	"fmt"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
	"demo-scenes/internal/physics"
)

// Mesh and texture keys used by the rocket demo.
const (
	KeyRocket   = "rocket"
	KeyPlatform = "platform"
	KeyGlobe    = "globe"
	KeyCylinder = "cylinder"
)

const (
	// YawStep is how much one yaw command changes the tilt.
	YawStep = 0.01
	// ThrottleStep is how much one throttle command changes the thrust.
	ThrottleStep = 10
	// tiltSpin exaggerates the drawn rotation relative to the tilt used for thrust.
	tiltSpin = 5
)

// Rocket is the final scene: a textured rocket cube hovering over a platform with a
// globe and a cylinder in the corner, seen through an orbiting orthographic camera.
type Rocket struct {
	rocket   *physics.Rocket
	world    *physics.World
	cam      OrbitCamera
	initial  config.Rocket
	sphere   int
	cylinder mesh.CylinderOptions
	textures config.Textures
}

// NewRocket builds the rocket demo from cfg.
func NewRocket(cfg config.Config) *Rocket {
	d := &Rocket{
		cam:     NewOrbitCamera(),
		initial: cfg.Rocket,
		sphere:  cfg.Sphere.Depth,
		cylinder: mesh.CylinderOptions{
			Slices: cfg.Cylinder.Slices,
			Stacks: cfg.Cylinder.Stacks,
			NoCaps: !cfg.Cylinder.Caps,
		},
		textures: cfg.Textures,
	}
	d.reset()
	return d
}

func (d *Rocket) reset() {
	d.rocket = physics.NewRocket(d.initial.Weight)
	d.rocket.Gravity = d.initial.Gravity
	d.rocket.Thrust = d.initial.Thrust
	d.world = physics.NewWorld()
	d.world.AddBody(d.rocket)
}

func (d *Rocket) Name() string    { return "rocket" }
func (d *Rocket) DepthTest() bool { return true }

// Body exposes the simulated rocket.
func (d *Rocket) Body() *physics.Rocket { return d.rocket }

// Cam exposes the camera parameters.
func (d *Rocket) Cam() *OrbitCamera { return &d.cam }

func (d *Rocket) Meshes() map[string]mesh.Mesh {
	return map[string]mesh.Mesh{
		KeyRocket:   mesh.Cube(),
		KeyPlatform: mesh.SolidCube(mesh.White),
		KeyGlobe:    mesh.Sphere(d.sphere),
		KeyCylinder: mesh.Cylinder(d.cylinder),
	}
}

func (d *Rocket) Textures() map[string]string {
	out := make(map[string]string)
	for key, path := range map[string]string{
		KeyRocket:   d.textures.Rocket,
		KeyPlatform: d.textures.Platform,
		KeyGlobe:    d.textures.Globe,
	} {
		if path != "" {
			out[key] = path
		}
	}
	return out
}

func (d *Rocket) Step() {
	d.world.Step()
}

// RocketModel places the rocket: rotate by the exaggerated tilt, then translate.
func RocketModel(r *physics.Rocket) m4.Matrix {
	p := r.Position
	return m4.Multiply(
		m4.Translation(float32(p[0]), float32(p[1]), float32(p[2])),
		m4.ZRotation(float32(r.Tilt)*tiltSpin),
	)
}

func (d *Rocket) Draws() []DrawCall {
	return []DrawCall{
		{Mesh: KeyRocket, Model: RocketModel(d.rocket), Texture: KeyRocket},
		{Mesh: KeyPlatform, Model: m4.Scale(m4.Translation(0, -1, 0), 1.5, 0.2, 1.5), Texture: KeyPlatform},
		{Mesh: KeyGlobe, Model: m4.Translate(m4.Scaling(0.2, 0.2, 0.2), 4, 4, 0), Texture: KeyGlobe},
		{Mesh: KeyCylinder, Model: m4.Translate(m4.Scaling(0.1, 0.1, 0.1), 1, 1, 0)},
	}
}

func (d *Rocket) Camera() (m4.Matrix, m4.Matrix) {
	return d.cam.View(), d.cam.Projection()
}

func (d *Rocket) Register(reg *controls.Registry) {
	command(reg, "thrust", "thrust <value>: set thrust", func(args []string) error {
		v, err := floatArg(args)
		if err != nil {
			return err
		}
		if !d.rocket.SetThrust(v) {
			return fmt.Errorf("%w: thrust must be a number", ErrBadArgument)
		}
		return nil
	})
	command(reg, "throttle", "throttle up|down: change thrust by 10", func(args []string) error {
		i, err := choiceArg(args, "up", "down")
		if err != nil {
			return err
		}
		d.rocket.Thrust += []float64{ThrottleStep, -ThrottleStep}[i]
		return nil
	})
	command(reg, "yaw", "yaw inc|dec: lean left or right", func(args []string) error {
		i, err := choiceArg(args, "inc", "dec")
		if err != nil {
			return err
		}
		d.rocket.Tilt += []float64{YawStep, -YawStep}[i]
		return nil
	})
	command(reg, "depth", "depth up|down: scale near and far by 1.1 or 0.9", func(args []string) error {
		i, err := choiceArg(args, "up", "down")
		if err != nil {
			return err
		}
		d.cam.ScaleDepth([]float32{1.1, 0.9}[i])
		return nil
	})
	command(reg, "radius", "radius up|down: scale camera radius by 1.1 or 0.9", func(args []string) error {
		i, err := choiceArg(args, "up", "down")
		if err != nil {
			return err
		}
		d.cam.Radius *= []float32{1.1, 0.9}[i]
		return nil
	})
	command(reg, "theta", "theta up|down: move camera elevation by 5 degrees", func(args []string) error {
		i, err := choiceArg(args, "up", "down")
		if err != nil {
			return err
		}
		d.cam.Theta += []float32{CameraStep, -CameraStep}[i]
		return nil
	})
	command(reg, "phi", "phi up|down: move camera azimuth by 5 degrees", func(args []string) error {
		i, err := choiceArg(args, "up", "down")
		if err != nil {
			return err
		}
		d.cam.Phi += []float32{CameraStep, -CameraStep}[i]
		return nil
	})
	command(reg, "pause", "pause: freeze or resume the simulation", func([]string) error {
		d.world.Paused = !d.world.Paused
		return nil
	})
	command(reg, "reset", "reset: put the rocket back on the pad", func([]string) error {
		d.reset()
		return nil
	})
}

func (d *Rocket) Keys() []config.Key {
	return []config.Key{
		{Key: "UP", Line: "throttle up", Held: true},
		{Key: "DOWN", Line: "throttle down", Held: true},
		{Key: "LEFT", Line: "yaw inc"},
		{Key: "RIGHT", Line: "yaw dec"},
		{Key: "Q", Line: "depth up"},
		{Key: "E", Line: "depth down"},
		{Key: "Z", Line: "radius up"},
		{Key: "X", Line: "radius down"},
		{Key: "W", Line: "theta up"},
		{Key: "S", Line: "theta down"},
		{Key: "D", Line: "phi up"},
		{Key: "A", Line: "phi down"},
		{Key: "P", Line: "pause"},
		{Key: "R", Line: "reset"},
	}
}

func (d *Rocket) Status() []string {
	r := d.rocket
	return []string{
		fmt.Sprintf("thrust %.0f  tilt %.2f", r.Thrust, r.Tilt),
		fmt.Sprintf("pos (%.3f, %.3f)", r.Position[0], r.Position[1]),
		fmt.Sprintf("near %.2f far %.2f radius %.3f", d.cam.Near, d.cam.Far, d.cam.Radius),
	}
}
