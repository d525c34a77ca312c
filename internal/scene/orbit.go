package scene

import (
	"flag"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
)

const (
	// KeyCube is the orbit demo's only mesh; both cubes share it.
	KeyCube = "cube"

	PulseMin  = 0.5
	PulseMax  = 1.5
	PulseStep = 0.01

	DefaultSpinSpeed  = 2.0
	DefaultOrbitSpeed = 1.0
	OrbitRadius       = 0.7
	SecondaryScale    = 0.8
)

// Spinner is a cube that spins about one axis at a time and may pulse or orbit.
// Angles are in degrees.
type Spinner struct {
	Theta   [3]float32
	Axis    int
	Speed   float32
	Stopped bool

	Scale        float32
	growing      bool
	ScaleStopped bool

	OrbitAngle   float32
	OrbitRadius  float32
	OrbitSpeed   float32
	OrbitStopped bool
}

func newSpinner() *Spinner {
	return &Spinner{
		Speed:        DefaultSpinSpeed,
		Scale:        1,
		growing:      true,
		ScaleStopped: true,
		OrbitSpeed:   DefaultOrbitSpeed,
	}
}

// spin advances the angle about the current axis.
func (s *Spinner) spin() {
	if !s.Stopped {
		s.Theta[s.Axis] += s.Speed
	}
}

// pulse moves the scale one step, turning around once it reaches PulseMax or PulseMin.
func (s *Spinner) pulse() {
	if s.growing {
		s.Scale += PulseStep
		if s.Scale >= PulseMax {
			s.growing = false
		}
		return
	}
	s.Scale -= PulseStep
	if s.Scale <= PulseMin {
		s.growing = true
	}
}

// Model scales, rotates about x then y then z, and moves the cube to its orbit position.
func (s *Spinner) Model() m4.Matrix {
	rad := func(d float32) float32 { return d * math32.Pi / 180 }
	rot := m4.Multiply(m4.ZRotation(rad(s.Theta[2])),
		m4.Multiply(m4.YRotation(rad(s.Theta[1])), m4.XRotation(rad(s.Theta[0]))))
	a := rad(s.OrbitAngle)
	move := m4.Translation(s.OrbitRadius*math32.Cos(a), s.OrbitRadius*math32.Sin(a), 0)
	return m4.Multiply(move, m4.Multiply(rot, m4.Scaling(s.Scale, s.Scale, s.Scale)))
}

// Orbit is a spinning, optionally pulsing cube with a smaller cube circling it.
type Orbit struct {
	Center    *Spinner
	Secondary *Spinner
}

// NewOrbit returns the orbit demo in its starting state: both cubes spinning about x,
// the pulse stopped and the secondary cube orbiting.
func NewOrbit() *Orbit {
	center := newSpinner()
	center.OrbitAngle = 90
	second := newSpinner()
	second.Scale = SecondaryScale
	second.OrbitRadius = OrbitRadius
	return &Orbit{Center: center, Secondary: second}
}

func (d *Orbit) Name() string                { return "orbit" }
func (d *Orbit) DepthTest() bool             { return true }
func (d *Orbit) Textures() map[string]string { return nil }

func (d *Orbit) Meshes() map[string]mesh.Mesh {
	return map[string]mesh.Mesh{KeyCube: mesh.Cube()}
}

func (d *Orbit) Step() {
	d.Center.spin()
	if !d.Center.ScaleStopped {
		d.Center.pulse()
	}
	d.Secondary.spin()
	if !d.Secondary.OrbitStopped {
		d.Secondary.OrbitAngle += d.Secondary.OrbitSpeed
	}
}

func (d *Orbit) Draws() []DrawCall {
	return []DrawCall{
		{Mesh: KeyCube, Model: d.Center.Model()},
		{Mesh: KeyCube, Model: d.Secondary.Model()},
	}
}

func (d *Orbit) Camera() (m4.Matrix, m4.Matrix) { return identityCamera() }

// cubeFlag adds -cube to fs and returns a lookup for the chosen spinner.
func (d *Orbit) cubeFlag(fs *flag.FlagSet) func() (*Spinner, error) {
	name := fs.String("cube", "center", "center or secondary")
	return func() (*Spinner, error) {
		switch *name {
		case "center":
			return d.Center, nil
		case "secondary":
			return d.Secondary, nil
		}
		return nil, fmt.Errorf("%w: cube %q", ErrBadArgument, *name)
	}
}

func (d *Orbit) Register(reg *controls.Registry) {
	axisFS := controls.NewFlagSet("axis")
	axisCube := d.cubeFlag(axisFS)
	reg.Register("axis", "axis [-cube center|secondary] x|y|z", axisFS, func() error {
		s, err := axisCube()
		if err != nil {
			return err
		}
		i, err := choiceArg(axisFS.Args(), "x", "y", "z")
		if err != nil {
			return err
		}
		s.Axis = i
		return nil
	})

	spinFS := controls.NewFlagSet("spin")
	spinCube := d.cubeFlag(spinFS)
	reg.Register("spin", "spin [-cube center|secondary]: stop or start spinning", spinFS, func() error {
		s, err := spinCube()
		if err != nil {
			return err
		}
		s.Stopped = !s.Stopped
		return nil
	})

	speedFS := controls.NewFlagSet("speed")
	speedCube := d.cubeFlag(speedFS)
	reg.Register("speed", "speed [-cube center|secondary] <degrees per frame>", speedFS, func() error {
		s, err := speedCube()
		if err != nil {
			return err
		}
		v, err := finiteArg(speedFS.Args())
		if err != nil {
			return err
		}
		s.Speed = float32(v)
		return nil
	})

	command(reg, "pulse", "pulse: start or stop the center cube's pulse", func([]string) error {
		d.Center.ScaleStopped = !d.Center.ScaleStopped
		return nil
	})
	command(reg, "orbit", "orbit: start or stop the secondary cube's orbit", func([]string) error {
		d.Secondary.OrbitStopped = !d.Secondary.OrbitStopped
		return nil
	})
	command(reg, "orbit-speed", "orbit-speed <degrees per frame>", func(args []string) error {
		v, err := finiteArg(args)
		if err != nil {
			return err
		}
		d.Secondary.OrbitSpeed = float32(v)
		return nil
	})
}

// finiteArg is floatArg that also rejects NaN and infinities.
func finiteArg(args []string) (float64, error) {
	v, err := floatArg(args)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadArgument, v)
	}
	return v, nil
}

func (d *Orbit) Keys() []config.Key {
	return []config.Key{
		{Key: "X", Line: "axis x"},
		{Key: "Y", Line: "axis y"},
		{Key: "Z", Line: "axis z"},
		{Key: "ONE", Line: "axis -cube secondary x"},
		{Key: "TWO", Line: "axis -cube secondary y"},
		{Key: "THREE", Line: "axis -cube secondary z"},
		{Key: "SPACE", Line: "spin"},
		{Key: "S", Line: "spin -cube secondary"},
		{Key: "P", Line: "pulse"},
		{Key: "O", Line: "orbit"},
	}
}

func (d *Orbit) Status() []string {
	axes := "xyz"
	c, s := d.Center, d.Secondary
	return []string{
		fmt.Sprintf("center: axis %c speed %.1f scale %.2f", axes[c.Axis], c.Speed, c.Scale),
		fmt.Sprintf("secondary: axis %c speed %.1f orbit %.1f", axes[s.Axis], s.Speed, s.OrbitSpeed),
	}
}
