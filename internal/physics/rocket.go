package physics

import "math"

// Default rocket parameters: at full default thrust the rocket exactly balances gravity.
const (
	DefaultWeight  = 100.0
	DefaultGravity = 10.0
	DefaultThrust  = 1000.0
	// TimeStep is how far the rocket's clock advances per frame. The motion model
	// integrates from t = 1, so displacement grows very slowly with this step.
	TimeStep = 1e-8
)

// Rocket is a thrust-driven body. Tilt is in degrees (positive leans left); thrust is
// split along the tilt into a vertical and a horizontal component.
// Values are float64 because the per-frame clock step is below float32 resolution at t = 1.
type Rocket struct {
	Position [3]float64
	Tilt     float64
	Thrust   float64
	Weight   float64
	Gravity  float64
	Time     float64
}

// NewRocket returns a rocket at the origin with default weight, gravity and thrust.
// weight <= 0 falls back to DefaultWeight.
func NewRocket(weight float64) *Rocket {
	if weight <= 0 {
		weight = DefaultWeight
	}
	return &Rocket{
		Weight:  weight,
		Gravity: DefaultGravity,
		Thrust:  DefaultThrust,
		Time:    1,
	}
}

// Displacement returns the (dx, dy) the rocket moves this frame:
//
//	ay = thrust·cos(tilt) − gravity·weight,  dy = ½·ay·t²
//	ax = thrust·sin(tilt) / weight,          dx = −½·ax·t²
func (r *Rocket) Displacement() (dx, dy float64) {
	rad := r.Tilt * math.Pi / 180
	thrustY := r.Thrust * math.Cos(rad)
	thrustX := r.Thrust * math.Sin(rad)

	ay := thrustY - r.Gravity*r.Weight
	dy = 0.5 * ay * r.Time * r.Time

	ax := thrustX / r.Weight
	dx = -0.5 * ax * r.Time * r.Time
	return dx, dy
}

// Step advances the rocket by one frame.
func (r *Rocket) Step() {
	dx, dy := r.Displacement()
	r.Time += TimeStep
	r.Position[0] += dx
	r.Position[1] += dy
}

// SetThrust sets the thrust. NaN is ignored so a bad slider value keeps the last thrust.
func (r *Rocket) SetThrust(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	r.Thrust = v
	return true
}
