package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRocketHoversAtDefaults(t *testing.T) {
	r := NewRocket(0)
	assert.Equal(t, DefaultWeight, r.Weight)
	for i := 0; i < 100; i++ {
		r.Step()
	}
	assert.InDelta(t, 0, r.Position[0], 1e-12)
	assert.InDelta(t, 0, r.Position[1], 1e-12)
	assert.InDelta(t, 1+100*TimeStep, r.Time, 1e-12)
}

func TestRocketClimbsWithExtraThrust(t *testing.T) {
	r := NewRocket(100)
	r.Thrust = 1200
	dx, dy := r.Displacement()
	assert.InDelta(t, 0, dx, 1e-12)
	assert.InDelta(t, 100, dy, 1e-9) // ½·(1200−1000)·1²
	r.Step()
	assert.InDelta(t, 100, r.Position[1], 1e-9)
}

func TestRocketTiltDriftsSideways(t *testing.T) {
	r := NewRocket(100)
	r.Tilt = 90
	dx, dy := r.Displacement()
	assert.InDelta(t, -5, dx, 1e-9) // −½·(1000/100)
	assert.InDelta(t, -1000*0.5, dy, 1e-9)
}

func TestSetThrustIgnoresNaN(t *testing.T) {
	r := NewRocket(100)
	assert.False(t, r.SetThrust(math.NaN()))
	assert.Equal(t, DefaultThrust, r.Thrust)
	assert.True(t, r.SetThrust(10))
	assert.Equal(t, 10.0, r.Thrust)
}

type counter struct{ n int }

func (c *counter) Step() { c.n++ }

func TestWorld(t *testing.T) {
	w := NewWorld()
	a, b := &counter{}, &counter{}
	w.AddBody(a)
	w.AddBody(b)
	w.Step()
	w.Paused = true
	w.Step()
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
	assert.Equal(t, uint64(1), w.Frames())
}
