package m4

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const tol = float32(1e-5)

func assertPoint(t *testing.T, want, got [4]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], float64(tol), "component %d of %v", i, got)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m := Multiply(Translation(1, 2, 3), Multiply(XRotation(0.7), Scaling(2, 3, 4)))
	assert.True(t, Equal(m, Multiply(Identity(), m), tol))
	assert.True(t, Equal(m, Multiply(m, Identity()), tol))
}

func TestTranslationTimesUnitScaling(t *testing.T) {
	tr := Translation(0.5, -1, 2)
	assert.True(t, Equal(tr, Multiply(tr, Scaling(1, 1, 1)), tol))
}

func TestMultiplyOrder(t *testing.T) {
	origin := [4]float32{0, 0, 0, 1}
	x := [4]float32{1, 0, 0, 1}

	// Scaled then moved: the translation is scaled too.
	assertPoint(t, [4]float32{0.8, 0.8, 0, 1}, Translate(Scaling(0.2, 0.2, 0.2), 4, 4, 0).Apply(origin))

	// Rotate about the model origin, then move.
	rotThenMove := Multiply(Translation(1, 0, 0), ZRotation(math32.Pi/2))
	assertPoint(t, [4]float32{1, 1, 0, 1}, rotThenMove.Apply(x))

	// The other order moves first and rotates the offset.
	moveThenRot := Multiply(ZRotation(math32.Pi/2), Translation(1, 0, 0))
	assertPoint(t, [4]float32{0, 2, 0, 1}, moveThenRot.Apply(x))

	assert.False(t, Equal(rotThenMove, moveThenRot, tol))
}

func TestConvenienceWrappers(t *testing.T) {
	m := Multiply(Translation(1, 2, 3), YRotation(0.3))
	assert.Equal(t, Multiply(m, Translation(4, 5, 6)), Translate(m, 4, 5, 6))
	assert.Equal(t, Multiply(m, XRotation(0.2)), XRotate(m, 0.2))
	assert.Equal(t, Multiply(m, YRotation(0.2)), YRotate(m, 0.2))
	assert.Equal(t, Multiply(m, ZRotation(0.2)), ZRotate(m, 0.2))
	assert.Equal(t, Multiply(m, Scaling(2, 2, 2)), Scale(m, 2, 2, 2))
}

func TestRotationsAreOrthogonal(t *testing.T) {
	for _, theta := range []float32{0, 0.1, 1, math32.Pi / 3, -2.5, 7} {
		for name, rot := range map[string]func(float32) Matrix{
			"x": XRotation,
			"y": YRotation,
			"z": ZRotation,
		} {
			r := rot(theta)
			assert.True(t, Equal(Identity(), Multiply(r, Transpose(r)), tol), "%s(%v)", name, theta)
		}
	}
}

func TestRotationSigns(t *testing.T) {
	quarter := math32.Pi / 2
	assertPoint(t, [4]float32{0, 0, 1, 1}, XRotation(quarter).Apply([4]float32{0, 1, 0, 1}))
	assertPoint(t, [4]float32{1, 0, 0, 1}, YRotation(quarter).Apply([4]float32{0, 0, 1, 1}))
	assertPoint(t, [4]float32{0, 1, 0, 1}, ZRotation(quarter).Apply([4]float32{1, 0, 0, 1}))
}

func TestNaNPropagates(t *testing.T) {
	m := Translation(float32(math.NaN()), 0, 0)
	out := Multiply(m, Identity())
	assert.True(t, math32.IsNaN(out[12]))
}

func TestOrthoMapsBoxToClipCube(t *testing.T) {
	o := Ortho(-2, 2, -1, 1, -1, 1)
	assertPoint(t, [4]float32{1, 1, 0, 1}, o.Apply([4]float32{2, 1, 0, 1}))
	assertPoint(t, [4]float32{-1, -1, 0, 1}, o.Apply([4]float32{-2, -1, 0, 1}))
}

func TestProjectionFlipsY(t *testing.T) {
	p := Projection(200, 100, 400)
	assertPoint(t, [4]float32{-1, 1, 0, 1}, p.Apply([4]float32{0, 0, 0, 1}))
	assertPoint(t, [4]float32{1, -1, 0, 1}, p.Apply([4]float32{200, 100, 0, 1}))
}

func TestLookAt(t *testing.T) {
	v := LookAt([3]float32{0, 0, 1}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
	assertPoint(t, [4]float32{0, 0, 0, 1}, v.Apply([4]float32{0, 0, 1, 1}))
	assertPoint(t, [4]float32{0, 0, -1, 1}, v.Apply([4]float32{0, 0, 0, 1}))

	assert.Equal(t, Identity(), LookAt([3]float32{1, 1, 1}, [3]float32{1, 1, 1}, [3]float32{0, 1, 0}))
}
