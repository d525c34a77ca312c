package scene

import (
	"fmt"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
)

// Flag mesh keys, in draw order.
const (
	KeyField       = "field"
	KeyOuterCircle = "outer-circle"
	KeyInnerCircle = "inner-circle"
	KeyPentagon    = "pentagon"
	KeyNotches     = "notches"
)

const (
	DefaultFlagScale = 0.8
	fieldColumns     = 100
)

// Flag draws a crescent-and-star flag from 2D shapes layered back to front.
type Flag struct {
	Scale float32
}

// NewFlag returns the flag at its default scale.
func NewFlag() *Flag {
	return &Flag{Scale: DefaultFlagScale}
}

func (d *Flag) Name() string                { return "flag" }
func (d *Flag) DepthTest() bool             { return false }
func (d *Flag) Textures() map[string]string { return nil }
func (d *Flag) Step()                       {}

func (d *Flag) Meshes() map[string]mesh.Mesh {
	pentagon := mesh.Polygon(0.1, 0, 0.25, 1, 5, mesh.White)
	return map[string]mesh.Mesh{
		KeyField:       mesh.Columns(fieldColumns, mesh.FlagRed),
		KeyOuterCircle: mesh.Circle(0, 0, 0.5, 1, mesh.DefaultCirclePoints, mesh.White),
		KeyInnerCircle: mesh.Circle(-0.25, 0, 0.4, 1, mesh.DefaultCirclePoints, mesh.FlagRed),
		KeyPentagon:    pentagon,
		KeyNotches:     mesh.StarNotches(pentagon, mesh.FlagRed),
	}
}

func (d *Flag) Draws() []DrawCall {
	model := m4.Scaling(d.Scale, d.Scale, 1)
	keys := []string{KeyField, KeyOuterCircle, KeyInnerCircle, KeyPentagon, KeyNotches}
	out := make([]DrawCall, len(keys))
	for i, k := range keys {
		out[i] = DrawCall{Mesh: k, Model: model}
	}
	return out
}

func (d *Flag) Camera() (m4.Matrix, m4.Matrix) { return identityCamera() }

func (d *Flag) Register(reg *controls.Registry) {
	command(reg, "scale", "scale <factor>: resize the flag", func(args []string) error {
		v, err := finiteArg(args)
		if err != nil {
			return err
		}
		d.Scale = float32(v)
		return nil
	})
}

func (d *Flag) Keys() []config.Key {
	return []config.Key{
		{Key: "ONE", Line: "scale 0.5"},
		{Key: "TWO", Line: "scale 0.8"},
		{Key: "THREE", Line: "scale 1"},
	}
}

func (d *Flag) Status() []string {
	return []string{fmt.Sprintf("scale %.2f", d.Scale)}
}
