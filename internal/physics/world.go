package physics

// Stepper is anything that advances by one frame.
type Stepper interface {
	Step()
}

// World holds bodies and steps them together once per frame, in insertion order.
type World struct {
	Paused bool
	Bodies []Stepper
	frames uint64
}

// NewWorld returns an empty, running world.
func NewWorld() *World {
	return &World{}
}

// AddBody appends a body. Order is preserved.
func (w *World) AddBody(b Stepper) {
	w.Bodies = append(w.Bodies, b)
}

// Step advances every body by one frame unless the world is paused.
func (w *World) Step() {
	if w.Paused {
		return
	}
	for _, b := range w.Bodies {
		b.Step()
	}
	w.frames++
}

// Frames returns how many frames have been stepped.
func (w *World) Frames() uint64 {
	return w.frames
}
