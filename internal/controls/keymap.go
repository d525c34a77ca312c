package controls

// Binding ties a key code to a command line. Held bindings fire every frame the key
// is down (sliders); the others fire once per press (buttons).
type Binding struct {
	Key  int32
	Line string
	Held bool
}

// Keymap is an ordered list of bindings. Key codes are opaque here; the host decides
// what they mean and how to poll them.
type Keymap struct {
	bindings []Binding
}

// Bind adds a press binding.
func (k *Keymap) Bind(key int32, line string) {
	k.bindings = append(k.bindings, Binding{Key: key, Line: line})
}

// BindHeld adds a binding that repeats while the key is held.
func (k *Keymap) BindHeld(key int32, line string) {
	k.bindings = append(k.bindings, Binding{Key: key, Line: line, Held: true})
}

// Bindings returns a copy of the bindings in registration order.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, len(k.bindings))
	copy(out, k.bindings)
	return out
}

// Lines returns the command lines triggered this frame, in binding order.
// pressed reports a fresh key press, down reports a key being held.
func (k *Keymap) Lines(pressed, down func(key int32) bool) []string {
	var out []string
	for _, b := range k.bindings {
		if b.Held {
			if down(b.Key) {
				out = append(out, b.Line)
			}
			continue
		}
		if pressed(b.Key) {
			out = append(out, b.Line)
		}
	}
	return out
}

// Apply dispatches every triggered line through reg and returns the errors, if any.
// One failing binding does not stop the others.
func (k *Keymap) Apply(reg *Registry, pressed, down func(key int32) bool) []error {
	var errs []error
	for _, line := range k.Lines(pressed, down) {
		if err := reg.Dispatch(line); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
