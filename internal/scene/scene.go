package scene

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/m4"
	"demo-scenes/internal/mesh"
)

// ErrUnknownDemo is returned by New for a name with no demo behind it.
var ErrUnknownDemo = errors.New("unknown demo")

// ErrBadArgument is returned by commands given an argument they cannot use.
var ErrBadArgument = errors.New("bad argument")

// DrawCall draws one mesh with a model matrix. Texture names a key from Demo.Textures,
// or is empty for vertex colors only.
type DrawCall struct {
	Mesh    string
	Model   m4.Matrix
	Texture string
}

// Demo is one self-contained scene. The host builds the meshes once, then every frame
// runs commands, calls Step, and draws Draws() with Camera().
type Demo interface {
	Name() string
	// Meshes returns every mesh the demo draws, by key. Called once.
	Meshes() map[string]mesh.Mesh
	// Textures maps texture keys to image files. Keys with no file are omitted.
	Textures() map[string]string
	// DepthTest reports whether draws need the depth buffer (3D demos).
	DepthTest() bool
	Step()
	Draws() []DrawCall
	Camera() (view, projection m4.Matrix)
	// Register adds the demo's parameter commands.
	Register(reg *controls.Registry)
	// Keys returns the default key bindings for the demo's commands.
	Keys() []config.Key
	// Status returns short lines describing the current parameters.
	Status() []string
}

var builders = map[string]func(config.Config) Demo{
	"rocket":   func(c config.Config) Demo { return NewRocket(c) },
	"orbit":    func(c config.Config) Demo { return NewOrbit() },
	"flag":     func(c config.Config) Demo { return NewFlag() },
	"triangle": func(c config.Config) Demo { return NewTriangle() },
}

// Names returns the available demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New builds the named demo from cfg.
func New(name string, cfg config.Config) (Demo, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownDemo, name, Names())
	}
	return build(cfg), nil
}

// Keys returns cfg's bindings for d when configured, otherwise d's defaults.
func Keys(d Demo, cfg config.Config) []config.Key {
	if keys, ok := cfg.Keys[d.Name()]; ok {
		return keys
	}
	return d.Keys()
}

// command registers run under name; run receives the positional arguments.
func command(reg *controls.Registry, name, usage string, run func(args []string) error) {
	fs := controls.NewFlagSet(name)
	reg.Register(name, usage, fs, func() error { return run(fs.Args()) })
}

// floatArg parses the command's single positional argument.
func floatArg(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: want one value, got %d", ErrBadArgument, len(args))
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadArgument, args[0])
	}
	return v, nil
}

// choiceArg returns the index of the single positional argument in choices.
func choiceArg(args []string, choices ...string) (int, error) {
	if len(args) == 1 {
		for i, c := range choices {
			if args[0] == c {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: want one of %v", ErrBadArgument, choices)
}

func identityCamera() (m4.Matrix, m4.Matrix) {
	return m4.Identity(), m4.Identity()
}
