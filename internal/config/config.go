package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/demos.yaml"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Window holds window and frame-loop settings.
type Window struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Title      string   `yaml:"title"`
	VSync      bool     `yaml:"vsync"`
	Background [4]uint8 `yaml:"background"`
}

// Sphere holds the subdivision depth for the globe. Negative selects the default depth.
type Sphere struct {
	Depth int `yaml:"depth"`
}

// Cylinder holds tessellation settings. Zero or negative counts select defaults.
type Cylinder struct {
	Slices int  `yaml:"slices"`
	Stacks int  `yaml:"stacks"`
	Caps   bool `yaml:"caps"`
}

// Rocket holds the initial rocket parameters.
type Rocket struct {
	Weight  float64 `yaml:"weight"`
	Gravity float64 `yaml:"gravity"`
	Thrust  float64 `yaml:"thrust"`
}

// Textures names image files bound to meshes by key. An empty path leaves the mesh
// untextured. Size > 0 resizes images to Size×Size before upload.
type Textures struct {
	Rocket   string `yaml:"rocket"`
	Platform string `yaml:"platform"`
	Globe    string `yaml:"globe"`
	FlipY    bool   `yaml:"flip_y"`
	Size     int    `yaml:"size"`
}

// Log holds the log file location.
type Log struct {
	Path string `yaml:"path"`
}

// Key binds a named key to a command line. Held keys repeat every frame.
type Key struct {
	Key  string `yaml:"key"`
	Line string `yaml:"line"`
	Held bool   `yaml:"held,omitempty"`
}

// Config is the full demo configuration. Fields not present in the YAML file keep
// their Default() values.
type Config struct {
	Demo     string   `yaml:"demo"`
	Window   Window   `yaml:"window"`
	Sphere   Sphere   `yaml:"sphere"`
	Cylinder Cylinder `yaml:"cylinder"`
	Rocket   Rocket   `yaml:"rocket"`
	Textures Textures `yaml:"textures"`
	Log      Log      `yaml:"log"`
	// Keys overrides the built-in key bindings per demo name.
	Keys map[string][]Key `yaml:"keys,omitempty"`
}

// Default returns the built-in configuration: a 512×512 vsynced window on the rocket demo.
func Default() Config {
	return Config{
		Demo: "rocket",
		Window: Window{
			Width:      512,
			Height:     512,
			Title:      "demos",
			VSync:      true,
			Background: [4]uint8{0, 0, 0, 255},
		},
		Sphere:   Sphere{Depth: 3},
		Cylinder: Cylinder{Slices: 36, Stacks: 1, Caps: true},
		Rocket:   Rocket{Weight: 100, Gravity: 10, Thrust: 1000},
		Textures: Textures{FlipY: true},
		Log:      Log{Path: "logs/demos.txt"},
	}
}

// Load reads the YAML file at path on top of Default(). A missing file is not an
// error; a malformed one returns Default() together with the parse error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports settings no demo can run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Rocket.Weight <= 0 {
		return fmt.Errorf("%w: rocket weight %v", ErrInvalid, c.Rocket.Weight)
	}
	if c.Textures.Size < 0 {
		return fmt.Errorf("%w: texture size %d", ErrInvalid, c.Textures.Size)
	}
	for demo, keys := range c.Keys {
		for _, k := range keys {
			if k.Key == "" || k.Line == "" {
				return fmt.Errorf("%w: empty key binding for %s", ErrInvalid, demo)
			}
		}
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
