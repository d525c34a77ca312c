package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.yaml")
	data := `
demo: orbit
window:
  width: 800
sphere:
  depth: 5
rocket:
  thrust: 1200
keys:
  orbit:
    - key: X
      line: axis x
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orbit", cfg.Demo)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 512, cfg.Window.Height)
	assert.Equal(t, 5, cfg.Sphere.Depth)
	assert.Equal(t, 1200.0, cfg.Rocket.Thrust)
	assert.Equal(t, 100.0, cfg.Rocket.Weight)
	assert.True(t, cfg.Cylinder.Caps)
	assert.Equal(t, []Key{{Key: "X", Line: "axis x"}}, cfg.Keys["orbit"])
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0644))
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rocket:\n  weight: 0\n"), 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "demos.yaml")
	cfg := Default()
	cfg.Demo = "flag"
	cfg.Textures.Globe = "assets/earth.png"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
