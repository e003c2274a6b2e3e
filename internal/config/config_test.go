package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/frameloop/gfx"
	"github.com/plus3/frameloop/internal/config"
	"github.com/plus3/frameloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	variant, err := cfg.Variant()
	require.NoError(t, err)
	assert.Equal(t, scene.VariantPlayer, variant)

	assert.Equal(t, scene.DefaultOptions(), cfg.SceneOptions())
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, dir, config.LocalPath, "loop:\n  variant: rect\n")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "rect", cfg.Loop.Variant)

	writeFile(t, dir, filepath.Join(".frameloop", "config.yaml"), "loop:\n  variant: bare\n")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "bare", cfg.Loop.Variant, "user config wins over local")
}

func TestLoadCustomYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
window:
  title: tutorial
loop:
  variant: rect
  tick_rate: 0
scene:
  rect:
    color: "#ff0000"
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tutorial", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "unset fields keep defaults")
	assert.Equal(t, 0, cfg.Loop.TickRate)
	assert.Equal(t, "json", cfg.Logging.Format)

	opts := cfg.SceneOptions()
	assert.Equal(t, gfx.RGB(255, 0, 0), opts.Rect.Color)
	assert.Equal(t, 50, opts.Rect.Width)
}

func TestLoadCustomTOML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.toml", `
[window]
width = 640
height = 480

[loop]
variant = "bare"
headless = true
max_frames = 10
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "bare", cfg.Loop.Variant)
	assert.True(t, cfg.Loop.Headless)
	assert.Equal(t, 10, cfg.Loop.MaxFrames)
	assert.Equal(t, "frameloop", cfg.Window.Title)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "window: [\n")
	_, err = config.Load(bad)
	assert.Error(t, err)

	invalid := writeFile(t, dir, "invalid.yaml", "loop:\n  variant: sprite\n")
	_, err = config.Load(invalid)
	assert.ErrorContains(t, err, "unknown variant")

	color := writeFile(t, dir, "color.yaml", "scene:\n  player:\n    color: mauve\n")
	_, err = config.Load(color)
	assert.ErrorContains(t, err, "invalid color")

	level := writeFile(t, dir, "level.toml", "[logging]\nlevel = \"verbose\"\n")
	_, err = config.Load(level)
	assert.ErrorContains(t, err, "logging")
}

func TestLoadRejectsBrokenSearchPathFile(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"user", filepath.Join(".frameloop", "config.yaml")},
		{"local", config.LocalPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, dir, tt.path, "loop:\n  variant: [rect\n")

			cfg, err := config.Load("")
			assert.ErrorContains(t, err, "failed to parse config")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadTOMLColor(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "color.toml", "[scene.player]\ncolor = \"#00ff0080\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, gfx.Color{G: 255, A: 128}, cfg.Scene.Player.Color)
	assert.Equal(t, 75, cfg.Scene.Player.Width)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0
	cfg.Loop.Variant = "sprite"
	cfg.Loop.TickRate = -1
	cfg.Loop.MaxFrames = -5
	cfg.Logging.Level = "verbose"
	cfg.Scene.Rect.Height = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 7)
}
