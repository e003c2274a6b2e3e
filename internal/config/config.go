// Package config loads frameloop settings from YAML or TOML files.
package config

import (
	"fmt"

	"github.com/plus3/frameloop/gfx"
	"github.com/plus3/frameloop/scene"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Loop    LoopConfig    `yaml:"loop" toml:"loop"`
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type LoopConfig struct {
	Variant   string `yaml:"variant" toml:"variant"`
	TickRate  int    `yaml:"tick_rate" toml:"tick_rate"` // 0 = unbounded
	Headless  bool   `yaml:"headless" toml:"headless"`
	MaxFrames int    `yaml:"max_frames" toml:"max_frames"` // headless only, 0 = no limit
	DebugUI   bool   `yaml:"debug_ui" toml:"debug_ui"`
}

type SceneConfig struct {
	Rect   BoxConfig `yaml:"rect" toml:"rect"`
	Player BoxConfig `yaml:"player" toml:"player"`
}

type BoxConfig struct {
	Width  int       `yaml:"width" toml:"width"`
	Height int       `yaml:"height" toml:"height"`
	Color  gfx.Color `yaml:"color" toml:"color"` // name, #rrggbb or #rrggbbaa
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "frameloop",
		},
		Loop: LoopConfig{
			Variant:  string(scene.VariantPlayer),
			TickRate: 60,
		},
		Scene: SceneConfig{
			Rect:   BoxConfig{Width: 50, Height: 50, Color: gfx.White},
			Player: BoxConfig{Width: 75, Height: 25, Color: gfx.White},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, verr := scene.ParseVariant(c.Loop.Variant); verr != nil {
		err = multierr.Append(err, fmt.Errorf("loop: %w", verr))
	}
	if c.Loop.TickRate < 0 {
		err = multierr.Append(err, fmt.Errorf("loop: negative tick_rate %d", c.Loop.TickRate))
	}
	if c.Loop.MaxFrames < 0 {
		err = multierr.Append(err, fmt.Errorf("loop: negative max_frames %d", c.Loop.MaxFrames))
	}
	err = multierr.Append(err, c.Scene.Rect.validate("scene.rect"))
	err = multierr.Append(err, c.Scene.Player.validate("scene.player"))

	if _, lerr := zapcore.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	return err
}

func (b BoxConfig) validate(field string) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%s: invalid size %dx%d", field, b.Width, b.Height)
	}
	return nil
}

func (b BoxConfig) spec() scene.BoxSpec {
	return scene.BoxSpec{Width: b.Width, Height: b.Height, Color: b.Color}
}

// Variant returns the configured loop variant.
func (c *Config) Variant() (scene.Variant, error) {
	return scene.ParseVariant(c.Loop.Variant)
}

// SceneOptions converts the scene section for scene.Build.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{Rect: c.Scene.Rect.spec(), Player: c.Scene.Player.spec()}
}
