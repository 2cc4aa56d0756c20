// Package config loads the host configuration: defaults, then a YAML file, then OXY_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/character/launch"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. OXY_CHARACTER_WALK_SPEED.
const EnvPrefix = "OXY_"

// DefaultTitle is used when the configured window title is empty.
const DefaultTitle = "oxy-fps"

// ErrInvalid is wrapped by every error returned from Config.Validate.
var ErrInvalid = errors.New("invalid config")

// Config is the full host configuration, one section per subsystem.
type Config struct {
	Window    WindowConfig     `yaml:"window" envPrefix:"WINDOW_"`
	Engine    EngineConfig     `yaml:"engine" envPrefix:"ENGINE_"`
	Character character.Config `yaml:"character" envPrefix:"CHARACTER_"`
	Launch    launch.Config    `yaml:"launch" envPrefix:"LAUNCH_"`
	Input     InputConfig      `yaml:"input" envPrefix:"INPUT_"`
}

// WindowConfig sizes and titles the window and sets whether the cursor starts captured.
type WindowConfig struct {
	Title         string `yaml:"title" env:"TITLE"`
	Width         int    `yaml:"width" env:"WIDTH"`
	Height        int    `yaml:"height" env:"HEIGHT"`
	CaptureCursor bool   `yaml:"capture_cursor" env:"CAPTURE_CURSOR"`
}

// EngineConfig holds the loop rates and the renderer and profiler switches.
type EngineConfig struct {
	TickRate   float64 `yaml:"tick_rate" env:"TICK_RATE"`
	FrameLimit float64 `yaml:"frame_limit" env:"FRAME_LIMIT"`
	// PresentMode is "vsync" or "uncapped".
	PresentMode      string `yaml:"present_mode" env:"PRESENT_MODE"`
	Profiling        bool   `yaml:"profiling" env:"PROFILING"`
	SoftwareRenderer bool   `yaml:"software_renderer" env:"SOFTWARE_RENDERER"`
	TickWorkers      int    `yaml:"tick_workers" env:"TICK_WORKERS"`
	LaunchDebug      bool   `yaml:"launch_debug" env:"LAUNCH_DEBUG"`
}

// InputConfig holds mouse-look scaling and key binding overrides.
type InputConfig struct {
	MouseScale float32 `yaml:"mouse_scale" env:"MOUSE_SCALE"`
	// Bindings maps action names to key names; actions left out keep their default keys.
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         DefaultTitle,
			Width:         1280,
			Height:        720,
			CaptureCursor: true,
		},
		Engine: EngineConfig{
			TickRate:    60,
			PresentMode: "vsync",
			TickWorkers: 1,
		},
		Character: character.DefaultConfig(),
		Launch:    launch.DefaultConfig(),
		Input: InputConfig{
			MouseScale: 0.1,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates it. Fields the file leaves out keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, DefaultTitle)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and reports the first problem.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive", ErrInvalid)
	case c.Engine.FrameLimit < 0:
		return fmt.Errorf("%w: frame limit must not be negative", ErrInvalid)
	case c.Engine.PresentMode != "vsync" && c.Engine.PresentMode != "uncapped":
		return fmt.Errorf("%w: present mode must be vsync or uncapped, got %q", ErrInvalid, c.Engine.PresentMode)
	case c.Engine.TickWorkers < 1:
		return fmt.Errorf("%w: tick workers must be at least 1", ErrInvalid)
	case c.Input.MouseScale < 0:
		return fmt.Errorf("%w: mouse scale must not be negative", ErrInvalid)
	}
	if err := c.Character.Validate(); err != nil {
		return fmt.Errorf("%w: character: %w", ErrInvalid, err)
	}
	if err := c.Launch.Validate(); err != nil {
		return fmt.Errorf("%w: launch: %w", ErrInvalid, err)
	}
	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Bindings resolves the configured key names.
func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Input.Bindings)
}
