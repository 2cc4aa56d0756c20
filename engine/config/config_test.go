package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fps.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "partial file keeps defaults",
			yaml: "character:\n  walk_speed: 12\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Character.WalkSpeed != 12 {
					t.Errorf("walk speed = %v, want 12", cfg.Character.WalkSpeed)
				}
				if cfg.Character.RunSpeed != 15 || cfg.Window.Width != 1280 || cfg.Launch.RocketHeight != 10 {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name: "full sections",
			yaml: `
window:
  title: ""
  width: 800
  height: 600
engine:
  tick_rate: 120
  present_mode: uncapped
  tick_workers: 4
character:
  run_policy: toggle
launch:
  speed: 20
input:
  mouse_scale: 0.25
  bindings:
    jump: ["f"]
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Window.Title != DefaultTitle {
					t.Errorf("empty title = %q, want %q", cfg.Window.Title, DefaultTitle)
				}
				if cfg.Engine.TickRate != 120 || cfg.Engine.PresentMode != "uncapped" || cfg.Engine.TickWorkers != 4 {
					t.Errorf("engine = %+v", cfg.Engine)
				}
				if cfg.Character.RunPolicy != character.RunPolicyToggle || cfg.Launch.Speed != 20 {
					t.Errorf("character %+v launch %+v", cfg.Character, cfg.Launch)
				}
				b, err := cfg.Bindings()
				if err != nil {
					t.Fatal(err)
				}
				if len(b[input.ActionJump]) != 1 || b[input.ActionJump][0] != common.KeyF {
					t.Errorf("jump binding = %v", b[input.ActionJump])
				}
			},
		},
		{name: "bad yaml", yaml: "window: ["},
		{name: "invalid gravity", yaml: "character:\n  gravity: 9.8\n", wantErr: character.ErrInvalidConfig},
		{name: "invalid present mode", yaml: "engine:\n  present_mode: mailbox\n", wantErr: ErrInvalid},
		{name: "unknown binding", yaml: "input:\n  bindings:\n    dance: [\"x\"]\n", wantErr: input.ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.yaml))
			if tt.check == nil {
				if err == nil {
					t.Fatalf("expected an error, got %+v", cfg)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg.Window != want.Window || cfg.Engine != want.Engine || cfg.Character != want.Character || cfg.Launch != want.Launch {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "character:\n  walk_speed: 12\nwindow:\n  title: from-file\n")
	t.Setenv("OXY_CHARACTER_WALK_SPEED", "8")
	t.Setenv("OXY_WINDOW_TITLE", "from-env")
	t.Setenv("OXY_ENGINE_PROFILING", "true")
	t.Setenv("OXY_LAUNCH_EXIT_SPEED", "0.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Character.WalkSpeed != 8 {
		t.Errorf("walk speed = %v, want env value 8", cfg.Character.WalkSpeed)
	}
	if cfg.Window.Title != "from-env" || !cfg.Engine.Profiling || cfg.Launch.ExitSpeed != 0.5 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("OXY_ENGINE_TICK_RATE", "fast")
	if _, err := Load(""); err == nil {
		t.Error("expected a parse error for a non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Engine.TickRate = 0 }},
		{"negative frame limit", func(c *Config) { c.Engine.FrameLimit = -1 }},
		{"no tick workers", func(c *Config) { c.Engine.TickWorkers = 0 }},
		{"negative mouse scale", func(c *Config) { c.Input.MouseScale = -1 }},
		{"bad launch", func(c *Config) { c.Launch.ExitSpeed = 0 }},
		{"bad key", func(c *Config) { c.Input.Bindings = map[string][]string{"fire": {"trigger"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
