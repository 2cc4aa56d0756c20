package launch

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

const dt = float32(0.1)

type nopInput struct{}

func (nopInput) Enable() error          { return nil }
func (nopInput) Disable()               {}
func (nopInput) Sample() input.Snapshot { return input.Snapshot{} }

var (
	aimAtGround = input.Snapshot{Fire: true, Pointer: mgl32.Vec2{640, 700}}
	aimAtSky    = input.Snapshot{Fire: true, Pointer: mgl32.Vec2{640, 0}}
)

type scene struct {
	ctrl *character.Controller
	obj  game_object.GameObject
}

// newScene stands a capsule on a large floor with a camera at its eye and a new launcher
// plugged in, then ticks once so the body is grounded.
func newScene(t *testing.T, floor physics.Layer, yaw float32, options ...LauncherBuilderOption) *scene {
	t.Helper()
	l, err := NewLauncher(options...)
	if err != nil {
		t.Fatalf("NewLauncher: %v", err)
	}
	return newSceneWith(t, floor, yaw, l)
}

func newSceneWith(t *testing.T, floor physics.Layer, yaw float32, l *Launcher) *scene {
	t.Helper()
	world := physics.NewWorld()
	world.AddBox(mgl32.Vec3{-100, -1, -100}, mgl32.Vec3{100, 0, 100}, floor)

	obj := game_object.NewGameObject(game_object.WithYaw(yaw))
	body := physics.NewCapsule(world, physics.WithObject(obj))
	cam := camera.NewCamera(camera.WithController(body), camera.WithViewport(1280, 720), camera.WithFar(500))

	ctrl, err := character.NewController(body, cam, world, nopInput{}, character.WithExtension(l))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.Tick(dt, input.Snapshot{})
	if !body.IsGrounded() {
		t.Fatal("body should rest on the floor")
	}
	return &scene{ctrl: ctrl, obj: obj}
}

func TestFireAtGroundStartsLaunch(t *testing.T) {
	s := newScene(t, physics.LayerGround, 0)
	z0 := s.obj.Position()[2]

	s.ctrl.Tick(dt, aimAtGround)
	st := s.ctrl.State()
	if !st.Launching {
		t.Fatal("firing at the ground should launch")
	}
	if want := character.ImpulseVelocity(10, -19.62); mgl32.Abs(st.VerticalVelocity-want) > 1e-4 {
		t.Errorf("vy = %v, want %v", st.VerticalVelocity, want)
	}
	if !st.LaunchDirection.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("direction = %v, want backward +Z", st.LaunchDirection)
	}
	// The launch moves the body on the firing tick too.
	if dz := s.obj.Position()[2] - z0; mgl32.Abs(dz-1) > 1e-4 {
		t.Errorf("dz on fire tick = %v, want 1", dz)
	}
}

func TestLaunchEndsWhenVerticalSpeedDropsBelowExitSpeed(t *testing.T) {
	// An impulse of exactly five gravity steps puts vy at zero on the fifth tick after firing.
	const steps = 5
	v0 := steps * 19.62 * dt
	cfg := DefaultConfig()
	cfg.RocketHeight = v0 * v0 / (2 * 19.62)
	s := newScene(t, physics.LayerGround, 0, WithConfig(cfg))
	s.ctrl.Tick(dt, aimAtGround)
	if !s.ctrl.State().Launching {
		t.Fatal("expected a launch")
	}

	for tick := 1; tick <= steps; tick++ {
		z := s.obj.Position()[2]
		s.ctrl.Tick(dt, input.Snapshot{})
		st := s.ctrl.State()
		if dz := s.obj.Position()[2] - z; mgl32.Abs(dz-1) > 1e-4 {
			t.Fatalf("tick %d: dz = %v, want 1", tick, dz)
		}
		below := mgl32.Abs(st.VerticalVelocity) < cfg.ExitSpeed
		if tick < steps && (below || !st.Launching) {
			t.Fatalf("tick %d: vy = %v launching = %t, want still launching above the threshold", tick, st.VerticalVelocity, st.Launching)
		}
		if tick == steps && (!below || st.Launching) {
			t.Fatalf("tick %d: vy = %v launching = %t, want the launch to end below the threshold", tick, st.VerticalVelocity, st.Launching)
		}
	}
}

func TestLaunchContinuesWhenSpeedStepsOverThreshold(t *testing.T) {
	// 19.81 m/s loses 1.962 m/s per tick: 0.189 after ten ticks, -1.773 after eleven.
	s := newScene(t, physics.LayerGround, 0)
	s.ctrl.Tick(dt, aimAtGround)

	for tick := 1; tick <= 30; tick++ {
		z := s.obj.Position()[2]
		s.ctrl.Tick(dt, input.Snapshot{})
		st := s.ctrl.State()
		if !st.Launching {
			t.Fatalf("tick %d: launch ended at vy = %v", tick, st.VerticalVelocity)
		}
		if st.Mode != character.ModeLaunch {
			t.Fatalf("tick %d: mode = %v, want launch", tick, st.Mode)
		}
		if dz := s.obj.Position()[2] - z; mgl32.Abs(dz-1) > 1e-4 {
			t.Fatalf("tick %d: dz = %v, want 1", tick, dz)
		}
		if tick == 12 {
			// Past the apex and airborne: firing again is ignored.
			if st.Grounded {
				t.Fatal("expected to be airborne after the apex")
			}
			s.ctrl.Tick(dt, aimAtGround)
			if v := s.ctrl.State().VerticalVelocity; v > 0 {
				t.Fatalf("fire while airborne re-launched, vy = %v", v)
			}
		}
	}
}

func TestLauncherSharedBetweenControllers(t *testing.T) {
	l, err := NewLauncher()
	if err != nil {
		t.Fatal(err)
	}
	a := newSceneWith(t, physics.LayerGround, 0, l)
	b := newSceneWith(t, physics.LayerGround, 0, l)

	a.ctrl.Tick(dt, aimAtGround)
	b.ctrl.Tick(dt, input.Snapshot{})
	if !a.ctrl.State().Launching {
		t.Error("a should be launching")
	}
	if b.ctrl.State().Launching {
		t.Error("b must not inherit a's launch")
	}
}

func TestExitSpeedEndsLaunch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExitSpeed = 100
	s := newScene(t, physics.LayerGround, 0, WithConfig(cfg))
	z0 := s.obj.Position()[2]

	s.ctrl.Tick(dt, aimAtGround)
	if s.ctrl.State().Launching {
		t.Error("vertical speed below the exit speed should end the launch at once")
	}
	if dz := s.obj.Position()[2] - z0; mgl32.Abs(dz-1) > 1e-4 {
		t.Errorf("dz = %v, want a single launch step of 1", dz)
	}
}

func TestFireMisses(t *testing.T) {
	tests := []struct {
		name  string
		floor physics.Layer
		snap  input.Snapshot
		opts  []LauncherBuilderOption
		want  bool
	}{
		{"aim at sky", physics.LayerGround, aimAtSky, nil, false},
		{"floor not on ground layer", physics.LayerDefault, aimAtGround, nil, false},
		{"custom ground mask", physics.LayerDefault, aimAtGround, []LauncherBuilderOption{WithGroundMask(physics.LayerDefault.Mask())}, true},
		{"no fire", physics.LayerGround, input.Snapshot{Pointer: aimAtGround.Pointer}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t, tt.floor, 0, tt.opts...)
			s.ctrl.Tick(dt, tt.snap)
			if got := s.ctrl.State().Launching; got != tt.want {
				t.Errorf("launching = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestLaunchDirectionFollowsYaw(t *testing.T) {
	s := newScene(t, physics.LayerGround, 90, WithDebug(true))
	x0 := s.obj.Position()[0]
	s.ctrl.Tick(dt, aimAtGround)

	st := s.ctrl.State()
	if !st.Launching {
		t.Fatal("expected a launch")
	}
	if !st.LaunchDirection.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("direction = %v, want -X (behind a body facing +X)", st.LaunchDirection)
	}
	if dx := s.obj.Position()[0] - x0; mgl32.Abs(dx+1) > 1e-4 {
		t.Errorf("dx = %v, want -1", dx)
	}
}

func TestNewLauncherValidates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative height", func(c *Config) { c.RocketHeight = -1 }},
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"zero exit speed", func(c *Config) { c.ExitSpeed = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewLauncher(WithConfig(cfg)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	l, err := NewLauncher()
	if err != nil {
		t.Fatal(err)
	}
	if l.Name() != "launch" {
		t.Errorf("Name = %q", l.Name())
	}
}
