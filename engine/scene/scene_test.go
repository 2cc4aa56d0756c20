package scene

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

type fakeInput struct {
	err     error
	enabled bool
}

func (f *fakeInput) Enable() error {
	if f.err != nil {
		return f.err
	}
	f.enabled = true
	return nil
}

func (f *fakeInput) Disable()               { f.enabled = false }
func (f *fakeInput) Sample() input.Snapshot { return input.Snapshot{} }

// newPlayer drops a capsule at height y in world.
func newPlayer(t *testing.T, world *physics.World, id string, y float32) (*character.Controller, *fakeInput) {
	t.Helper()
	body := physics.NewCapsule(world, physics.WithObject(game_object.NewGameObject(game_object.WithPosition(0, y, 0))))
	in := &fakeInput{}
	c, err := character.NewController(body, camera.NewCamera(camera.WithController(body)), world, in, character.WithID(id))
	if err != nil {
		t.Fatal(err)
	}
	return c, in
}

func newTestScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	return NewScene("test", physics.NewWorld(), camera.NewCamera(), options...)
}

func TestNewScenePanicsOnNil(t *testing.T) {
	for name, fn := range map[string]func(){
		"world":  func() { NewScene("x", nil, camera.NewCamera()) },
		"camera": func() { NewScene("x", physics.NewWorld(), nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			fn()
		})
	}
}

func TestAddRemove(t *testing.T) {
	s := newTestScene(t)
	a, _ := newPlayer(t, s.World(), "a", 0)
	b, _ := newPlayer(t, s.World(), "b", 0)
	dup, _ := newPlayer(t, s.World(), "a", 0)

	if err := s.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(dup); !errors.Is(err, ErrDuplicateController) {
		t.Errorf("err = %v, want ErrDuplicateController", err)
	}
	if s.Count() != 2 || s.Primary() != a || s.Controller("b") != b {
		t.Fatalf("count %d primary %v", s.Count(), s.Primary())
	}

	s.Remove("a")
	s.Remove("missing")
	if s.Count() != 1 || s.Primary() != b || s.Controller("a") != nil {
		t.Errorf("after remove: count %d primary %v", s.Count(), s.Primary())
	}
}

func TestSetActiveTogglesControllers(t *testing.T) {
	world := physics.NewWorld()
	a, inA := newPlayer(t, world, "a", 0)
	b, inB := newPlayer(t, world, "b", 0)
	s := NewScene("arena", world, camera.NewCamera(), WithControllers(a, b, a, nil))
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}

	if err := s.SetActive(true); err != nil {
		t.Fatal(err)
	}
	if !s.Active() || !inA.enabled || !inB.enabled {
		t.Fatal("activating the scene should enable every controller's input")
	}

	late, inLate := newPlayer(t, world, "late", 0)
	if err := s.Add(late); err != nil {
		t.Fatal(err)
	}
	if !inLate.enabled {
		t.Error("controllers added to an active scene should activate")
	}

	s.Remove("late")
	if inLate.enabled {
		t.Error("removed controllers should release input")
	}

	if err := s.SetActive(false); err != nil {
		t.Fatal(err)
	}
	if s.Active() || inA.enabled || inB.enabled {
		t.Error("deactivating the scene should release input")
	}
}

func TestSetActiveError(t *testing.T) {
	world := physics.NewWorld()
	a, in := newPlayer(t, world, "a", 0)
	in.err = errors.New("no window")
	s := NewScene("arena", world, camera.NewCamera(), WithControllers(a))
	if err := s.SetActive(true); !errors.Is(err, in.err) {
		t.Errorf("err = %v, want the input error", err)
	}
	if s.Active() {
		t.Error("scene should stay inactive after a failed activation")
	}
}

func TestTickUpdatesEveryController(t *testing.T) {
	for _, n := range []int{1, 4} {
		world := physics.NewWorld()
		var controllers []*character.Controller
		for i := range n {
			c, _ := newPlayer(t, world, string(rune('a'+i)), 10)
			controllers = append(controllers, c)
		}
		s := NewScene("arena", world, camera.NewCamera(), WithControllers(controllers...), WithTickWorkers(2))
		if err := s.SetActive(true); err != nil {
			t.Fatal(err)
		}

		s.Tick(0.1)
		s.Tick(0.1)
		for _, c := range controllers {
			if vy := c.State().VerticalVelocity; mgl32.Abs(vy-2*c.Config().Gravity*0.1) > 1e-4 {
				t.Errorf("n=%d %s: vy = %v after two ticks", n, c.ID(), vy)
			}
		}
		s.Close()
	}
}

func TestTickRefreshesCamera(t *testing.T) {
	ctrl := camera.NewFixedController(0, 0, 0, 0)
	cam := camera.NewCamera(camera.WithController(ctrl))
	s := NewScene("arena", physics.NewWorld(), cam)
	before := cam.ViewMatrix()
	ctrl.SetPosition(3, 0, 0)
	s.Tick(0.1)
	if cam.ViewMatrix() == before {
		t.Error("Tick should update the camera matrices")
	}
}

func TestCloseDeactivates(t *testing.T) {
	world := physics.NewWorld()
	a, in := newPlayer(t, world, "a", 0)
	s := NewScene("arena", world, camera.NewCamera(), WithControllers(a))
	if err := s.SetActive(true); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if s.Active() || in.enabled || a.Active() {
		t.Error("Close should deactivate the scene and its controllers")
	}
}

func TestNameAndCamera(t *testing.T) {
	s := newTestScene(t)
	s.SetName("lobby")
	if s.Name() != "lobby" {
		t.Errorf("Name = %q", s.Name())
	}
	cam := camera.NewCamera(camera.WithFov(90))
	s.SetCamera(cam)
	if s.Camera() != cam {
		t.Error("SetCamera ignored")
	}
}
