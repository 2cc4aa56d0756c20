package scene

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
)

// ErrDuplicateController is returned by Add when a controller with the same ID is present.
var ErrDuplicateController = errors.New("scene: duplicate controller id")

// Scene manages a static collision world, a primary camera and a set of character
// controllers. Scenes can be hot-swapped via the Active flag; activating a scene acquires
// the input bindings of every controller and deactivating it releases them.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive activates or deactivates the scene and all of its controllers.
	//
	// Parameters:
	//   - active: true to activate
	//
	// Returns:
	//   - error: the first controller activation error; controllers already activated stay active
	SetActive(active bool) error

	// Camera returns the scene's primary camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's primary camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// World returns the scene's collision world.
	World() *physics.World

	// Add registers a controller. If the scene is active the controller is activated too.
	//
	// Parameters:
	//   - c: the controller to add
	//
	// Returns:
	//   - error: ErrDuplicateController, or the controller's activation error
	Add(c *character.Controller) error

	// Remove deactivates and unregisters the controller with the given ID.
	//
	// Parameters:
	//   - id: the controller's ID
	Remove(id string)

	// Controller returns the controller with the given ID, or nil.
	//
	// Parameters:
	//   - id: the controller's ID
	//
	// Returns:
	//   - *character.Controller: the controller or nil
	Controller(id string) *character.Controller

	// Primary returns the first controller still registered, or nil for an empty scene.
	Primary() *character.Controller

	// Count returns the number of registered controllers.
	Count() int

	// Tick updates every controller by dt, then refreshes the camera matrices.
	// Controllers are independent, so more than one is ticked in parallel on the scene's
	// worker pool; Tick returns once all of them have finished.
	//
	// Parameters:
	//   - dt: elapsed time since the last tick in seconds
	Tick(dt float32)

	// Close deactivates the scene and every controller in it.
	Close()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	world *physics.World
	cam   camera.Camera

	// order keeps controllers in insertion order so the primary is stable.
	order       []string
	controllers map[string]*character.Controller

	// tickPool runs controller updates. Workers persist across ticks and idle-exit
	// after a second without work.
	tickPool    worker.DynamicWorkerPool
	tickWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates an inactive scene around a world and a camera. Both are required and
// NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - world: the collision world (must not be nil)
//   - cam: the primary camera (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, world *physics.World, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if world == nil {
		panic("scene: NewScene requires a non-nil World")
	}
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:          &sync.RWMutex{},
		name:        name,
		world:       world,
		cam:         cam,
		controllers: make(map[string]*character.Controller),
		tickWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithTickWorkers can override the default.
	s.tickPool = worker.NewDynamicWorkerPool(s.tickWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active == s.active {
		return nil
	}
	if !active {
		s.deactivateAll()
		s.active = false
		log.Printf("[Scene] %s deactivated", s.name)
		return nil
	}
	for _, id := range s.order {
		if err := s.controllers[id].Activate(); err != nil {
			return fmt.Errorf("scene %s: %w", s.name, err)
		}
	}
	s.active = true
	log.Printf("[Scene] %s activated with %d controllers", s.name, len(s.order))
	return nil
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) World() *physics.World {
	return s.world
}

func (s *scene) Add(c *character.Controller) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.ID()
	if _, ok := s.controllers[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateController, id)
	}
	if s.active {
		if err := c.Activate(); err != nil {
			return err
		}
	}
	s.controllers[id] = c
	s.order = append(s.order, id)
	return nil
}

func (s *scene) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.controllers[id]
	if !ok {
		return
	}
	c.Deactivate()
	delete(s.controllers, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Controller(id string) *character.Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controllers[id]
}

func (s *scene) Primary() *character.Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil
	}
	return s.controllers[s.order[0]]
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.controllers)
}

func (s *scene) Tick(dt float32) {
	s.mu.RLock()
	controllers := make([]*character.Controller, 0, len(s.order))
	for _, id := range s.order {
		controllers = append(controllers, s.controllers[id])
	}
	cam := s.cam
	s.mu.RUnlock()

	switch len(controllers) {
	case 0:
	case 1:
		// A single controller runs inline.
		controllers[0].Update(dt)
	default:
		// A WaitGroup provides the per-tick barrier since pool.Wait() blocks until
		// workers idle-exit, which is unsuitable for frame-rate workloads.
		var wg sync.WaitGroup
		for i, c := range controllers {
			wg.Add(1)
			cCap := c
			s.tickPool.SubmitTask(worker.Task{
				ID: i,
				Do: func() (any, error) {
					defer wg.Done()
					cCap.Update(dt)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	if cam != nil {
		cam.Update()
	}
}

func (s *scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deactivateAll()
	s.active = false
	log.Printf("[Scene] %s closed", s.name)
}

// deactivateAll releases the input bindings of every controller.
// Caller must hold the write lock.
func (s *scene) deactivateAll() {
	for _, id := range s.order {
		s.controllers[id].Deactivate()
	}
}
