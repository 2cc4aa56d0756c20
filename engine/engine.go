package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
	"github.com/Carmen-Shannon/oxy-fps/engine/scene"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
)

// defaultClearColor is used when no clear color function is configured.
var defaultClearColor = renderer.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}

// engine implements the Engine interface.
type engine struct {
	mu     *sync.RWMutex // guards scenes
	scenes map[int]scene.Scene

	window     window.Window
	renderer   renderer.Renderer
	clearColor func() renderer.Color

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate   time.Duration
	renderFrameLimit time.Duration // 0 = uncapped
	rateUpdates      chan time.Duration

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	running  atomic.Bool
	loops    sync.WaitGroup
	quit     chan struct{}
	quitOnce sync.Once
}

// Engine drives the simulation. Active scenes are ticked at a fixed rate on one goroutine
// while another clears and presents frames; the caller's goroutine pumps window messages.
type Engine interface {
	// Window returns the window, or nil for a headless engine.
	Window() window.Window

	// Renderer returns the renderer, or nil for a headless engine.
	Renderer() renderer.Renderer

	// Profiler returns the profiler tick costs are recorded into.
	Profiler() *profiler.Profiler

	// EnableProfiler turns on the periodic profiler report.
	EnableProfiler()

	// DisableProfiler turns off the periodic profiler report.
	DisableProfiler()

	// SetTickRate changes how many simulation ticks run per second. A running engine picks up
	// the new rate on its next tick.
	//
	// Parameters:
	//   - fps: ticks per second; values <= 0 select 60
	SetTickRate(fps float64)

	// SetTickCallback registers a function run after the active scenes on every tick.
	//
	// Parameters:
	//   - callback: receives the tick's delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers a function run once per rendered frame.
	//
	// Parameters:
	//   - callback: receives the frame's delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit caps the render loop.
	//
	// Parameters:
	//   - fps: maximum frames per second, 0 for uncapped
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene under a z-index key, replacing any scene already there.
	// Active scenes tick in ascending key order.
	//
	// Parameters:
	//   - key: the z-index
	//   - s: the scene
	AddScene(key int, s scene.Scene)

	// RemoveScene drops the scene registered under key.
	RemoveScene(key int)

	// Scene returns the scene registered under key, or nil.
	Scene(key int) scene.Scene

	// Scenes returns a snapshot of the registry; changing it does not affect the engine.
	Scenes() map[int]scene.Scene

	// Run blocks until the window closes or Quit is called, then waits for both loops to
	// stop and closes every registered scene.
	Run()

	// Quit stops the engine. Calling it more than once is harmless.
	Quit()
}

// NewEngine creates an engine from the given options. Without WithWindow and WithRenderer the
// engine runs headless: scenes still tick and Run returns on Quit.
//
// Parameters:
//   - options: functional options for the engine
//
// Returns:
//   - Engine: the engine, not yet running
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:             &sync.RWMutex{},
		scenes:         make(map[int]scene.Scene),
		profiler:       profiler.NewProfiler(),
		engineTickRate: tickInterval(0),
		rateUpdates:    make(chan time.Duration, 1),
		quit:           make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}
	return e
}

// tickInterval converts a rate to a tick period, falling back to 60 Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// frameInterval converts a frame cap to a minimum frame period; 0 means uncapped.
func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// resize keeps the surface and every scene camera in step with the framebuffer.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	for _, s := range e.Scenes() {
		if c := s.Camera(); c != nil {
			c.SetViewport(width, height)
		}
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() {
	e.running.Store(true)
	e.loops.Add(2)
	go e.tickLoop()
	go e.renderLoop()

	if e.window != nil {
		// Blocks on the calling (OS-locked) thread until the window closes.
		e.window.ProcessMessages()
		e.Quit()
	}
	<-e.quit
	e.loops.Wait()

	for _, s := range e.Scenes() {
		s.Close()
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quit)
	})
}

// tickLoop ticks the active scenes, then the tick callback, at the configured rate.
func (e *engine) tickLoop() {
	defer e.loops.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-e.quit:
			return
		case rate := <-e.rateUpdates:
			ticker.Reset(rate)
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			start := time.Now()
			for _, s := range e.activeScenes() {
				s.Tick(dt)
			}
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profiler != nil {
				e.profiler.RecordTick(time.Since(start))
			}
		}
	}
}

// renderLoop presents frames until quit. A headless engine with no frame cap is paced at the
// tick rate so the loop does not spin.
func (e *engine) renderLoop() {
	defer e.loops.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render loop recovered from panic: %v", r)
			e.Quit()
		}
	}()

	pace := e.renderFrameLimit
	if pace == 0 && e.renderer == nil {
		pace = e.engineTickRate
	}
	last := time.Now()

	for {
		select {
		case <-e.quit:
			return
		default:
		}

		start := time.Now()
		dt := float32(start.Sub(last).Seconds())
		last = start

		e.drawFrame()
		if e.renderCallback != nil {
			e.renderCallback(dt)
		}
		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}

		if pace > 0 {
			if wait := pace - time.Since(start); wait > 0 {
				time.Sleep(wait)
			}
		}
	}
}

// drawFrame clears the surface to the current clear color when a scene is active.
func (e *engine) drawFrame() {
	if e.renderer == nil || len(e.activeScenes()) == 0 {
		return
	}
	color := defaultClearColor
	if e.clearColor != nil {
		color = e.clearColor()
	}
	if err := e.renderer.BeginFrame(color); err != nil {
		return
	}
	e.renderer.EndFrame()
	e.renderer.Present()
}

// activeScenes returns the active scenes in ascending z-index order.
func (e *engine) activeScenes() []scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var active []scene.Scene
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

func (e *engine) SetTickRate(fps float64) {
	rate := tickInterval(fps)
	if !e.running.Load() {
		e.engineTickRate = rate
		return
	}
	// Keep only the newest pending rate.
	select {
	case <-e.rateUpdates:
	default:
	}
	select {
	case e.rateUpdates <- rate:
	default:
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameInterval(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
