package input

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// EventSource is the subset of window callbacks the manager attaches to.
// window.Window satisfies it.
type EventSource interface {
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMouseButtonDownCallback(callback func(button uint32, x, y float64))
	SetMouseButtonUpCallback(callback func(button uint32, x, y float64))
	SetMouseMoveCallback(callback func(x, y float64))
}

// Manager turns window events into per-tick Snapshots.
type Manager interface {
	// Enable attaches the manager to its event source. Calling Enable on an enabled manager
	// is a no-op.
	//
	// Returns:
	//   - error: ErrNoSource if there is nothing to attach to
	Enable() error

	// Disable detaches from the event source and forgets all held keys and pending triggers.
	// Calling Disable on a disabled manager is a no-op.
	Disable()

	// Enabled reports whether the manager is attached.
	//
	// Returns:
	//   - bool: true while enabled
	Enabled() bool

	// Sample returns the input state accumulated since the previous Sample and consumes
	// pending triggers and mouse motion. A disabled manager returns a zero Snapshot.
	//
	// Returns:
	//   - Snapshot: the input state for this tick
	Sample() Snapshot

	// Bindings returns the manager's binding table.
	//
	// Returns:
	//   - Bindings: the active bindings
	Bindings() Bindings
}

type managerImpl struct {
	mu *sync.Mutex

	source   EventSource
	bindings Bindings
	actions  map[uint32][]Action

	mouseScale   float32
	cursorLocked bool
	viewport     func() (width, height int)

	enabled bool

	// down is the set of physical codes currently pressed; used to ignore key repeat.
	down map[uint32]bool
	// held counts the pressed codes bound to each action.
	held map[Action]int
	// pending holds triggers that fired since the last sample.
	pending map[Action]bool

	look      mgl32.Vec2
	cursor    mgl32.Vec2
	hasCursor bool
}

var _ Manager = &managerImpl{}

// NewManager creates a disabled input manager reading from source.
// Defaults: DefaultBindings, mouse scale 1, cursor not locked.
//
// Parameters:
//   - source: the window (or any EventSource) delivering raw events
//   - options: functional options to configure the manager
//
// Returns:
//   - Manager: the new manager
func NewManager(source EventSource, options ...ManagerBuilderOption) Manager {
	m := &managerImpl{
		mu:         &sync.Mutex{},
		source:     source,
		bindings:   DefaultBindings(),
		mouseScale: 1,
		down:       make(map[uint32]bool),
		held:       make(map[Action]int),
		pending:    make(map[Action]bool),
	}
	for _, option := range options {
		option(m)
	}
	m.actions = m.bindings.reverse()
	return m
}

func (m *managerImpl) Enable() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.enabled {
		return nil
	}
	if m.source == nil {
		return ErrNoSource
	}
	m.source.SetKeyDownCallback(m.press)
	m.source.SetKeyUpCallback(m.release)
	m.source.SetMouseButtonDownCallback(func(button uint32, x, y float64) {
		m.press(button)
	})
	m.source.SetMouseButtonUpCallback(func(button uint32, x, y float64) {
		m.release(button)
	})
	m.source.SetMouseMoveCallback(m.move)
	m.enabled = true
	log.Printf("[Input] enabled with %d bound codes", len(m.actions))
	return nil
}

func (m *managerImpl) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	m.source.SetKeyDownCallback(nil)
	m.source.SetKeyUpCallback(nil)
	m.source.SetMouseButtonDownCallback(nil)
	m.source.SetMouseButtonUpCallback(nil)
	m.source.SetMouseMoveCallback(nil)
	m.enabled = false
	clear(m.down)
	clear(m.held)
	clear(m.pending)
	m.look = mgl32.Vec2{}
	m.hasCursor = false
	log.Printf("[Input] disabled")
}

func (m *managerImpl) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

func (m *managerImpl) Sample() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return Snapshot{}
	}

	move := mgl32.Vec2{
		m.axis(ActionMoveRight) - m.axis(ActionMoveLeft),
		m.axis(ActionMoveForward) - m.axis(ActionMoveBackward),
	}
	if move.Len() > 1 {
		move = move.Normalize()
	}

	snap := Snapshot{
		Look:    m.look,
		Move:    move,
		Run:     m.axis(ActionRun),
		Zoom:    m.axis(ActionZoom),
		Crouch:  m.axis(ActionCrouch),
		Jump:    m.pending[ActionJump],
		Fire:    m.pending[ActionFire],
		Pointer: m.pointer(),
	}
	m.look = mgl32.Vec2{}
	clear(m.pending)
	return snap
}

func (m *managerImpl) Bindings() Bindings {
	return m.bindings
}

// press records a key or button going down. Repeats of an already-down code are ignored so
// triggers fire once per physical press.
func (m *managerImpl) press(code uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down[code] {
		return
	}
	m.down[code] = true
	for _, action := range m.actions[code] {
		if m.held[action] == 0 {
			m.pending[action] = true
		}
		m.held[action]++
	}
}

func (m *managerImpl) release(code uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.down[code] {
		return
	}
	delete(m.down, code)
	for _, action := range m.actions[code] {
		if m.held[action] > 0 {
			m.held[action]--
		}
	}
}

// move accumulates cursor motion. The first event after enabling only establishes the
// reference position.
func (m *managerImpl) move(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos := mgl32.Vec2{float32(x), float32(y)}
	if m.hasCursor {
		delta := pos.Sub(m.cursor)
		// Window Y grows downward; look up is positive.
		m.look = m.look.Add(mgl32.Vec2{delta[0], -delta[1]}.Mul(m.mouseScale))
	}
	m.cursor = pos
	m.hasCursor = true
}

// axis returns 1 when action is held, else 0.
// Caller must hold the mutex.
func (m *managerImpl) axis(action Action) float32 {
	if m.held[action] > 0 {
		return 1
	}
	return 0
}

// pointer returns the aim point: the viewport center while the cursor is locked, otherwise
// the last cursor position.
// Caller must hold the mutex.
func (m *managerImpl) pointer() mgl32.Vec2 {
	if m.cursorLocked && m.viewport != nil {
		w, h := m.viewport()
		return mgl32.Vec2{float32(w) / 2, float32(h) / 2}
	}
	return m.cursor
}
