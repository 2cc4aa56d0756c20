package input

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-fps/common"
)

// Bindings maps each action to the key codes (see common.KeyCode) that drive it.
type Bindings map[Action][]uint32

// DefaultBindings returns the stock first-person control map: WASD to move, Space to jump,
// Left Shift to run, Left Control or C to crouch, right mouse to zoom and left mouse to fire.
//
// Returns:
//   - Bindings: a fresh binding table
func DefaultBindings() Bindings {
	return Bindings{
		ActionMoveForward:  {common.KeyW},
		ActionMoveBackward: {common.KeyS},
		ActionMoveLeft:     {common.KeyA},
		ActionMoveRight:    {common.KeyD},
		ActionJump:         {common.KeySpace},
		ActionRun:          {common.KeyLeftShift},
		ActionCrouch:       {common.KeyLeftControl, common.KeyC},
		ActionZoom:         {common.MouseButtonRight},
		ActionFire:         {common.MouseButtonLeft},
	}
}

// ParseBindings converts a name table (as found in configuration files) into Bindings.
// Actions missing from names keep their default keys; an action mapped to an empty list
// is unbound.
//
// Parameters:
//   - names: action name to key names, e.g. "jump": ["space"]
//
// Returns:
//   - Bindings: the resolved binding table
//   - error: wraps ErrUnknownAction or ErrUnknownKey on bad names
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, keys := range names {
		action := Action(name)
		if !slices.Contains(Actions, action) {
			return nil, fmt.Errorf("binding %q: %w", name, ErrUnknownAction)
		}
		codes := make([]uint32, 0, len(keys))
		for _, key := range keys {
			code, ok := common.KeyCode(key)
			if !ok {
				return nil, fmt.Errorf("binding %q key %q: %w", name, key, ErrUnknownKey)
			}
			codes = append(codes, code)
		}
		b[action] = codes
	}
	return b, nil
}

// reverse builds the code to actions lookup used when dispatching events.
func (b Bindings) reverse() map[uint32][]Action {
	out := make(map[uint32][]Action)
	for action, codes := range b {
		for _, code := range codes {
			out[code] = append(out[code], action)
		}
	}
	return out
}
