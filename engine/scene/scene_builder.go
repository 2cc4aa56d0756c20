package scene

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithControllers registers initial controllers in the given order. Controllers whose ID is
// already registered are skipped. They are activated when the scene is.
//
// Parameters:
//   - controllers: the controllers to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithControllers(controllers ...*character.Controller) SceneBuilderOption {
	return func(s *scene) {
		for _, c := range controllers {
			if c == nil {
				continue
			}
			if _, ok := s.controllers[c.ID()]; ok {
				continue
			}
			s.controllers[c.ID()] = c
			s.order = append(s.order, c.ID())
		}
	}
}

// WithTickWorkers sets the number of worker goroutines used to tick controllers in parallel.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of tick workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTickWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.tickWorkers = n
	}
}
