package launch

import "github.com/Carmen-Shannon/oxy-fps/engine/physics"

// LauncherBuilderOption is a functional option for configuring a Launcher.
type LauncherBuilderOption func(*Launcher)

// WithConfig replaces the default launch tunables.
//
// Parameters:
//   - cfg: the tunables
//
// Returns:
//   - LauncherBuilderOption: functional option to set the config
func WithConfig(cfg Config) LauncherBuilderOption {
	return func(l *Launcher) {
		l.cfg = cfg
	}
}

// WithGroundMask sets the layers a fire ray must hit to start a launch.
//
// Parameters:
//   - mask: the ground layers
//
// Returns:
//   - LauncherBuilderOption: functional option to set the ground mask
func WithGroundMask(mask physics.LayerMask) LauncherBuilderOption {
	return func(l *Launcher) {
		l.groundMask = mask
	}
}

// WithDebug logs launch transitions.
//
// Parameters:
//   - debug: true to log
//
// Returns:
//   - LauncherBuilderOption: functional option to toggle logging
func WithDebug(debug bool) LauncherBuilderOption {
	return func(l *Launcher) {
		l.debug = debug
	}
}
