package character

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*Controller)

// WithID sets the controller's identifier. The default is "player-N".
//
// Parameters:
//   - id: the identifier
//
// Returns:
//   - ControllerBuilderOption: functional option to set the ID
func WithID(id string) ControllerBuilderOption {
	return func(c *Controller) {
		c.id = id
	}
}

// WithConfig replaces the default tunables. The config is validated by NewController.
//
// Parameters:
//   - cfg: the tunables
//
// Returns:
//   - ControllerBuilderOption: functional option to set the config
func WithConfig(cfg Config) ControllerBuilderOption {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithRunPolicy overrides the run policy of the current config.
//
// Parameters:
//   - policy: RunPolicyHeld or RunPolicyToggle
//
// Returns:
//   - ControllerBuilderOption: functional option to set the run policy
func WithRunPolicy(policy RunPolicy) ControllerBuilderOption {
	return func(c *Controller) {
		c.cfg.RunPolicy = policy
	}
}

// WithExtension appends an extension. Extensions run in the order they are added.
//
// Parameters:
//   - ext: the extension to add
//
// Returns:
//   - ControllerBuilderOption: functional option to add the extension
func WithExtension(ext Extension) ControllerBuilderOption {
	return func(c *Controller) {
		if ext != nil {
			c.extensions = append(c.extensions, ext)
		}
	}
}
