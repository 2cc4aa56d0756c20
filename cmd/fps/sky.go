package main

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/renderer"
)

var (
	skyColor     = renderer.Color{R: 0.45, G: 0.65, B: 0.90, A: 1}
	groundColor  = renderer.Color{R: 0.20, G: 0.18, B: 0.15, A: 1}
	launchColor  = renderer.Color{R: 1.00, G: 0.55, B: 0.20, A: 1}
	launchTint   = float32(0.35)
	crouchShadow = float32(0.85)
)

// clearColor derives the frame's clear color from the player's view: looking down blends
// from sky toward ground, a launch tints the frame and a crouch darkens it slightly.
func clearColor(s character.State) renderer.Color {
	t := (s.Pitch + 90) / 180
	c := mix(skyColor, groundColor, t)
	if s.Launching {
		c = mix(c, launchColor, launchTint)
	}
	if s.Crouching {
		c.R *= float64(crouchShadow)
		c.G *= float64(crouchShadow)
		c.B *= float64(crouchShadow)
	}
	return c
}

func mix(a, b renderer.Color, t float32) renderer.Color {
	return renderer.Color{
		R: float64(common.Lerp(float32(a.R), float32(b.R), t)),
		G: float64(common.Lerp(float32(a.G), float32(b.G), t)),
		B: float64(common.Lerp(float32(a.B), float32(b.B), t)),
		A: 1,
	}
}
