package main

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// Arena dimensions in world units.
const (
	arenaHalfSize = 50
	wallHeight    = 6
	wallThickness = 1

	// tunnelCeiling is low enough that only a crouched body fits underneath.
	tunnelCeiling = 1.6
)

// buildArena fills world with the demo level: a ground slab, four boundary walls, a row of
// crates and a low tunnel along +X. It returns the spawn point (feet position).
func buildArena(world *physics.World) mgl32.Vec3 {
	const h = arenaHalfSize

	world.AddBox(mgl32.Vec3{-h, -1, -h}, mgl32.Vec3{h, 0, h}, physics.LayerGround)

	world.AddBox(mgl32.Vec3{-h, 0, -h - wallThickness}, mgl32.Vec3{h, wallHeight, -h}, physics.LayerDefault)
	world.AddBox(mgl32.Vec3{-h, 0, h}, mgl32.Vec3{h, wallHeight, h + wallThickness}, physics.LayerDefault)
	world.AddBox(mgl32.Vec3{-h - wallThickness, 0, -h}, mgl32.Vec3{-h, wallHeight, h}, physics.LayerDefault)
	world.AddBox(mgl32.Vec3{h, 0, -h}, mgl32.Vec3{h + wallThickness, wallHeight, h}, physics.LayerDefault)

	for i := range 5 {
		x := float32(-20 + i*8)
		world.AddBox(mgl32.Vec3{x, 0, -20}, mgl32.Vec3{x + 2, 2, -18}, physics.LayerProp)
	}

	// Tunnel: two side walls and a roof from x=10 to x=30, centered on z=0.
	world.AddBox(mgl32.Vec3{10, 0, -3}, mgl32.Vec3{30, wallHeight, -2}, physics.LayerDefault)
	world.AddBox(mgl32.Vec3{10, 0, 2}, mgl32.Vec3{30, wallHeight, 3}, physics.LayerDefault)
	world.AddBox(mgl32.Vec3{10, tunnelCeiling, -2}, mgl32.Vec3{30, wallHeight, 2}, physics.LayerDefault)

	return mgl32.Vec3{0, 0, 10}
}
