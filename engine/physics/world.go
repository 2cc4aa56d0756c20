// Package physics provides the static collision world used by first-person bodies: axis-aligned
// colliders filtered by layer, a nearest-hit raycast, and the capsule body that sweeps through them.
package physics

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

// Unbounded is the max distance that makes a raycast test every collider in the world,
// however far away.
const Unbounded = math32.MaxFloat32

// Layer is the index of a collision category (0-31).
type Layer uint8

const (
	LayerDefault Layer = 0
	LayerGround  Layer = 1
	LayerProp    Layer = 2
)

// Mask returns the single-bit LayerMask selecting this layer.
func (l Layer) Mask() LayerMask {
	return LayerMask(1) << l
}

// LayerMask filters raycasts and sweeps to a subset of layers.
type LayerMask uint32

// LayerAll selects every layer.
const LayerAll LayerMask = ^LayerMask(0)

// Has reports whether the mask includes layer l.
func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

// Collider is a static axis-aligned box belonging to one layer.
type Collider struct {
	Box   cube.BBox
	Layer Layer
}

// Hit describes the nearest intersection found by a raycast.
type Hit struct {
	// Point is the world-space intersection point.
	Point mgl32.Vec3
	// Distance is the distance from the ray origin to Point.
	Distance float32
	// Layer is the layer of the collider that was hit.
	Layer Layer
}

// World holds the static colliders of a level. Reads (raycasts, sweeps) are safe from any
// number of goroutines; colliders are added before simulation starts.
type World struct {
	mu        sync.RWMutex
	colliders []Collider
}

// NewWorld creates an empty world.
//
// Returns:
//   - *World: the new world
func NewWorld() *World {
	return &World{}
}

// AddBox adds a static box spanning min to max on the given layer.
//
// Parameters:
//   - min: minimum corner
//   - max: maximum corner
//   - layer: collision layer of the box
func (w *World) AddBox(min, max mgl32.Vec3, layer Layer) {
	w.Add(Collider{
		Box:   cube.Box(min[0], min[1], min[2], max[0], max[1], max[2]),
		Layer: layer,
	})
}

// Add adds a collider to the world.
//
// Parameters:
//   - c: the collider to add
func (w *World) Add(c Collider) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.colliders = append(w.colliders, c)
}

// Colliders returns a copy of every collider in the world.
//
// Returns:
//   - []Collider: the colliders
func (w *World) Colliders() []Collider {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Collider, len(w.colliders))
	copy(out, w.colliders)
	return out
}

// Nearby returns the boxes of colliders matching mask that intersect area.
//
// Parameters:
//   - area: the region to query
//   - mask: layers to include
//
// Returns:
//   - []cube.BBox: the intersecting boxes
func (w *World) Nearby(area cube.BBox, mask LayerMask) []cube.BBox {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []cube.BBox
	for _, c := range w.colliders {
		if !mask.Has(c.Layer) {
			continue
		}
		if overlaps(area, c.Box, 0) {
			out = append(out, c.Box)
		}
	}
	return out
}

// Raycast finds the nearest collider surface hit by the ray starting at origin along direction
// within maxDistance. Colliders that contain the origin are ignored, as are colliders on layers
// outside mask. A miss is reported through the boolean; it is never an error.
//
// Parameters:
//   - origin: ray start in world space
//   - direction: ray direction (need not be normalized)
//   - maxDistance: maximum hit distance; Unbounded tests the whole world
//   - mask: layers to test
//
// Returns:
//   - Hit: the nearest hit
//   - bool: false if nothing was hit
func (w *World) Raycast(origin, direction mgl32.Vec3, maxDistance float32, mask LayerMask) (Hit, bool) {
	if direction.LenSqr() == 0 || maxDistance <= 0 {
		return Hit{}, false
	}
	dir := direction.Normalize()

	w.mu.RLock()
	defer w.mu.RUnlock()

	// trace works on segments; an unbounded ray is cut just past the farthest collider so the
	// segment end stays within float32 precision.
	length := maxDistance
	if reach := w.reach(origin); reach < length {
		length = reach
	}
	end := origin.Add(dir.Mul(length))

	var best Hit
	found := false
	for _, c := range w.colliders {
		if !mask.Has(c.Layer) || c.Box.Vec3Within(origin) {
			continue
		}
		result, ok := trace.BBoxIntercept(c.Box, origin, end)
		if !ok {
			continue
		}
		point := result.Position()
		dist := point.Sub(origin).Len()
		if dist > maxDistance {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Point: point, Distance: dist, Layer: c.Layer}
			found = true
		}
	}
	return best, found
}

// reach returns a distance from origin that lies beyond every collider corner.
// Caller must hold the read lock.
func (w *World) reach(origin mgl32.Vec3) float32 {
	var far float32
	for _, c := range w.colliders {
		min, max := c.Box.Min(), c.Box.Max()
		dx := math32.Max(math32.Abs(min[0]-origin[0]), math32.Abs(max[0]-origin[0]))
		dy := math32.Max(math32.Abs(min[1]-origin[1]), math32.Abs(max[1]-origin[1]))
		dz := math32.Max(math32.Abs(min[2]-origin[2]), math32.Abs(max[2]-origin[2]))
		if d := math32.Sqrt(dx*dx + dy*dy + dz*dz); d > far {
			far = d
		}
	}
	return far + 1
}

// overlaps reports whether a and b overlap by more than eps on every axis.
func overlaps(a, b cube.BBox, eps float32) bool {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	for i := 0; i < 3; i++ {
		if amax[i]-bmin[i] <= eps || bmax[i]-amin[i] <= eps {
			return false
		}
	}
	return true
}
