package physics

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestLayerMask(t *testing.T) {
	mask := LayerGround.Mask() | LayerProp.Mask()
	if !mask.Has(LayerGround) || !mask.Has(LayerProp) {
		t.Error("mask should include ground and prop")
	}
	if mask.Has(LayerDefault) {
		t.Error("mask should not include default")
	}
	if !LayerAll.Has(Layer(31)) {
		t.Error("LayerAll should include every layer")
	}
}

func TestRaycast(t *testing.T) {
	w := NewWorld()
	w.AddBox(mgl32.Vec3{-10, -1, -10}, mgl32.Vec3{10, 0, 10}, LayerGround)
	w.AddBox(mgl32.Vec3{-1, 0, -6}, mgl32.Vec3{1, 2, -5}, LayerProp)

	tests := []struct {
		name     string
		origin   mgl32.Vec3
		dir      mgl32.Vec3
		maxDist  float32
		mask     LayerMask
		wantHit  bool
		wantDist float32
		wantLyr  Layer
	}{
		{"straight down hits ground", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0}, Unbounded, LayerAll, true, 2, LayerGround},
		{"nearest of two", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}, Unbounded, LayerAll, true, 5, LayerProp},
		{"mask skips prop", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}, Unbounded, LayerGround.Mask(), false, 0, 0},
		{"max distance", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, -1, 0}, 1.5, LayerAll, false, 0, 0},
		{"pointing away", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0}, Unbounded, LayerAll, false, 0, 0},
		{"unnormalized direction", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, -10, 0}, Unbounded, LayerAll, true, 3, LayerGround},
		{"zero direction", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{}, Unbounded, LayerAll, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.Raycast(tt.origin, tt.dir, tt.maxDist, tt.mask)
			if ok != tt.wantHit {
				t.Fatalf("hit = %t, want %t (%+v)", ok, tt.wantHit, hit)
			}
			if !ok {
				return
			}
			if mgl32.Abs(hit.Distance-tt.wantDist) > 1e-3 {
				t.Errorf("distance = %v, want %v", hit.Distance, tt.wantDist)
			}
			if hit.Layer != tt.wantLyr {
				t.Errorf("layer = %v, want %v", hit.Layer, tt.wantLyr)
			}
		})
	}
}

func TestRaycastIgnoresColliderContainingOrigin(t *testing.T) {
	w := NewWorld()
	w.AddBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, LayerDefault)
	if hit, ok := w.Raycast(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, Unbounded, LayerAll); ok {
		t.Errorf("expected no hit from inside a collider, got %+v", hit)
	}
}

func TestNearby(t *testing.T) {
	w := NewWorld()
	w.AddBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, LayerDefault)
	w.AddBox(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{6, 1, 1}, LayerDefault)
	w.AddBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, LayerProp)

	got := w.Nearby(cube.Box(0.5, 0.5, 0.5, 2, 2, 2), LayerDefault.Mask())
	if len(got) != 1 {
		t.Fatalf("Nearby returned %d boxes, want 1", len(got))
	}
	if len(w.Colliders()) != 3 {
		t.Errorf("Colliders() = %d, want 3", len(w.Colliders()))
	}
}
