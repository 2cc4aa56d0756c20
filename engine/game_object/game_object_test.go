package game_object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() {
		t.Error("new objects should be enabled")
	}
	if obj.Position() != (mgl32.Vec3{}) || obj.Yaw() != 0 {
		t.Errorf("got position %v yaw %v, want origin and 0", obj.Position(), obj.Yaw())
	}
}

func TestBuilderOptions(t *testing.T) {
	obj := NewGameObject(WithID(7), WithEnabled(false), WithPosition(1, 2, 3), WithYaw(-90))
	if obj.ID() != 7 {
		t.Errorf("ID = %d, want 7", obj.ID())
	}
	if obj.Enabled() {
		t.Error("WithEnabled(false) ignored")
	}
	if obj.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position = %v", obj.Position())
	}
	if obj.Yaw() != 270 {
		t.Errorf("Yaw = %v, want 270", obj.Yaw())
	}
}

func TestRotateYawWraps(t *testing.T) {
	tests := []struct {
		start, delta, want float32
	}{
		{0, 90, 90},
		{350, 20, 10},
		{10, -20, 350},
		{0, 720, 0},
		{0, -360, 0},
	}
	for _, tt := range tests {
		obj := NewGameObject(WithYaw(tt.start))
		obj.RotateYaw(tt.delta)
		if got := obj.Yaw(); mgl32.Abs(got-tt.want) > 1e-3 {
			t.Errorf("yaw %v + %v = %v, want %v", tt.start, tt.delta, got, tt.want)
		}
	}
}

func TestAxesFollowYaw(t *testing.T) {
	obj := NewGameObject(WithYaw(90))
	if !obj.Forward().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Forward = %v, want +X", obj.Forward())
	}
	if !obj.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("Right = %v, want +Z", obj.Right())
	}
	if !obj.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("Up = %v, want +Y", obj.Up())
	}
	if got := obj.TransformDirection(mgl32.Vec3{0, 0, -1}); !got.ApproxEqualThreshold(obj.Forward(), 1e-5) {
		t.Errorf("TransformDirection(local forward) = %v, want %v", got, obj.Forward())
	}
}

func TestTranslate(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 1, 1))
	obj.Translate(mgl32.Vec3{0, -1, 2})
	if obj.Position() != (mgl32.Vec3{1, 0, 3}) {
		t.Errorf("Position = %v, want (1,0,3)", obj.Position())
	}
	obj.SetPosition(mgl32.Vec3{})
	if obj.Position() != (mgl32.Vec3{}) {
		t.Errorf("SetPosition ignored: %v", obj.Position())
	}
}
