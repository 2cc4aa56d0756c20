package character

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/Carmen-Shannon/oxy-fps/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeBody stands on an optional floor at y=0 and never collides with anything else.
type fakeBody struct {
	pos      mgl32.Vec3
	yaw      float32
	height   float32
	minH     float32
	floor    bool
	grounded bool
	moves    []mgl32.Vec3
}

func newFakeBody(y float32, floor bool) *fakeBody {
	return &fakeBody{pos: mgl32.Vec3{0, y, 0}, height: 2, minH: 0.5, floor: floor}
}

func (b *fakeBody) IsGrounded() bool { return b.grounded }

func (b *fakeBody) Move(d mgl32.Vec3) {
	b.moves = append(b.moves, d)
	b.pos = b.pos.Add(d)
	if d[1] == 0 {
		return
	}
	b.grounded = false
	if b.floor && d[1] < 0 && b.pos[1] <= 0 {
		b.pos[1] = 0
		b.grounded = true
	}
}

func (b *fakeBody) Height() float32 { return b.height }

func (b *fakeBody) SetHeight(h float32) { b.height = max(h, b.minH) }

func (b *fakeBody) Center() mgl32.Vec3 { return b.pos.Add(mgl32.Vec3{0, b.height / 2, 0}) }

func (b *fakeBody) Forward() mgl32.Vec3 {
	f, _ := common.YawBasis(b.yaw)
	return f
}

func (b *fakeBody) Right() mgl32.Vec3 {
	_, r := common.YawBasis(b.yaw)
	return r
}

func (b *fakeBody) Up() mgl32.Vec3 { return common.WorldUp }

func (b *fakeBody) Yaw() float32 { return b.yaw }

func (b *fakeBody) RotateYaw(delta float32) { b.yaw += delta }

type fakeCamera struct {
	fov   float32
	pitch float32
}

func (c *fakeCamera) Fov() float32 { return c.fov }

func (c *fakeCamera) SetFov(fov float32) { c.fov = fov }

func (c *fakeCamera) SetLocalPitch(p float32) { c.pitch = p }

func (c *fakeCamera) ScreenPointToRay(x, y float32) (mgl32.Vec3, mgl32.Vec3) {
	return mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}
}

// fakeRaycaster reports a hit whenever hit is set and records the queries it served.
type fakeRaycaster struct {
	hit   bool
	calls int
	last  struct {
		origin, dir mgl32.Vec3
		maxDist     float32
	}
}

func (r *fakeRaycaster) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask physics.LayerMask) (physics.Hit, bool) {
	r.calls++
	r.last.origin, r.last.dir, r.last.maxDist = origin, dir, maxDist
	if !r.hit {
		return physics.Hit{}, false
	}
	return physics.Hit{Point: origin.Add(dir.Mul(maxDist / 2)), Distance: maxDist / 2}, true
}

type fakeInput struct {
	enableErr error
	enables   int
	enabled   bool
	samples   int
	next      input.Snapshot
}

func (i *fakeInput) Enable() error {
	i.enables++
	if i.enableErr != nil {
		return i.enableErr
	}
	i.enabled = true
	return nil
}

func (i *fakeInput) Disable() { i.enabled = false }

func (i *fakeInput) Sample() input.Snapshot {
	i.samples++
	return i.next
}

var errDevice = errors.New("device unavailable")

type rig struct {
	ctrl *Controller
	body *fakeBody
	cam  *fakeCamera
	ray  *fakeRaycaster
	in   *fakeInput
}

// newRig builds a controller standing on a floor at y=0. The first tick settles it onto the
// floor.
func newRig(options ...ControllerBuilderOption) (*rig, error) {
	r := &rig{
		body: newFakeBody(0, true),
		cam:  &fakeCamera{fov: 60},
		ray:  &fakeRaycaster{},
		in:   &fakeInput{},
	}
	ctrl, err := NewController(r.body, r.cam, r.ray, r.in, options...)
	if err != nil {
		return nil, err
	}
	r.ctrl = ctrl
	return r, nil
}
