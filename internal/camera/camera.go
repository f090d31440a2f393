package camera

import (
	"time"

	"glcube/internal/config"
	"glcube/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Controls is the key state the camera reads each frame
type Controls interface {
	IsActive(action input.Action) bool
}

// Camera is a free-moving camera with a fixed orientation. The basis vectors
// are never rotated, so they stay orthonormal.
type Camera struct {
	Position mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	Forward  mgl32.Vec3

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Speed       float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

func New(cfg config.Settings) *Camera {
	c := &Camera{
		Position:    cfg.CameraStart,
		Up:          mgl32.Vec3{0, 1, 0},
		Right:       mgl32.Vec3{1, 0, 0},
		Forward:     mgl32.Vec3{0, 0, -1},
		AspectRatio: cfg.AspectRatio(),
		FOV:         cfg.FOV,
		NearPlane:   cfg.Near,
		FarPlane:    cfg.Far,
		Speed:       cfg.Speed,
	}
	c.proj = c.computeProjection()
	c.view = c.computeView()
	return c
}

// Update moves the camera by the keys held during the last frame and
// refreshes the view matrix. Opposing keys cancel.
func (c *Camera) Update(keys Controls, dt time.Duration) {
	c.move(keys, dt)
	c.view = c.computeView()
}

func (c *Camera) move(keys Controls, dt time.Duration) {
	velocity := c.Speed * float32(dt.Seconds()*1000)

	if keys.IsActive(input.ActionMoveForward) {
		c.Position = c.Position.Add(c.Forward.Mul(velocity))
	}
	if keys.IsActive(input.ActionMoveBackward) {
		c.Position = c.Position.Sub(c.Forward.Mul(velocity))
	}
	if keys.IsActive(input.ActionMoveLeft) {
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
	if keys.IsActive(input.ActionMoveRight) {
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
	if keys.IsActive(input.ActionMoveUp) {
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	}
	if keys.IsActive(input.ActionMoveDown) {
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProjectionMatrix returns the projection computed at construction.
// Window resizes are not tracked.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.proj
}

// ViewMatrix returns the view matrix as of the last Update.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}

func (c *Camera) computeProjection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) computeView() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
}
