package scene

import (
	"math"

	"github.com/rangeshot/rangeshot/internal/vmath"
)

// Camera is a perspective camera driven by yaw/pitch look angles.
type Camera struct {
	Position vmath.Vec3
	Yaw      float64 // radians around +Y
	Pitch    float64 // radians around local +X
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

func NewCamera(aspect float64) Camera {
	return Camera{FOV: 75, Aspect: aspect, Near: 0.1, Far: 1000}
}

func (c *Camera) Orientation() vmath.Quat {
	return vmath.QuatFromYawPitch(c.Yaw, c.Pitch)
}

// Forward is the look direction through the screen centre.
func (c *Camera) Forward() vmath.Vec3 {
	return c.Orientation().Rotate(vmath.Vec3{Z: -1})
}

// SetViewport updates the aspect ratio; non-positive sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// FocalLength returns the projection scale for a viewport height in pixels.
func (c *Camera) FocalLength(viewportHeight float64) float64 {
	return viewportHeight / 2 / math.Tan(c.FOV*math.Pi/360)
}
