package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits the origin at a fixed radius, always looking at the origin
// with +Y up.
type Camera struct {
	Radius float32
	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultCamera returns a camera with a 45 degree field of view on a 4:3
// viewport, orbiting at a radius of 5.
func DefaultCamera() Camera {
	return Camera{
		Radius: 5,
		FovY:   45,
		Aspect: 4.0 / 3.0,
		Near:   0.1,
		Far:    100,
	}
}

// Eye returns the camera position t seconds into the orbit. The x and y
// coordinates move together so the path is tilted out of the horizontal
// plane.
func (c Camera) Eye(t float64) mgl32.Vec3 {
	s := float32(math.Sin(t)) * c.Radius
	return mgl32.Vec3{s, s, float32(math.Cos(t)) * c.Radius}
}

// View returns the view matrix at time t.
func (c Camera) View(t float64) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(t), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// MVP returns Projection * View * Model at time t. The model sits at the
// origin so Model is the identity.
func (c Camera) MVP(t float64) mgl32.Mat4 {
	model := mgl32.Ident4()
	return c.Projection().Mul4(c.View(t)).Mul4(model)
}
