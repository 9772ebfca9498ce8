package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func TestCameraEye(t *testing.T) {
	c := DefaultCamera()

	eye := c.Eye(0)
	assert.InDelta(t, 0, eye.X(), tol)
	assert.InDelta(t, 0, eye.Y(), tol)
	assert.InDelta(t, 5, eye.Z(), tol)

	eye = c.Eye(math.Pi / 2)
	assert.InDelta(t, 5, eye.X(), tol)
	assert.InDelta(t, 5, eye.Y(), tol)
	assert.InDelta(t, 0, eye.Z(), tol)

	c.Radius = 2
	eye = c.Eye(math.Pi)
	assert.InDelta(t, 0, eye.X(), tol)
	assert.InDelta(t, -2, eye.Z(), tol)
}

func TestCameraViewPutsOriginAhead(t *testing.T) {
	c := DefaultCamera()
	origin := c.View(0).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin.X(), tol)
	assert.InDelta(t, 0, origin.Y(), tol)
	assert.InDelta(t, -5, origin.Z(), tol)
}

func TestCameraMVP(t *testing.T) {
	c := DefaultCamera()
	for _, tm := range []float64{0, 0.3, 1, 2.5, 10} {
		mvp := c.MVP(tm)
		assert.True(t, mvp.ApproxEqualThreshold(c.Projection().Mul4(c.View(tm)), tol), "t=%v", tm)

		// clip w of the origin is its distance from the eye
		clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDelta(t, c.Eye(tm).Len(), clip.W(), tol, "t=%v", tm)
		assert.InDelta(t, 0, clip.X(), tol, "t=%v", tm)
		assert.InDelta(t, 0, clip.Y(), tol, "t=%v", tm)
	}
}

func TestCameraProjection(t *testing.T) {
	c := DefaultCamera()
	want := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	assert.True(t, c.Projection().ApproxEqual(want))
}
