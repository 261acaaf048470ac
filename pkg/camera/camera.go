package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultSpeed         = 5.0 // world units per second
	defaultRotationSpeed = 0.3 // radians per second per pixel of mouse travel
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Input is one frame of fly-camera controls. Movement and rotation are only
// applied while Looking is held, matching a hold-right-mouse-to-fly scheme.
type Input struct {
	Looking    bool
	Forward    bool
	Backward   bool
	Left       bool
	Right      bool
	Up         bool
	Down       bool
	MouseDelta mgl32.Vec2 // cursor movement since the previous frame, in pixels
}

// Camera is a perspective fly camera. It caches one primary ray direction
// per pixel, recomputed only when the view, projection or size changes.
type Camera struct {
	projection        mgl32.Mat4
	view              mgl32.Mat4
	inverseProjection mgl32.Mat4
	inverseView       mgl32.Mat4

	verticalFOV float32 // degrees
	nearClip    float32
	farClip     float32

	position         mgl32.Vec3
	forwardDirection mgl32.Vec3

	rayDirections []mgl32.Vec3

	viewportWidth  int
	viewportHeight int

	Speed         float32
	RotationSpeed float32
}

// New creates a camera at (0,0,6) looking down -Z. verticalFOV is in degrees.
func New(verticalFOV, nearClip, farClip float32) *Camera {
	c := &Camera{
		verticalFOV:      verticalFOV,
		nearClip:         nearClip,
		farClip:          farClip,
		position:         mgl32.Vec3{0, 0, 6},
		forwardDirection: mgl32.Vec3{0, 0, -1},
		Speed:            defaultSpeed,
		RotationSpeed:    defaultRotationSpeed,
	}
	c.recalculateView()
	return c
}

// NewLookAt creates a camera at position looking toward target
func NewLookAt(position, target mgl32.Vec3, verticalFOV, nearClip, farClip float32) *Camera {
	c := New(verticalFOV, nearClip, farClip)
	c.position = position
	if dir := target.Sub(position); dir.Len() > 0 {
		c.forwardDirection = dir.Normalize()
	}
	c.recalculateView()
	return c
}

// Update applies one frame of input over ts seconds. It returns true when
// the camera moved, in which case accumulated frames are stale.
func (c *Camera) Update(input Input, ts float32) bool {
	if !input.Looking {
		return false
	}

	moved := false
	rightDirection := c.forwardDirection.Cross(worldUp)
	step := c.Speed * ts

	move := func(pressed bool, dir mgl32.Vec3) {
		if pressed {
			c.position = c.position.Add(dir.Mul(step))
			moved = true
		}
	}
	move(input.Forward, c.forwardDirection)
	move(input.Backward, c.forwardDirection.Mul(-1))
	move(input.Left, rightDirection.Mul(-1))
	move(input.Right, rightDirection)
	move(input.Up, worldUp)
	move(input.Down, worldUp.Mul(-1))

	if input.MouseDelta[0] != 0 || input.MouseDelta[1] != 0 {
		pitchDelta := input.MouseDelta[1] * c.RotationSpeed * ts
		yawDelta := input.MouseDelta[0] * c.RotationSpeed * ts

		if rightDirection.Len() > 0 {
			q := mgl32.QuatRotate(-pitchDelta, rightDirection.Normalize()).
				Mul(mgl32.QuatRotate(-yawDelta, worldUp)).
				Normalize()
			c.forwardDirection = q.Rotate(c.forwardDirection).Normalize()
		}
		moved = true
	}

	if moved {
		c.recalculateView()
	}
	return moved
}

// Resize sets the viewport size and rebuilds the cached ray directions.
// It is a no-op when the size is unchanged.
func (c *Camera) Resize(width, height int) {
	if width == c.viewportWidth && height == c.viewportHeight {
		return
	}
	c.viewportWidth = width
	c.viewportHeight = height

	c.recalculateProjection()
	c.recalculateRayDirections()
}

// GetPosition returns the camera position in world space
func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.position
}

// GetForwardDirection returns the unit view direction
func (c *Camera) GetForwardDirection() mgl32.Vec3 {
	return c.forwardDirection
}

// GetRayDirections returns one direction per pixel indexed x + y*width,
// where row 0 is the top of the image
func (c *Camera) GetRayDirections() []mgl32.Vec3 {
	return c.rayDirections
}

// Width returns the viewport width in pixels
func (c *Camera) Width() int { return c.viewportWidth }

// Height returns the viewport height in pixels
func (c *Camera) Height() int { return c.viewportHeight }

func (c *Camera) recalculateProjection() {
	if c.viewportWidth <= 0 || c.viewportHeight <= 0 {
		c.projection = mgl32.Ident4()
		c.inverseProjection = mgl32.Ident4()
		return
	}
	aspect := float32(c.viewportWidth) / float32(c.viewportHeight)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.verticalFOV), aspect, c.nearClip, c.farClip)
	c.inverseProjection = c.projection.Inv()
}

func (c *Camera) recalculateView() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.forwardDirection), worldUp)
	c.inverseView = c.view.Inv()
	c.recalculateRayDirections()
}

func (c *Camera) recalculateRayDirections() {
	width, height := c.viewportWidth, c.viewportHeight
	if width <= 0 || height <= 0 {
		c.rayDirections = c.rayDirections[:0]
		return
	}
	if cap(c.rayDirections) < width*height {
		c.rayDirections = make([]mgl32.Vec3, width*height)
	}
	c.rayDirections = c.rayDirections[:width*height]

	for y := 0; y < height; y++ {
		// NDC y is +1 at the top row
		ndcY := 1 - (float32(y)+0.5)/float32(height)*2
		for x := 0; x < width; x++ {
			ndcX := (float32(x)+0.5)/float32(width)*2 - 1

			target := c.inverseProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
			local := target.Vec3().Mul(1 / target[3]).Normalize()
			world := c.inverseView.Mul4x1(local.Vec4(0)).Vec3()

			c.rayDirections[x+y*width] = world
		}
	}
}
