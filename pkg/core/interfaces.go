package core

import "github.com/go-gl/mathgl/mgl32"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera supplies the eye position and one precomputed ray direction per
// pixel, indexed x + y*width with row 0 at the top of the image.
type Camera interface {
	GetPosition() mgl32.Vec3
	GetRayDirections() []mgl32.Vec3
}
