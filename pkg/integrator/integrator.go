package integrator

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the RGBA color carried back along a ray
	RayColor(scene *scene.Scene, ray core.Ray, sampler core.Sampler) mgl32.Vec4
}

// PerPixel shades pixel (x, y) of a width-wide image with any integrator,
// using the camera's cached primary ray direction for that pixel
func PerPixel(integ Integrator, s *scene.Scene, cam core.Camera, x, y, width int, sampler core.Sampler) mgl32.Vec4 {
	ray := core.NewRay(cam.GetPosition(), cam.GetRayDirections()[x+y*width])
	return integ.RayColor(s, ray, sampler)
}
