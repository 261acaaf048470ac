package integrator

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// PathTracer implements the bounded multi-bounce integrator: every hit adds
// a directional-light term scaled by a geometrically decaying multiplier,
// then continues along the reflected direction.
type PathTracer struct {
	Settings Settings
}

// NewPathTracer creates a new path tracer
func NewPathTracer(settings Settings) *PathTracer {
	return &PathTracer{Settings: settings}
}

// PerPixel shades pixel (x, y) of a width-wide image
func (pt *PathTracer) PerPixel(s *scene.Scene, cam core.Camera, x, y, width int, sampler core.Sampler) mgl32.Vec4 {
	return PerPixel(pt, s, cam, x, y, width, sampler)
}

// RayColor follows a path for at most Settings.Bounces segments. A miss adds
// the background and ends the path; a sphere with an unknown material ends
// it without contribution. Alpha is always 1.
func (pt *PathTracer) RayColor(s *scene.Scene, ray core.Ray, sampler core.Sampler) mgl32.Vec4 {
	settings := pt.Settings
	toLight := core.Normalize(settings.LightDirection).Mul(-1)

	var color mgl32.Vec3
	multiplier := float32(1)

	for bounce := 0; bounce < settings.Bounces; bounce++ {
		hit := TraceClosest(s, ray)
		if hit.IsMiss() {
			color = color.Add(settings.BackgroundColor.Mul(multiplier))
			break
		}

		sphere := s.Spheres[hit.ObjectIndex]
		mat, ok := s.Material(sphere.MaterialIndex)
		if !ok {
			break
		}

		intensity := math32.Max(0, hit.WorldNormal.Dot(toLight))
		color = color.Add(mat.Albedo.Mul(intensity * multiplier))
		multiplier *= settings.Attenuation

		ray = core.NewRay(
			hit.WorldPosition.Add(hit.WorldNormal.Mul(settings.RayEpsilon)),
			mat.Scatter(ray.Direction, hit.WorldNormal, sampler),
		)
	}

	return color.Vec4(1)
}
