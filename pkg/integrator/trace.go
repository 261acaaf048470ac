package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// TraceClosest finds the nearest sphere along ray in a single pass over the
// scene. Each sphere only accepts distances strictly below the running
// minimum, so the first of two equally distant spheres wins.
func TraceClosest(s *scene.Scene, ray core.Ray) geometry.HitPayload {
	closestIndex := -1
	closest := math32.Inf(1)

	for i, sphere := range s.Spheres {
		if t, ok := sphere.Intersect(ray, closest); ok {
			closest = t
			closestIndex = i
		}
	}

	if closestIndex < 0 {
		return geometry.Miss()
	}
	return closestHit(s, ray, closest, closestIndex)
}

// closestHit builds the payload for a confirmed hit in the sphere's local frame
func closestHit(s *scene.Scene, ray core.Ray, hitDistance float32, objectIndex int) geometry.HitPayload {
	sphere := s.Spheres[objectIndex]

	origin := ray.Origin.Sub(sphere.Position)
	local := origin.Add(ray.Direction.Mul(hitDistance))

	return geometry.HitPayload{
		HitDistance:   hitDistance,
		WorldPosition: local.Add(sphere.Position),
		WorldNormal:   core.Normalize(local),
		ObjectIndex:   objectIndex,
	}
}
