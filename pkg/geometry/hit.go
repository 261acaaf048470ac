package geometry

import "github.com/go-gl/mathgl/mgl32"

// missDistance is the HitDistance sentinel for a ray that hit nothing
const missDistance = -1

// HitPayload is the transient result of a closest-hit query
type HitPayload struct {
	HitDistance   float32    // Distance along the ray; negative on miss
	WorldPosition mgl32.Vec3 // Hit point in world space
	WorldNormal   mgl32.Vec3 // Unit outward surface normal
	ObjectIndex   int        // Index of the hit sphere in the scene
}

// Miss returns the payload for a ray that escaped the scene
func Miss() HitPayload {
	return HitPayload{HitDistance: missDistance, ObjectIndex: -1}
}

// IsMiss reports whether the payload encodes a miss
func (h HitPayload) IsMiss() bool {
	return h.HitDistance < 0
}
