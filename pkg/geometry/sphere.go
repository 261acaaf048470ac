package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// minDirectionLengthSq guards the quadratic against a zero-length direction
const minDirectionLengthSq = 1e-12

// Sphere is passive scene data: a radius, a center and the index of its
// material in the owning scene.
type Sphere struct {
	Radius        float32    `yaml:"radius" json:"radius"`
	Position      mgl32.Vec3 `yaml:"position,flow" json:"position"`
	MaterialIndex int        `yaml:"material" json:"materialIndex"`
}

// NewSphere creates a new sphere
func NewSphere(position mgl32.Vec3, radius float32, materialIndex int) Sphere {
	return Sphere{
		Radius:        radius,
		Position:      position,
		MaterialIndex: materialIndex,
	}
}

// Intersect returns the distance along ray to the visible surface of the
// sphere, accepting it only when strictly less than closest. Passing the
// running minimum lets a caller scan an unordered sphere list in one pass.
//
// When the ray origin is inside the sphere the far root is returned.
// Degenerate spheres and zero-length directions never hit.
func (s Sphere) Intersect(ray core.Ray, closest float32) (float32, bool) {
	if s.Radius <= 0 {
		return 0, false
	}

	// Translate the ray into sphere-local space
	origin := ray.Origin.Sub(s.Position)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a < minDirectionLengthSq {
		return 0, false
	}
	b := 2 * origin.Dot(ray.Direction)
	c := origin.Dot(origin) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math32.Sqrt(discriminant)
	tNear := (-b - sqrtD) / (2 * a)
	tFar := (-b + sqrtD) / (2 * a)

	t := tNear
	if tNear < 0 {
		if tFar < 0 {
			// Sphere entirely behind the ray
			return 0, false
		}
		// Origin is inside the sphere
		t = tFar
	}

	if t >= closest {
		return 0, false
	}
	return t, true
}
