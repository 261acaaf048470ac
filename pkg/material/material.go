package material

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Material describes how a sphere responds to light
type Material struct {
	Albedo    mgl32.Vec3 `yaml:"albedo,flow" json:"albedo"`  // Base color in [0,1]^3
	Roughness float32    `yaml:"roughness" json:"roughness"` // 0.0 = mirror, 1.0 = very fuzzy
	Metallic  float32    `yaml:"metallic" json:"metallic"`   // Carried for editors; not shaded
}

// NewMaterial creates a new material, clamping every factor to [0,1]
func NewMaterial(albedo mgl32.Vec3, roughness, metallic float32) Material {
	return Material{
		Albedo:    mgl32.Vec3{clamp01(albedo[0]), clamp01(albedo[1]), clamp01(albedo[2])},
		Roughness: clamp01(roughness),
		Metallic:  clamp01(metallic),
	}
}

// DefaultMaterial matches a freshly added material in the editor: white and fully rough
func DefaultMaterial() Material {
	return Material{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 1, Metallic: 0}
}

// PerturbNormal offsets a surface normal by a random vector in [-0.5,0.5)^3
// scaled by roughness. The result is not renormalized; a zero roughness
// returns the normal unchanged without consuming samples.
func (m Material) PerturbNormal(normal mgl32.Vec3, sampler core.Sampler) mgl32.Vec3 {
	if m.Roughness == 0 {
		return normal
	}
	return normal.Add(core.RandomInRange(sampler, -0.5, 0.5).Mul(m.Roughness))
}

// Scatter returns the direction of the ray leaving a hit: the incoming
// direction reflected about the roughness-perturbed normal.
func (m Material) Scatter(incoming, normal mgl32.Vec3, sampler core.Sampler) mgl32.Vec3 {
	return core.Reflect(incoming, m.PerturbNormal(normal, sampler))
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
