package integrator

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Settings are the shading parameters of the path integrator. They are plain
// fields: the renderer reads them every frame and callers may change them
// between frames.
type Settings struct {
	Bounces         int        `yaml:"bounces" json:"bounces"`                      // Maximum path segments per sample
	Attenuation     float32    `yaml:"attenuation" json:"attenuation"`              // Multiplier decay per bounce
	LightDirection  mgl32.Vec3 `yaml:"lightDirection,flow" json:"lightDirection"`   // Direction the light travels, need not be unit length
	BackgroundColor mgl32.Vec3 `yaml:"backgroundColor,flow" json:"backgroundColor"` // Color returned by escaping rays
	RayEpsilon      float32    `yaml:"rayEpsilon" json:"rayEpsilon"`                // Offset along the normal for bounce origins
}

// DefaultSettings returns the stock shading configuration
func DefaultSettings() Settings {
	return Settings{
		Bounces:         2,
		Attenuation:     0.5,
		LightDirection:  mgl32.Vec3{-1, -1, -1},
		BackgroundColor: mgl32.Vec3{0, 0, 0},
		RayEpsilon:      1e-4,
	}
}

// Sanitized returns a copy with out-of-range values replaced: bounces below
// one become one, attenuation is clamped to [0,1], and a zero light direction
// or non-positive epsilon fall back to the defaults.
func (s Settings) Sanitized() Settings {
	defaults := DefaultSettings()
	out := s
	if out.Bounces < 1 {
		out.Bounces = 1
	}
	out.Attenuation = math32.Max(0, math32.Min(1, out.Attenuation))
	if out.LightDirection.Len() == 0 {
		out.LightDirection = defaults.LightDirection
	}
	if !(out.RayEpsilon > 0) {
		out.RayEpsilon = defaults.RayEpsilon
	}
	return out
}
