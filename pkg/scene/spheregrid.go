package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) mgl32.Vec3 {
	hRad := mgl32.DegToRad(h)

	// Convert from OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return mgl32.Vec3{
		math32.Max(0, math32.Min(1, r)),
		math32.Max(0, math32.Min(1, g)),
		math32.Max(0, math32.Min(1, blue)),
	}
}

// NewSphereGridScene creates a gridSize x gridSize field of colored spheres
// on a large ground sphere. Hue varies along X, chroma along Z and roughness
// cycles so the grid shows the whole mirror-to-fuzzy range.
func NewSphereGridScene(gridSize int) *Scene {
	if gridSize < 1 {
		gridSize = 1
	}

	s := New()
	ground := s.AddMaterial(material.NewMaterial(mgl32.Vec3{0.5, 0.5, 0.5}, 0.8, 0))
	s.AddSphere(geometry.NewSphere(mgl32.Vec3{0, -1000, 0}, 1000, ground))

	// Fit the grid into a fixed 9x9 footprint around the origin
	const targetArea = 9.0
	spacing := float32(targetArea)
	if gridSize > 1 {
		spacing = targetArea / float32(gridSize-1)
	}
	radius := math32.Max(0.02, math32.Min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	divisor := float32(max(gridSize-1, 1))
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2
			z := float32(j)*spacing - targetArea/2

			hue := float32(i) / divisor * 360
			chroma := minChroma + float32(j)/divisor*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)
			roughness := float32((i+j)%4) / 3

			m := s.AddMaterial(material.NewMaterial(oklchToRGB(lightness, chroma, hue), roughness, 1))
			s.AddSphere(geometry.NewSphere(mgl32.Vec3{x, radius, z}, radius, m))
		}
	}

	return s
}
