package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// NewDefaultScene creates the default scene: a pink mirror sphere resting on
// a huge cyan sphere that acts as the ground
func NewDefaultScene() *Scene {
	s := New()

	pink := s.AddMaterial(material.NewMaterial(mgl32.Vec3{1.0, 0.4, 1.0}, 0.0, 0.0))
	ground := s.AddMaterial(material.NewMaterial(mgl32.Vec3{0.2, 0.9, 1.0}, 0.02, 0.0))

	s.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 1.0, pink))
	s.AddSphere(geometry.NewSphere(mgl32.Vec3{0, -101, 0}, 100.0, ground))

	return s
}

// NewSingleSphereScene creates a scene with one white sphere at the origin
func NewSingleSphereScene() *Scene {
	s := New()
	white := s.AddMaterial(material.DefaultMaterial())
	s.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 0.5, white))
	return s
}
