package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// ErrIndexOutOfRange is returned when an edit names a sphere or material
// the scene does not have
var ErrIndexOutOfRange = errors.New("index out of range")

// NewEditorSphere is the sphere the editor adds: radius 0.5 at the origin
// using the first material
func NewEditorSphere() geometry.Sphere {
	return geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 0.5, 0)
}

// SphereEdit changes selected fields of one sphere. Nil fields are left alone.
type SphereEdit struct {
	Index    int         `json:"index"`
	Radius   *float32    `json:"radius,omitempty"`
	Position *mgl32.Vec3 `json:"position,omitempty"`
	Material *int        `json:"material,omitempty"`
}

// MaterialEdit changes selected fields of one material. Nil fields are left alone.
type MaterialEdit struct {
	Index     int         `json:"index"`
	Albedo    *mgl32.Vec3 `json:"albedo,omitempty"`
	Roughness *float32    `json:"roughness,omitempty"`
	Metallic  *float32    `json:"metallic,omitempty"`
}

// EditSphere applies e to one sphere. The material index is clamped to the
// material list like the editor's slider; a non-positive radius is rejected.
func (s *Scene) EditSphere(e SphereEdit) error {
	if e.Index < 0 || e.Index >= len(s.Spheres) {
		return fmt.Errorf("sphere %d: %w", e.Index, ErrIndexOutOfRange)
	}
	if e.Radius != nil && !(*e.Radius > 0) {
		return fmt.Errorf("sphere %d: radius %g must be positive", e.Index, *e.Radius)
	}

	sphere := &s.Spheres[e.Index]
	if e.Radius != nil {
		sphere.Radius = *e.Radius
	}
	if e.Position != nil {
		sphere.Position = *e.Position
	}
	if e.Material != nil {
		sphere.MaterialIndex = min(max(*e.Material, 0), max(len(s.Materials)-1, 0))
	}
	return nil
}

// EditMaterial applies e to one material, clamping every factor to [0,1]
func (s *Scene) EditMaterial(e MaterialEdit) error {
	if e.Index < 0 || e.Index >= len(s.Materials) {
		return fmt.Errorf("material %d: %w", e.Index, ErrIndexOutOfRange)
	}

	m := s.Materials[e.Index]
	if e.Albedo != nil {
		m.Albedo = *e.Albedo
	}
	if e.Roughness != nil {
		m.Roughness = *e.Roughness
	}
	if e.Metallic != nil {
		m.Metallic = *e.Metallic
	}
	s.Materials[e.Index] = material.NewMaterial(m.Albedo, m.Roughness, m.Metallic)
	return nil
}
