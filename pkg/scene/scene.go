package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/geometry"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// Scene is an ordered collection of spheres and the materials they reference
// by index. The renderer treats it as a read-only snapshot for the duration
// of a frame; edits happen between frames.
type Scene struct {
	Spheres   []geometry.Sphere   `yaml:"spheres" json:"spheres"`
	Materials []material.Material `yaml:"materials" json:"materials"`
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		Spheres:   make([]geometry.Sphere, 0),
		Materials: make([]material.Material, 0),
	}
}

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere appends a sphere and returns its index
func (s *Scene) AddSphere(sphere geometry.Sphere) int {
	s.Spheres = append(s.Spheres, sphere)
	return len(s.Spheres) - 1
}

// Material looks up a material by index, reporting false when out of range
func (s *Scene) Material(index int) (material.Material, bool) {
	if index < 0 || index >= len(s.Materials) {
		return material.Material{}, false
	}
	return s.Materials[index], true
}

// ClearSpheres removes every sphere while keeping the materials
func (s *Scene) ClearSpheres() {
	s.Spheres = s.Spheres[:0]
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}

// Clone returns a deep copy that can be rendered while the original is edited
func (s *Scene) Clone() *Scene {
	clone := &Scene{
		Spheres:   make([]geometry.Sphere, len(s.Spheres)),
		Materials: make([]material.Material, len(s.Materials)),
	}
	copy(clone.Spheres, s.Spheres)
	copy(clone.Materials, s.Materials)
	return clone
}

// Validate reports spheres the integrator will not shade: non-positive radii
// and material indices outside the material list. Rendering never requires a
// valid scene; this is for editors and loaders.
func (s *Scene) Validate() error {
	var errs []error
	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			errs = append(errs, fmt.Errorf("sphere %d: radius %g must be positive", i, sphere.Radius))
		}
		if _, ok := s.Material(sphere.MaterialIndex); !ok {
			errs = append(errs, fmt.Errorf("sphere %d: material index %d out of range [0,%d)",
				i, sphere.MaterialIndex, len(s.Materials)))
		}
	}
	return errors.Join(errs...)
}
