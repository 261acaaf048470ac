package material

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

func TestNewMaterial_Clamps(t *testing.T) {
	m := NewMaterial(mgl32.Vec3{1.5, -0.2, 0.5}, 2, -1)

	assert.Equal(t, mgl32.Vec3{1, 0, 0.5}, m.Albedo)
	assert.Equal(t, float32(1), m.Roughness)
	assert.Equal(t, float32(0), m.Metallic)
}

func TestMaterial_Scatter_MirrorIsDeterministic(t *testing.T) {
	mirror := NewMaterial(mgl32.Vec3{1, 1, 1}, 0, 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	incoming := mgl32.Vec3{1, -1, 0}
	normal := mgl32.Vec3{0, 1, 0}

	for i := 0; i < 10; i++ {
		out := mirror.Scatter(incoming, normal, sampler)
		assert.True(t, out.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-6), "got %v", out)
	}
}

func TestMaterial_PerturbNormal_BoundedByRoughness(t *testing.T) {
	tests := []struct {
		name      string
		roughness float32
	}{
		{"slightly rough", 0.1},
		{"half rough", 0.5},
		{"fully rough", 1.0},
	}

	normal := mgl32.Vec3{0, 1, 0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial(mgl32.Vec3{1, 1, 1}, tt.roughness, 0)
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

			for i := 0; i < 200; i++ {
				offset := m.PerturbNormal(normal, sampler).Sub(normal)
				for c := 0; c < 3; c++ {
					assert.LessOrEqual(t, offset[c], 0.5*tt.roughness+1e-6)
					assert.GreaterOrEqual(t, offset[c], -0.5*tt.roughness-1e-6)
				}
			}
		})
	}
}

func TestMaterial_Scatter_RoughSpreads(t *testing.T) {
	rough := NewMaterial(mgl32.Vec3{1, 1, 1}, 1, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	incoming := mgl32.Vec3{0, -1, 0}
	normal := mgl32.Vec3{0, 1, 0}

	first := rough.Scatter(incoming, normal, sampler)
	differs := false
	for i := 0; i < 20; i++ {
		if !rough.Scatter(incoming, normal, sampler).ApproxEqualThreshold(first, 1e-6) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "rough material should produce varying reflections")
}
