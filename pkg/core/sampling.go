package core

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get3D() mgl32.Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() mgl32.Vec3 {
	return mgl32.Vec3{r.random.Float32(), r.random.Float32(), r.random.Float32()}
}

// PixelSampler is a small PCG-hash generator whose whole state is one word.
// It lives on the stack of the goroutine shading a pixel, so pixels never
// share generator state and the sequence depends only on the seed.
type PixelSampler struct {
	state uint32
}

// NewPixelSampler seeds a sampler from a global seed, the frame index and the
// pixel index. The same triple always yields the same sequence.
func NewPixelSampler(seed, frameIndex, pixelIndex uint32) PixelSampler {
	return PixelSampler{state: pcgHash(pixelIndex ^ pcgHash(frameIndex^pcgHash(seed)))}
}

// Get1D returns a pseudo-random float32 in [0, 1)
func (p *PixelSampler) Get1D() float32 {
	p.state = pcgHash(p.state)
	// top 24 bits fit the float32 mantissa exactly
	return float32(p.state>>8) / (1 << 24)
}

// Get3D returns three pseudo-random float32 values in [0, 1)
func (p *PixelSampler) Get3D() mgl32.Vec3 {
	return mgl32.Vec3{p.Get1D(), p.Get1D(), p.Get1D()}
}

// pcgHash is the PCG-RXS-M-XS 32-bit output permutation
func pcgHash(input uint32) uint32 {
	state := input*747796405 + 2891336453
	word := ((state >> ((state >> 28) + 4)) ^ state) * 277803737
	return (word >> 22) ^ word
}

// RandomInRange returns a vector with each component uniform in [lo, hi)
func RandomInRange(sampler Sampler, lo, hi float32) mgl32.Vec3 {
	u := sampler.Get3D()
	span := hi - lo
	return mgl32.Vec3{lo + u[0]*span, lo + u[1]*span, lo + u[2]*span}
}
