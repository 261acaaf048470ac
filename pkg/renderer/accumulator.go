package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// Accumulator holds the running per-pixel sum of samples for the current
// epoch and the index of the frame being rendered. An epoch starts whenever
// the frame index is 1; the average over an epoch is sum / frameIndex.
type Accumulator struct {
	data       []mgl32.Vec4
	frameIndex uint32
}

// NewAccumulator creates an accumulator for size pixels at frame index 1
func NewAccumulator(size int) *Accumulator {
	return &Accumulator{
		data:       make([]mgl32.Vec4, size),
		frameIndex: 1,
	}
}

// Resize reallocates the buffer for size pixels and starts a new epoch
func (a *Accumulator) Resize(size int) {
	a.data = make([]mgl32.Vec4, size)
	a.frameIndex = 1
}

// Len returns the number of pixels in the buffer
func (a *Accumulator) Len() int {
	return len(a.data)
}

// FrameIndex returns the index of the frame about to be rendered
func (a *Accumulator) FrameIndex() uint32 {
	return a.frameIndex
}

// ResetFrameIndex starts a new epoch on the next frame
func (a *Accumulator) ResetFrameIndex() {
	a.frameIndex = 1
}

// BeginFrame zeroes the buffer when a new epoch starts
func (a *Accumulator) BeginFrame() {
	if a.frameIndex == 1 {
		clear(a.data)
	}
}

// Add accumulates one sample into pixel i and returns the displayable
// average, clamped to [0,1]. The stored sum is never clamped. Distinct
// pixels may be added from different goroutines.
func (a *Accumulator) Add(i int, sample mgl32.Vec4, frameIndex uint32) mgl32.Vec4 {
	a.data[i] = a.data[i].Add(sample)
	return core.Clamp4(a.data[i].Mul(1/float32(frameIndex)), 0, 1)
}

// At returns the raw accumulated sum for pixel i
func (a *Accumulator) At(i int) mgl32.Vec4 {
	return a.data[i]
}

// EndFrame advances the frame index when accumulating, otherwise pins it to 1
func (a *Accumulator) EndFrame(accumulate bool) {
	if accumulate {
		a.frameIndex++
	} else {
		a.frameIndex = 1
	}
}
