package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PackRGBA converts a normalized color into a packed 32-bit pixel laid out as
// (a<<24)|(b<<16)|(g<<8)|r. Channels are truncated, not rounded, and no gamma
// is applied. Input must already be clamped to [0,1].
func PackRGBA(color mgl32.Vec4) uint32 {
	r := uint8(color[0] * 255.0)
	g := uint8(color[1] * 255.0)
	b := uint8(color[2] * 255.0)
	a := uint8(color[3] * 255.0)
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// PackRGB packs an RGB color with a fully opaque alpha channel
func PackRGB(color mgl32.Vec3) uint32 {
	return PackRGBA(color.Vec4(1))
}

// UnpackRGBA expands a packed pixel back into a normalized color.
// Each channel is the smallest float32 that packs back to the same byte.
func UnpackRGBA(pixel uint32) mgl32.Vec4 {
	return mgl32.Vec4{
		unpackChannel(uint8(pixel)),
		unpackChannel(uint8(pixel >> 8)),
		unpackChannel(uint8(pixel >> 16)),
		unpackChannel(uint8(pixel >> 24)),
	}
}

func unpackChannel(b uint8) float32 {
	c := float32(b) / 255.0
	if float64(c)*255.0 < float64(b) {
		c = math.Nextafter32(c, 2)
	}
	return c
}
