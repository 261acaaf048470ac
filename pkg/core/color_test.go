package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPackRGBA_PrimaryColors(t *testing.T) {
	tests := []struct {
		name     string
		color    mgl32.Vec4
		expected uint32
	}{
		{"opaque red", mgl32.Vec4{1, 0, 0, 1}, 0xFF0000FF},
		{"opaque green", mgl32.Vec4{0, 1, 0, 1}, 0xFF00FF00},
		{"opaque blue", mgl32.Vec4{0, 0, 1, 1}, 0xFFFF0000},
		{"opaque white", mgl32.Vec4{1, 1, 1, 1}, 0xFFFFFFFF},
		{"opaque black", mgl32.Vec4{0, 0, 0, 1}, 0xFF000000},
		{"transparent black", mgl32.Vec4{0, 0, 0, 0}, 0x00000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PackRGBA(tt.color), "packed 0x%08X", PackRGBA(tt.color))
		})
	}
}

func TestPackRGBA_Truncates(t *testing.T) {
	// 0.999 * 255 = 254.745 must truncate to 254, not round to 255
	packed := PackRGBA(mgl32.Vec4{0.999, 0.5, 0.0, 1})
	assert.Equal(t, uint32(254), packed&0xFF)
	assert.Equal(t, uint32(127), (packed>>8)&0xFF)
}

func TestPackRGB_OpaqueAlpha(t *testing.T) {
	assert.Equal(t, uint32(0xFF0000FF), PackRGB(mgl32.Vec3{1, 0, 0}))
	assert.Equal(t, PackRGBA(mgl32.Vec4{0.2, 0.4, 0.6, 1}), PackRGB(mgl32.Vec3{0.2, 0.4, 0.6}))
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	// Every 8-bit value in every channel position must survive a round trip
	for b := 0; b < 256; b++ {
		v := uint32(b)
		pixels := []uint32{
			v,
			v << 8,
			v << 16,
			v << 24,
			v | v<<8 | v<<16 | v<<24,
			0xFF000000 | (255-v)<<16 | v<<8 | (v / 2),
		}
		for _, pixel := range pixels {
			if got := PackRGBA(UnpackRGBA(pixel)); got != pixel {
				t.Fatalf("round trip of 0x%08X produced 0x%08X", pixel, got)
			}
		}
	}
}

func TestUnpackRGBA_Normalized(t *testing.T) {
	c := UnpackRGBA(0xFF0000FF)
	assert.InDelta(t, 1.0, c[0], 1e-6)
	assert.InDelta(t, 0.0, c[1], 1e-6)
	assert.InDelta(t, 0.0, c[2], 1e-6)
	assert.InDelta(t, 1.0, c[3], 1e-6)
}
