package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Reflect calculates the reflection of v about a surface with normal n.
// n is expected to be unit length.
func Reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when v has no length.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / length)
}

// Clamp4 returns a vector with every component clamped to [minVal, maxVal]
func Clamp4(v mgl32.Vec4, minVal, maxVal float32) mgl32.Vec4 {
	return mgl32.Vec4{
		math32.Max(minVal, math32.Min(maxVal, v[0])),
		math32.Max(minVal, math32.Min(maxVal, v[1])),
		math32.Max(minVal, math32.Min(maxVal, v[2])),
		math32.Max(minVal, math32.Min(maxVal, v[3])),
	}
}

// Luminance returns the Rec. 709 luminance of an RGB color
func Luminance(c mgl32.Vec3) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}
