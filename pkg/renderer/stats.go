package renderer

import (
	"image"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
)

// frameHistorySize is how many recent frame times feed the min/max/average
const frameHistorySize = 100

// FrameStats summarizes recent render times
type FrameStats struct {
	Last    time.Duration `json:"last"`    // Duration of the most recent frame
	Min     time.Duration `json:"min"`     // Fastest frame in the history window
	Max     time.Duration `json:"max"`     // Slowest frame in the history window
	Average time.Duration `json:"average"` // Mean over the history window
	Frames  int           `json:"frames"`  // Frames rendered since creation
}

// frameTimer is a fixed-size ring of recent frame durations
type frameTimer struct {
	history [frameHistorySize]time.Duration
	next    int
	count   int
	frames  int
	last    time.Duration
}

// Record adds a frame duration to the history
func (ft *frameTimer) Record(d time.Duration) {
	ft.history[ft.next] = d
	ft.next = (ft.next + 1) % frameHistorySize
	if ft.count < frameHistorySize {
		ft.count++
	}
	ft.frames++
	ft.last = d
}

// Stats summarizes the recorded history
func (ft *frameTimer) Stats() FrameStats {
	stats := FrameStats{Last: ft.last, Frames: ft.frames}
	if ft.count == 0 {
		return stats
	}

	var total time.Duration
	stats.Min = ft.history[0]
	for i := 0; i < ft.count; i++ {
		d := ft.history[i]
		total += d
		stats.Min = min(stats.Min, d)
		stats.Max = max(stats.Max, d)
	}
	stats.Average = total / time.Duration(ft.count)
	return stats
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image,
// with channels normalized to [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			rgb := mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
			total += float64(core.Luminance(rgb))
		}
	}

	return total / float64(pixels)
}
