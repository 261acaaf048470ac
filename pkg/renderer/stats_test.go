package renderer

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0
	// Expected average: 1.0 / 4 = 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	assert.InDelta(t, 0.25, CalculateAverageLuminance(img), 0.0001)
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	assert.InDelta(t, 1.0, CalculateAverageLuminance(img), 0.0001)
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	assert.Equal(t, 0.0, CalculateAverageLuminance(img))
}

func TestFrameTimer(t *testing.T) {
	var ft frameTimer
	assert.Equal(t, FrameStats{}, ft.Stats())

	ft.Record(10 * time.Millisecond)
	ft.Record(30 * time.Millisecond)
	ft.Record(20 * time.Millisecond)

	stats := ft.Stats()
	assert.Equal(t, 20*time.Millisecond, stats.Last)
	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 30*time.Millisecond, stats.Max)
	assert.Equal(t, 20*time.Millisecond, stats.Average)
	assert.Equal(t, 3, stats.Frames)
}

func TestFrameTimerWindow(t *testing.T) {
	var ft frameTimer

	// One slow frame followed by a full window of fast ones drops out of the history
	ft.Record(time.Second)
	for i := 0; i < frameHistorySize; i++ {
		ft.Record(time.Millisecond)
	}

	stats := ft.Stats()
	assert.Equal(t, time.Millisecond, stats.Max)
	assert.Equal(t, time.Millisecond, stats.Average)
	assert.Equal(t, frameHistorySize+1, stats.Frames)
}
