package renderer

import (
	"context"
	"image"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	Frames        int // Number of frames to accumulate
	SnapshotEvery int // Emit an image every N frames (0 or 1 = every frame); the last frame is always emitted
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		Frames:        64,
		SnapshotEvery: 8,
	}
}

// FrameResult contains a snapshot of the accumulated image
type FrameResult struct {
	FrameIndex uint32      // Number of frames averaged into Image
	Image      *image.RGBA // Copy of the output buffer
	Stats      FrameStats
	IsLast     bool
}

// RenderProgressive accumulates frames with channel-based communication.
// Returns channels for events. The caller should read from these channels in
// separate goroutines. Cancellation is observed between frames, never inside
// one. The renderer must not be used by anyone else until the result channel
// closes.
func RenderProgressive(ctx context.Context, r *Renderer, s *scene.Scene, cam core.Camera, config ProgressiveConfig) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	frames := max(config.Frames, 1)
	every := max(config.SnapshotEvery, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)

		r.Settings().Accumulate = true
		r.ResetFrameIndex()

		r.logger.Printf("Starting progressive rendering with %d frames...\n", frames)

		for frame := 1; frame <= frames; frame++ {
			// Check if client disconnected before starting this frame
			select {
			case <-ctx.Done():
				r.logger.Printf("Rendering cancelled before frame %d\n", frame)
				errChan <- ctx.Err()
				return
			default:
			}

			r.Render(s, cam)

			isLast := frame == frames
			if frame%every != 0 && !isLast {
				continue
			}

			result := FrameResult{
				FrameIndex: uint32(frame),
				Image:      r.RGBA(),
				Stats:      r.Stats(),
				IsLast:     isLast,
			}

			select {
			case frameChan <- result:
			case <-ctx.Done():
				return
			}
		}

		r.logger.Printf("Progressive rendering finished after %d frames\n", frames)
	}()

	return frameChan, errChan
}
