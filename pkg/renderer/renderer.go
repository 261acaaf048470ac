package renderer

import (
	"encoding/binary"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// Settings control how frames are produced. They are plain fields read at
// the start of every frame.
type Settings struct {
	Accumulate       bool   `yaml:"accumulate" json:"accumulate"`             // Average frames until reset
	MultiThread      bool   `yaml:"multiThread" json:"multiThread"`           // Render rows on the worker pool
	MultiThreadInner bool   `yaml:"multiThreadInner" json:"multiThreadInner"` // Also split each row across goroutines; only with MultiThread
	Seed             uint32 `yaml:"seed" json:"seed"`                         // Base seed of the per-pixel samplers
}

// DefaultSettings returns the interactive defaults: accumulation and row
// parallelism on
func DefaultSettings() Settings {
	return Settings{
		Accumulate:  true,
		MultiThread: true,
		Seed:        1,
	}
}

// frameJob is the read-only state shared by every row of one frame
type frameJob struct {
	scene      *scene.Scene
	camera     core.Camera
	frameIndex uint32
	sampleKey  uint32 // frame term of the sampler seed
	inner      bool
}

// Renderer turns a scene and camera into a packed RGBA image, averaging
// successive frames while the view is unchanged.
//
// Resize must not be called while Render is running.
type Renderer struct {
	width, height int
	image         []uint32
	accumulator   *Accumulator

	settings   Settings
	tracer     *integrator.PathTracer
	integrator integrator.Integrator
	workerPool *WorkerPool
	rawFrames  uint32 // frames rendered with accumulation off
	timer      frameTimer
	logger     core.Logger
}

// NewRenderer creates a renderer with no image; call Resize before Render.
// numWorkers <= 0 uses one worker per CPU.
func NewRenderer(settings Settings, shading integrator.Settings, numWorkers int, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger()
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tracer := integrator.NewPathTracer(shading)
	r := &Renderer{
		accumulator: NewAccumulator(0),
		settings:    settings,
		tracer:      tracer,
		integrator:  tracer,
		logger:      logger,
	}
	r.workerPool = NewWorkerPool(numWorkers, r.renderRow)
	return r
}

// Resize reallocates the image and accumulation buffers together. It returns
// false without touching anything when the size is unchanged.
func (r *Renderer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if r.image != nil && width == r.width && height == r.height {
		return false
	}

	r.width, r.height = width, height
	r.image = make([]uint32, width*height)
	r.accumulator.Resize(width * height)
	r.logger.Printf("Resized render target to %dx%d\n", width, height)
	return true
}

// Render produces one frame. On the first frame of an epoch the
// accumulation buffer is cleared; afterwards the frame index advances when
// accumulating. The camera must supply width*height ray directions.
func (r *Renderer) Render(s *scene.Scene, cam core.Camera) {
	if r.width == 0 || r.height == 0 {
		return
	}

	start := time.Now()
	settings := r.settings

	r.accumulator.BeginFrame()
	job := &frameJob{
		scene:      s,
		camera:     cam,
		frameIndex: r.accumulator.FrameIndex(),
		inner:      settings.MultiThread && settings.MultiThreadInner,
	}
	// Accumulated frames are keyed by their index so an epoch replays
	// exactly; raw frames each draw fresh noise.
	job.sampleKey = job.frameIndex
	if !settings.Accumulate {
		r.rawFrames++
		job.sampleKey = ^r.rawFrames
	}

	if settings.MultiThread {
		r.renderParallel(job)
	} else {
		for y := 0; y < r.height; y++ {
			r.renderRow(RowTask{Row: y, Frame: job})
		}
	}

	r.accumulator.EndFrame(settings.Accumulate)

	elapsed := time.Since(start)
	r.timer.Record(elapsed)
	r.logger.Printf("Frame %d rendered in %v\n", job.frameIndex, elapsed)
}

// renderParallel fans rows out to the worker pool and waits for all of them
func (r *Renderer) renderParallel(job *frameJob) {
	r.workerPool.Start()

	go func() {
		for y := 0; y < r.height; y++ {
			r.workerPool.SubmitTask(RowTask{Row: y, Frame: job})
		}
	}()

	for i := 0; i < r.height; i++ {
		if _, ok := r.workerPool.GetResult(); !ok {
			return
		}
	}
}

// renderRow shades every pixel of one row, optionally splitting the row
// into column chunks across goroutines
func (r *Renderer) renderRow(task RowTask) {
	job := task.Frame
	if !job.inner {
		r.renderSpan(job, task.Row, 0, r.width)
		return
	}

	chunks := min(r.workerPool.GetNumWorkers(), r.width)
	chunkWidth := (r.width + chunks - 1) / chunks

	var wg sync.WaitGroup
	for x0 := 0; x0 < r.width; x0 += chunkWidth {
		x1 := min(x0+chunkWidth, r.width)
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			r.renderSpan(job, task.Row, x0, x1)
		}(x0, x1)
	}
	wg.Wait()
}

// renderSpan shades pixels [x0, x1) of row y
func (r *Renderer) renderSpan(job *frameJob, y, x0, x1 int) {
	seed := r.settings.Seed
	for x := x0; x < x1; x++ {
		i := x + y*r.width
		sampler := core.NewPixelSampler(seed, job.sampleKey, uint32(i))
		sample := integrator.PerPixel(r.integrator, job.scene, job.camera, x, y, r.width, &sampler)
		r.image[i] = core.PackRGBA(r.accumulator.Add(i, sample, job.frameIndex))
	}
}

// Image returns the packed output buffer, one pixel per element, row 0 at
// the top. The slice is reused across frames.
func (r *Renderer) Image() []uint32 {
	return r.image
}

// RGBA copies the output buffer into a new image
func (r *Renderer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for i, p := range r.image {
		// Packed layout is R in the low byte, matching RGBA byte order
		binary.LittleEndian.PutUint32(img.Pix[i*4:], p)
	}
	return img
}

// Width returns the image width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the image height in pixels
func (r *Renderer) Height() int { return r.height }

// FrameIndex returns the index of the next frame to render
func (r *Renderer) FrameIndex() uint32 {
	return r.accumulator.FrameIndex()
}

// ResetFrameIndex discards the accumulated history on the next frame
func (r *Renderer) ResetFrameIndex() {
	r.accumulator.ResetFrameIndex()
}

// Settings returns the renderer settings for in-place modification
func (r *Renderer) Settings() *Settings {
	return &r.settings
}

// Integrator returns the shading settings for in-place modification
func (r *Renderer) Integrator() *integrator.Settings {
	return &r.tracer.Settings
}

// Stats returns render times over recent frames
func (r *Renderer) Stats() FrameStats {
	return r.timer.Stats()
}

// Close stops the worker pool. The renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.workerPool.Stop()
}
