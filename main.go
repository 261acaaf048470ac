package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/df07/go-interactive-raytracer/pkg/camera"
	"github.com/df07/go-interactive-raytracer/pkg/config"
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/export"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
	"github.com/df07/go-interactive-raytracer/pkg/scene"
)

// options are the command line overrides applied on top of the config
type options struct {
	Scene    string
	Frames   int
	Width    int
	Height   int
	Out      string
	Flip     bool
	S3Bucket string
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		envPath    = flag.String("env", ".env", "path to a .env file with RAYTRACER_* overrides")
		sceneName  = flag.String("scene", "", "built-in scene name or path to a .yaml scene")
		frames     = flag.Int("frames", 0, "frames to accumulate")
		width      = flag.Int("width", 0, "image width")
		height     = flag.Int("height", 0, "image height")
		out        = flag.String("out", "", "output file (.png, .jpg, .bmp, .tiff)")
		flip       = flag.Bool("flip", false, "flip the image vertically before saving")
		s3Bucket   = flag.String("s3-bucket", "", "also upload the render to this S3 bucket")
		help       = flag.Bool("help", false, "Show help information")
	)
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	opts := options{
		Scene:    *sceneName,
		Frames:   *frames,
		Width:    *width,
		Height:   *height,
		Out:      *out,
		Flip:     *flip,
		S3Bucket: *s3Bucket,
	}
	applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filename, err := run(ctx, cfg, opts, log.Logger, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	log.Info().Str("file", filename).Msg("render saved")
}

func printHelp() {
	fmt.Println("Interactive Raytracer (headless)")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, name := range scene.Names() {
		fmt.Printf("  %s\n", name)
	}
	if files, err := scene.ListFileScenes(); err == nil {
		for _, info := range files {
			fmt.Printf("  %s (%s)\n", info.FilePath, info.Name)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

// loadConfig reads the optional config file, then the optional .env file,
// then environment overrides
func loadConfig(configPath, envPath string) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if envPath != "" {
		if err := config.LoadDotEnv(envPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOptions copies every non-zero flag into the config
func applyOptions(cfg *config.Config, opts options) {
	if opts.Scene != "" {
		cfg.Scene = opts.Scene
	}
	if opts.Frames > 0 {
		cfg.Frames = opts.Frames
	}
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}
	if opts.S3Bucket != "" {
		cfg.S3.Bucket = opts.S3Bucket
	}
}

// sceneDirName turns a scene name or file path into a directory name
func sceneDirName(name string) string {
	name = strings.TrimPrefix(name, "yaml:")
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputPath returns the explicit output file or a timestamped default
func outputPath(cfg *config.Config, out string, now time.Time) string {
	if out != "" {
		return out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(cfg.Output, sceneDirName(cfg.Scene), fmt.Sprintf("render_%s.png", timestamp))
}

// run renders cfg.Frames accumulated frames and saves the result. When ctx
// is cancelled mid-render the frames finished so far are still saved.
func run(ctx context.Context, cfg *config.Config, opts options, logger zerolog.Logger, now time.Time) (string, error) {
	s, err := scene.ByName(cfg.Scene)
	if err != nil {
		return "", err
	}
	if err := s.Validate(); err != nil {
		logger.Warn().Err(err).Str("scene", cfg.Scene).Msg("scene has problems; rendering anyway")
	}

	cam := camera.NewLookAt(cfg.Camera.Position, cfg.Camera.Target, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	cam.Resize(cfg.Width, cfg.Height)

	r := renderer.NewRenderer(cfg.Renderer, cfg.Integrator, cfg.Workers,
		core.NewZerologLogger(logger).WithLevel(zerolog.DebugLevel))
	defer r.Close()
	r.Resize(cfg.Width, cfg.Height)

	logger.Info().
		Str("scene", cfg.Scene).
		Int("spheres", s.GetPrimitiveCount()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("frames", cfg.Frames).
		Int("bounces", cfg.Integrator.Bounces).
		Msg("starting render")

	start := time.Now()
	frameChan, errChan := renderer.RenderProgressive(ctx, r, s, cam,
		renderer.ProgressiveConfig{Frames: cfg.Frames, SnapshotEvery: max(cfg.Frames/8, 1)})

	img, err := collectFrames(ctx, r, frameChan, errChan, cfg.Frames, logger)
	if err != nil {
		return "", err
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("render completed")

	filename := outputPath(cfg, opts.Out, now)
	saveOpts := export.Options{FlipVertical: opts.Flip}
	if err := export.Save(filename, img, saveOpts); err != nil {
		return "", err
	}

	if cfg.S3.Bucket != "" {
		uploader, err := export.NewS3Uploader(cfg.S3, core.NewZerologLogger(logger))
		if err != nil {
			return filename, err
		}
		// Upload uses its own timeout so an interrupt does not abort it
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		key := sceneDirName(cfg.Scene) + "/" + base + ".png"
		if err := uploader.Upload(context.Background(), key, img, saveOpts); err != nil {
			return filename, err
		}
	}

	return filename, nil
}

// collectFrames drains the progressive render and returns the image to save.
// Once ctx is cancelled the last snapshot may predate frames that finished
// afterwards, so the renderer's current output is read back instead.
func collectFrames(ctx context.Context, r *renderer.Renderer, frameChan <-chan renderer.FrameResult,
	errChan <-chan error, frames int, logger zerolog.Logger) (image.Image, error) {
	var img image.Image
	var lastFrame uint32
	for result := range frameChan {
		img = result.Image
		lastFrame = result.FrameIndex
		logger.Info().
			Uint32("frame", result.FrameIndex).
			Int("of", frames).
			Dur("avg_frame", result.Stats.Average).
			Float64("luminance", renderer.CalculateAverageLuminance(result.Image)).
			Msg("progress")
	}

	if err := <-errChan; err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	if ctx.Err() != nil {
		logger.Warn().Uint32("frames", lastFrame).Msg("render interrupted; saving partial result")
		return r.RGBA(), nil
	}
	if img == nil {
		img = r.RGBA()
	}
	return img, nil
}
