package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-interactive-raytracer/pkg/export"
	"github.com/df07/go-interactive-raytracer/pkg/integrator"
	"github.com/df07/go-interactive-raytracer/pkg/renderer"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "RAYTRACER_"

type CameraCfg struct {
	FOV      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position mgl32.Vec3 `yaml:"position,flow"`
	Target   mgl32.Vec3 `yaml:"target,flow"`
}

type ServerCfg struct {
	Addr      string `yaml:"addr"`
	MaxFrames int    `yaml:"max_frames"` // upper bound for a single web render
}

type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Frames   int    `yaml:"frames"`
	Scene    string `yaml:"scene"` // built-in name or path to a .yaml scene
	Output   string `yaml:"output"`
	Workers  int    `yaml:"workers"` // 0 = one per CPU
	LogLevel string `yaml:"log_level"`

	Camera     CameraCfg           `yaml:"camera"`
	Renderer   renderer.Settings   `yaml:"renderer"`
	Integrator integrator.Settings `yaml:"integrator"`
	Server     ServerCfg           `yaml:"server"`
	S3         export.S3Config     `yaml:"s3,omitempty"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Width:    640,
		Height:   360,
		Frames:   64,
		Scene:    "default",
		Output:   "output",
		LogLevel: "info",
		Camera: CameraCfg{
			FOV:      45,
			Near:     0.1,
			Far:      100,
			Position: mgl32.Vec3{0, 0, 6},
			Target:   mgl32.Vec3{0, 0, 0},
		},
		Renderer:   renderer.DefaultSettings(),
		Integrator: integrator.DefaultSettings(),
		Server: ServerCfg{
			Addr:      ":8080",
			MaxFrames: 1024,
		},
	}
}

// Load reads a YAML config file on top of the defaults
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.Integrator = c.Integrator.Sanitized()
	return c, nil
}

// Save writes the config as YAML
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, b, 0644)
}

// LoadDotEnv loads a .env file into the process environment without
// overwriting variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from RAYTRACER_* environment variables. Every
// malformed value is reported; well-formed ones are still applied.
func (c *Config) ApplyEnv() error {
	var errs []error

	setInt := func(name string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	setInt("WIDTH", &c.Width)
	setInt("HEIGHT", &c.Height)
	setInt("FRAMES", &c.Frames)
	setInt("WORKERS", &c.Workers)
	setInt("BOUNCES", &c.Integrator.Bounces)
	setString("SCENE", &c.Scene)
	setString("OUTPUT", &c.Output)
	setString("LOG_LEVEL", &c.LogLevel)
	setString("ADDR", &c.Server.Addr)
	setBool("ACCUMULATE", &c.Renderer.Accumulate)
	setBool("MULTI_THREAD", &c.Renderer.MultiThread)
	setBool("MULTI_THREAD_INNER", &c.Renderer.MultiThreadInner)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Renderer.Seed = uint32(seed)
		}
	}

	setString("S3_BUCKET", &c.S3.Bucket)
	setString("S3_REGION", &c.S3.Region)
	setString("S3_ENDPOINT", &c.S3.Endpoint)
	setString("S3_ACCESS_KEY", &c.S3.AccessKey)
	setString("S3_SECRET_KEY", &c.S3.SecretKey)
	setString("S3_PREFIX", &c.S3.Prefix)

	c.Integrator = c.Integrator.Sanitized()
	return errors.Join(errs...)
}

// Validate reports settings no render can run with
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Frames <= 0 {
		errs = append(errs, fmt.Errorf("frames %d must be positive", c.Frames))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be in (0, 180)", c.Camera.FOV))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel, falling back to info for empty or unknown names
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
