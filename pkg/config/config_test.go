package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, "default", c.Scene)
	assert.Equal(t, 2, c.Integrator.Bounces)
	assert.True(t, c.Renderer.Accumulate)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `width: 320
scene: spheregrid
camera:
  fov: 60
renderer:
  multiThreadInner: true
integrator:
  bounces: 0
  backgroundColor: [0.6, 0.7, 0.9]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 360, c.Height, "unset fields keep defaults")
	assert.Equal(t, "spheregrid", c.Scene)
	assert.Equal(t, float32(60), c.Camera.FOV)
	assert.Equal(t, float32(0.1), c.Camera.Near)
	assert.True(t, c.Renderer.MultiThreadInner)
	assert.True(t, c.Renderer.MultiThread)
	assert.Equal(t, 1, c.Integrator.Bounces, "bounces are sanitized")
	assert.Equal(t, mgl32.Vec3{0.6, 0.7, 0.9}, c.Integrator.BackgroundColor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2\n"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := Default()
	original.Frames = 12
	original.Renderer.Seed = 99
	original.Integrator.LightDirection = mgl32.Vec3{1, -2, 0.5}

	require.NoError(t, Save(path, original))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RAYTRACER_WIDTH", "100")
	t.Setenv("RAYTRACER_SCENE", "single")
	t.Setenv("RAYTRACER_SEED", "42")
	t.Setenv("RAYTRACER_MULTI_THREAD", "false")
	t.Setenv("RAYTRACER_S3_BUCKET", "renders")

	c := Default()
	require.NoError(t, c.ApplyEnv())

	assert.Equal(t, 100, c.Width)
	assert.Equal(t, "single", c.Scene)
	assert.Equal(t, uint32(42), c.Renderer.Seed)
	assert.False(t, c.Renderer.MultiThread)
	assert.Equal(t, "renders", c.S3.Bucket)
}

func TestApplyEnvReportsBadValues(t *testing.T) {
	t.Setenv("RAYTRACER_HEIGHT", "tall")
	t.Setenv("RAYTRACER_SEED", "-1")
	t.Setenv("RAYTRACER_FRAMES", "7")

	c := Default()
	err := c.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAYTRACER_HEIGHT")
	assert.Contains(t, err.Error(), "RAYTRACER_SEED")

	assert.Equal(t, 360, c.Height)
	assert.Equal(t, 7, c.Frames)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")), "missing file is ignored")

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("RAYTRACER_FRAMES=5\n"), 0644))
	t.Setenv("RAYTRACER_FRAMES", "")
	os.Unsetenv("RAYTRACER_FRAMES")

	require.NoError(t, LoadDotEnv(path))
	c := Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, 5, c.Frames)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative frames", func(c *Config) { c.Frames = -1 }, true},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := Default()
			c.LogLevel = tt.in
			assert.Equal(t, tt.want, c.Level())
		})
	}
}
