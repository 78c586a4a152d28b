package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/glitch"
	"github.com/haermaeus/ttt/splash"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	// Given: no config file
	path := filepath.Join(t.TempDir(), "missing.yml")

	// When: loading the config
	config, err := Load(path)
	require.NoError(t, err)

	// Then: all defaults are applied
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, "text", config.LogFormat)
	require.Empty(t, config.Profile)

	require.Equal(t, "TTT by haermaeus_mora", config.Window.Title)
	require.Equal(t, 1024, config.Window.Width)
	require.Equal(t, 768, config.Window.Height)
	require.False(t, config.Window.FixedSize)

	require.True(t, config.Splash.Transparent)
	require.Equal(t, []float32{0.03, 0.05, 0.15}, config.Splash.BackColor)

	require.True(t, config.Glitch.Smooth)
	require.Equal(t, 30*time.Millisecond, config.Glitch.Speed)
	require.Len(t, config.Glitch.Colors, 6)
}

func TestLoadFile(t *testing.T) {
	// Given: a config file overriding some values
	path := writeConfig(t, `
log-level: debug
window:
  width: 640
splash:
  transparent: false
glitch:
  smooth: false
  speed: 100ms
  colors: ["#ff0000"]
`)

	// When: loading the config
	config, err := Load(path)
	require.NoError(t, err)

	// Then: the file values win over the defaults
	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, 640, config.Window.Width)
	require.Equal(t, 768, config.Window.Height)
	require.False(t, config.Splash.Transparent)
	require.False(t, config.Glitch.Smooth)
	require.Equal(t, 100*time.Millisecond, config.Glitch.Speed)
	require.Equal(t, []string{"#ff0000"}, config.Glitch.Colors)

	// Then: untouched values keep their defaults
	require.Equal(t, 6000.0, config.Splash.SplatForce)
	require.True(t, config.Splash.Shading)
}

func TestLoadEnvironment(t *testing.T) {
	path := writeConfig(t, "log-level: debug\n")

	t.Setenv("TTT_LOG_LEVEL", "warn")
	t.Setenv("TTT_GLITCH_OUTER_VIGNETTE", "true")

	config, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "warn", config.LogLevel)
	require.True(t, config.Glitch.OuterVignette)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "window: [not, a, map\n")

	_, err := Load(path)
	require.Error(t, err)

	require.Panics(t, func() { MustLoad(path) })
}

func TestSplashEffect(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	effect, err := config.Splash.Effect()
	require.NoError(t, err)

	expected := splash.DefaultConfig()
	expected.BackColor = color.RGB(0.03, 0.05, 0.15)

	require.Equal(t, expected, effect)

	config.Splash.BackColor = []float32{1, 0}
	_, err = config.Splash.Effect()
	require.ErrorIs(t, err, splash.ErrInvalidConfig)

	config.Splash.BackColor = []float32{1, 0, 0}
	config.Splash.Curl = -1
	_, err = config.Splash.Effect()
	require.ErrorIs(t, err, splash.ErrInvalidConfig)
}

func TestGlitchEffect(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	effect, err := config.Glitch.Effect()
	require.NoError(t, err)
	require.Equal(t, glitch.DefaultConfig(), effect)

	config.Glitch.Colors = []string{"not-a-color"}
	_, err = config.Glitch.Effect()
	require.ErrorIs(t, err, color.ErrInvalidHex)
}
