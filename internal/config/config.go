package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/glitch"
	"github.com/haermaeus/ttt/splash"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TTT_LOG_FORMAT" env-default:"text"`

	// Profile enables profiling, either "cpu" or "mem".
	Profile string `yaml:"profile" env:"TTT_PROFILE"`

	Window Window `yaml:"window"`
	Splash Splash `yaml:"splash"`
	Glitch Glitch `yaml:"glitch"`
}

type Window struct {
	Title     string `yaml:"title" env:"TTT_WINDOW_TITLE" env-default:"TTT by haermaeus_mora"`
	Width     int    `yaml:"width" env:"TTT_WINDOW_WIDTH" env-default:"1024"`
	Height    int    `yaml:"height" env:"TTT_WINDOW_HEIGHT" env-default:"768"`
	FixedSize bool   `yaml:"fixed-size" env:"TTT_WINDOW_FIXED_SIZE"`
}

type Splash struct {
	Transparent bool      `yaml:"transparent" env:"TTT_SPLASH_TRANSPARENT"`
	BackColor   []float32 `yaml:"back-color" env:"TTT_SPLASH_BACK_COLOR" env-default:"0.03,0.05,0.15"`

	SimResolution       int     `yaml:"sim-resolution" env-default:"128"`
	DyeResolution       int     `yaml:"dye-resolution" env-default:"1440"`
	CaptureResolution   int     `yaml:"capture-resolution" env-default:"512"`
	DensityDissipation  float64 `yaml:"density-dissipation" env-default:"3.5"`
	VelocityDissipation float64 `yaml:"velocity-dissipation" env-default:"2"`
	Pressure            float64 `yaml:"pressure" env-default:"0.1"`
	PressureIterations  int     `yaml:"pressure-iterations" env-default:"20"`
	Curl                float64 `yaml:"curl" env-default:"3"`
	SplatRadius         float64 `yaml:"splat-radius" env-default:"0.2"`
	SplatForce          float64 `yaml:"splat-force" env-default:"6000"`
	Shading             bool    `yaml:"shading"`
	ColorUpdateSpeed    float64 `yaml:"color-update-speed" env-default:"10"`
}

type Glitch struct {
	Colors         []string      `yaml:"colors" env:"TTT_GLITCH_COLORS" env-default:"#8b5cf6,#a855f7,#c084fc,#e879f9,#7c3aed,#6d28d9"`
	Speed          time.Duration `yaml:"speed" env:"TTT_GLITCH_SPEED" env-default:"30ms"`
	CenterVignette bool          `yaml:"center-vignette" env:"TTT_GLITCH_CENTER_VIGNETTE"`
	OuterVignette  bool          `yaml:"outer-vignette" env:"TTT_GLITCH_OUTER_VIGNETTE"`
	Smooth         bool          `yaml:"smooth" env:"TTT_GLITCH_SMOOTH"`

	// Characters defaults to glitch.DefaultCharacters if empty.
	Characters string `yaml:"characters" env:"TTT_GLITCH_CHARACTERS"`
}

// newConfig returns a config with all booleans that default to true already set.
// env-default can not tell an explicit false in the file from a missing value.
func newConfig() *Config {
	return &Config{
		Splash: Splash{
			Transparent: true,
			Shading:     true,
		},
		Glitch: Glitch{
			Smooth: true,
		},
	}
}

// Load reads the config file at path. Environment variables take precedence
// over values in the file. If the file does not exist, the config is read
// from the environment and the defaults only.
func Load(path string) (*Config, error) {
	config := newConfig()

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}

	case err != nil:
		return nil, fmt.Errorf("stat config file %q: %w", path, err)

	default:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Effect converts the section into the config of the splash effect.
func (that Splash) Effect() (splash.Config, error) {
	if len(that.BackColor) != 3 {
		return splash.Config{}, fmt.Errorf("%w: back color needs three channels, got %d",
			splash.ErrInvalidConfig, len(that.BackColor))
	}

	config := splash.Config{
		SimResolution:       that.SimResolution,
		DyeResolution:       that.DyeResolution,
		CaptureResolution:   that.CaptureResolution,
		DensityDissipation:  that.DensityDissipation,
		VelocityDissipation: that.VelocityDissipation,
		Pressure:            that.Pressure,
		PressureIterations:  that.PressureIterations,
		Curl:                that.Curl,
		SplatRadius:         that.SplatRadius,
		SplatForce:          that.SplatForce,
		Shading:             that.Shading,
		ColorUpdateSpeed:    that.ColorUpdateSpeed,
		BackColor:           color.RGB(that.BackColor[0], that.BackColor[1], that.BackColor[2]),
		Transparent:         that.Transparent,
	}

	if err := config.Validate(); err != nil {
		return splash.Config{}, err
	}

	return config, nil
}

// Effect converts the section into the config of the glitch background.
func (that Glitch) Effect() (glitch.Config, error) {
	colors, err := glitch.ParseColors(that.Colors)
	if err != nil {
		return glitch.Config{}, err
	}

	config := glitch.Config{
		Colors:         colors,
		Speed:          that.Speed,
		CenterVignette: that.CenterVignette,
		OuterVignette:  that.OuterVignette,
		Smooth:         that.Smooth,
		Characters:     that.Characters,
	}

	if config.Characters == "" {
		config.Characters = glitch.DefaultCharacters
	}

	if err := config.Validate(); err != nil {
		return glitch.Config{}, err
	}

	return config, nil
}
