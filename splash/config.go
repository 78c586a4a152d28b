package splash

import (
	"errors"
	"fmt"

	"github.com/haermaeus/ttt/color"
)

var ErrInvalidConfig = errors.New("invalid splash config")

// Config configures the Effect.
//
// Only Transparent and BackColor change what is drawn. The remaining values
// are the tuning knobs of a full fluid simulation. They are accepted and
// validated so existing configurations keep working, but the particle model
// does not read them.
type Config struct {
	SimResolution       int
	DyeResolution       int
	CaptureResolution   int
	DensityDissipation  float64
	VelocityDissipation float64
	Pressure            float64
	PressureIterations  int
	Curl                float64
	SplatRadius         float64
	SplatForce          float64
	Shading             bool
	ColorUpdateSpeed    float64

	// BackColor is used to fill the surface each frame if Transparent is false.
	BackColor color.Color

	// Transparent clears the surface to fully transparent each frame.
	Transparent bool
}

func DefaultConfig() Config {
	return Config{
		SimResolution:       128,
		DyeResolution:       1440,
		CaptureResolution:   512,
		DensityDissipation:  3.5,
		VelocityDissipation: 2,
		Pressure:            0.1,
		PressureIterations:  20,
		Curl:                3,
		SplatRadius:         0.2,
		SplatForce:          6000,
		Shading:             true,
		ColorUpdateSpeed:    10,
		BackColor:           color.RGB(0.5, 0, 0),
		Transparent:         true,
	}
}

func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"sim resolution", float64(c.SimResolution)},
		{"dye resolution", float64(c.DyeResolution)},
		{"capture resolution", float64(c.CaptureResolution)},
		{"density dissipation", c.DensityDissipation},
		{"velocity dissipation", c.VelocityDissipation},
		{"pressure", c.Pressure},
		{"pressure iterations", float64(c.PressureIterations)},
		{"curl", c.Curl},
		{"splat radius", c.SplatRadius},
		{"splat force", c.SplatForce},
		{"color update speed", c.ColorUpdateSpeed},
	}

	for _, check := range checks {
		if check.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, check.name, check.value)
		}
	}

	for _, channel := range []float32{c.BackColor.R, c.BackColor.G, c.BackColor.B} {
		if channel < 0 || channel > 1 {
			return fmt.Errorf("%w: back color %s out of range", ErrInvalidConfig, c.BackColor)
		}
	}

	return nil
}
