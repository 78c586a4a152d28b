package glitch

import (
	"errors"
	"fmt"
	"time"

	"github.com/haermaeus/ttt/color"
)

var ErrInvalidConfig = errors.New("invalid glitch config")

const DefaultCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ!@#$&*()-_+=/[]{};:<>.,0123456789"

type Config struct {
	// Colors the letters are painted with. Must not be empty.
	Colors []color.Color

	// Speed is the interval between two updates of the grid.
	Speed time.Duration

	CenterVignette bool
	OuterVignette  bool

	// Smooth fades letters into their new color instead of switching instantly.
	Smooth bool

	Characters string
}

func DefaultConfig() Config {
	return Config{
		Colors: []color.Color{
			color.MustHex("#8b5cf6"),
			color.MustHex("#a855f7"),
			color.MustHex("#c084fc"),
			color.MustHex("#e879f9"),
			color.MustHex("#7c3aed"),
			color.MustHex("#6d28d9"),
		},
		Speed:      30 * time.Millisecond,
		Smooth:     true,
		Characters: DefaultCharacters,
	}
}

// ParseColors parses a list of hex colors like "#a855f7".
func ParseColors(values []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(values))

	for _, value := range values {
		c, err := color.Hex(value)
		if err != nil {
			return nil, fmt.Errorf("parse glitch color %q: %w", value, err)
		}

		colors = append(colors, c)
	}

	return colors, nil
}

func (c Config) Validate() error {
	switch {
	case len(c.Colors) == 0:
		return fmt.Errorf("%w: no colors", ErrInvalidConfig)
	case c.Characters == "":
		return fmt.Errorf("%w: no characters", ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %s", ErrInvalidConfig, c.Speed)
	}

	return nil
}
