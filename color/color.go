// Package color provides a float based color type that is used throughout
// the effects and implements the image/color.Color interface.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

var ErrInvalidHex = errors.New("invalid hex color")

// Color is a non alpha pre-multiplied color value in Color space.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// Hex parses colors in the form "#rgb" or "#rrggbb". The leading '#' is optional.
func Hex(value string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(value), "#")

	// expand the short form, "abc" becomes "aabbcc"
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}

	return RGB(
		float32(rgb>>16&0xff)/255,
		float32(rgb>>8&0xff)/255,
		float32(rgb&0xff)/255,
	), nil
}

// MustHex is like Hex but panics on invalid input.
func MustHex(value string) Color {
	c, err := Hex(value)
	if err != nil {
		panic(err)
	}

	return c
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates linearly between c and other. A value of 0 for f returns c.
func (c Color) Lerp(other Color, f float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*f,
		G: c.G + (other.G-c.G)*f,
		B: c.B + (other.B-c.B)*f,
		A: c.A + (other.A-c.A)*f,
	}
}

// Bytes returns the 8 bit channel values. Fractions are truncated,
// 0.999 maps to 254.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}

func (c Color) String() string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, c.A)
}

func toByte(value float32) uint8 {
	return uint8(clamp(value*255, 0, 255))
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
