package glitch

import (
	"image"
	"math"
	"sync"
)

const vignetteSize = 256

// OuterVignette darkens the edges: transparent up to 60% of the distance
// to the corners, fully black at the corners.
var OuterVignette = sync.OnceValue(func() image.Image {
	return radialAlpha(func(d float64) float64 {
		return linearRamp(d, 0.6, 1)
	})
})

// CenterVignette darkens the center: 80% black in the middle, fading out
// at 60% of the distance to the corners.
var CenterVignette = sync.OnceValue(func() image.Image {
	return radialAlpha(func(d float64) float64 {
		return 0.8 * (1 - linearRamp(d, 0, 0.6))
	})
})

// radialAlpha renders a black image with the alpha given by fn. The argument to fn is
// the distance to the center, normalized to the distance of the corners.
func radialAlpha(fn func(d float64) float64) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, vignetteSize, vignetteSize))

	const center = vignetteSize / 2.0
	corner := math.Hypot(center, center)

	for y := range vignetteSize {
		for x := range vignetteSize {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center) / corner

			// black with premultiplied alpha, only the alpha channel is set
			alpha := math.Round(math.Max(0, math.Min(1, fn(d))) * 255)
			img.Pix[img.PixOffset(x, y)+3] = uint8(alpha)
		}
	}

	return img
}

// linearRamp is zero below lo, one above hi and linear in between.
func linearRamp(value, lo, hi float64) float64 {
	switch {
	case value <= lo:
		return 0
	case value >= hi:
		return 1
	default:
		return (value - lo) / (hi - lo)
	}
}
