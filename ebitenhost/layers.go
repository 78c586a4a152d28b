package ebitenhost

import (
	"image"
	"math"
	"slices"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Layers holds the drawing surfaces of all components. Layers are drawn to the
// screen in the order of their Z value, lowest first.
type Layers struct {
	layers []*Layer
}

// Acquire creates a new, empty layer. Layers start with a size of zero
// and must be resized before use.
func (l *Layers) Acquire(z float64, fonts *Fonts) *Layer {
	layer := &Layer{Z: z, fonts: fonts}

	l.layers = append(l.layers, layer)

	slices.SortStableFunc(l.layers, func(a, b *Layer) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		default:
			return 0
		}
	})

	return layer
}

// Release removes the layer. Its image is freed.
func (l *Layers) Release(layer *Layer) {
	l.layers = slices.DeleteFunc(l.layers, func(other *Layer) bool {
		return other == layer
	})

	// resizing to zero frees the image and all cached images
	layer.Resize(gm.VecZero)
}

func (l *Layers) Len() int {
	return len(l.layers)
}

func compositeLayersSystem(world *ttt.World) {
	screen := ttt.MustResourceOf[screenRenderTarget](world).Image
	if screen == nil {
		return
	}

	screen.Clear()

	for _, layer := range ttt.MustResourceOf[Layers](world).layers {
		if layer.image != nil {
			screen.DrawImage(layer.image, nil)
		}
	}
}

// Layer is an offscreen image covering the viewport.
type Layer struct {
	Z float64

	fonts *Fonts
	image *ebiten.Image
	size  gm.Vec

	imageCache map[image.Image]*ebiten.Image
}

func (l *Layer) Size() gm.Vec {
	return l.size
}

// Resize reallocates the backing image. The content of the layer is lost.
func (l *Layer) Resize(size gm.Vec) {
	width := int(math.Ceil(size.X))
	height := int(math.Ceil(size.Y))

	l.size = size

	for _, cached := range l.imageCache {
		cached.Deallocate()
	}

	clear(l.imageCache)

	if l.image != nil {
		b := l.image.Bounds()
		if b.Dx() == width && b.Dy() == height {
			l.image.Clear()
			return
		}

		l.image.Deallocate()
		l.image = nil
	}

	if width > 0 && height > 0 {
		l.image = ebiten.NewImage(width, height)
	}
}

func (l *Layer) Clear() {
	if l.image != nil {
		l.image.Clear()
	}
}

func (l *Layer) Fill(c color.Color) {
	if l.image != nil {
		l.image.Fill(c)
	}
}

func (l *Layer) FillCircle(center gm.Vec, radius float64, c color.Color) {
	if l.image == nil {
		return
	}

	vector.DrawFilledCircle(l.image, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (l *Layer) FillRect(rect gm.Rect, c color.Color) {
	if l.image == nil {
		return
	}

	vector.DrawFilledRect(l.image,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Width()), float32(rect.Height()),
		c, true,
	)
}

func (l *Layer) StrokeRect(rect gm.Rect, width float64, c color.Color) {
	if l.image == nil {
		return
	}

	vector.StrokeRect(l.image,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Width()), float32(rect.Height()),
		float32(width), c, true,
	)
}

// DrawImage draws img scaled to cover dst. The converted image is cached
// until the layer is resized, img must not change in between.
func (l *Layer) DrawImage(img image.Image, dst gm.Rect) {
	if l.image == nil {
		return
	}

	converted, ok := l.imageCache[img]
	if !ok {
		if l.imageCache == nil {
			l.imageCache = map[image.Image]*ebiten.Image{}
		}

		converted = ebiten.NewImageFromImage(img)
		l.imageCache[img] = converted
	}

	b := converted.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width()/float64(b.Dx()), dst.Height()/float64(b.Dy()))
	op.GeoM.Translate(dst.Min.X, dst.Min.Y)
	op.Filter = ebiten.FilterLinear

	l.image.DrawImage(converted, &op)
}

// DrawText draws text with its center at the given position.
func (l *Layer) DrawText(value string, center gm.Vec, size float64, c color.Color) {
	if l.image == nil {
		return
	}

	var op text.DrawOptions
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(l.image, value, l.fonts.Face(size), &op)
}

// AcquireLayer acquires a new layer from the Layers resource of the world.
// It returns false if the world is not hosted by ebiten.
func AcquireLayer(world *ttt.World, z float64) (*Layer, bool) {
	layers, ok := ttt.ResourceOf[Layers](world)
	if !ok {
		return nil, false
	}

	fonts := ttt.MustResourceOf[Fonts](world)
	return layers.Acquire(z, fonts), true
}

// ReleaseLayer releases a layer previously acquired using AcquireLayer.
func ReleaseLayer(world *ttt.World, layer *Layer) {
	if layers, ok := ttt.ResourceOf[Layers](world); ok {
		layers.Release(layer)
	}
}
