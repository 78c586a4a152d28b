package glitch

import (
	"image"
	"testing"
	"time"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	size gm.Vec

	fills  int
	texts  int
	images []image.Image
}

func (s *recordingSurface) Size() gm.Vec {
	return s.size
}

func (s *recordingSurface) Resize(size gm.Vec) {
	s.size = size
}

func (s *recordingSurface) Fill(color.Color) {
	s.fills += 1
}

func (s *recordingSurface) DrawImage(img image.Image, _ gm.Rect) {
	s.images = append(s.images, img)
}

func (s *recordingSurface) DrawText(string, gm.Vec, float64, color.Color) {
	s.texts += 1
}

func mount(t *testing.T, config Config) (*Effect, *recordingSurface, *ttt.Window, *ttt.Frames) {
	t.Helper()

	window := &ttt.Window{}
	window.DispatchResize(gm.Vec{X: 100, Y: 40})

	frames := &ttt.Frames{}
	surface := &recordingSurface{}

	effect := New(config, WithSource(gm.NewSource(7)))
	effect.Mount(Host{Surface: surface, Frames: frames, Viewport: window})

	return effect, surface, window, frames
}

func TestEffectMount(t *testing.T) {
	effect, surface, window, frames := mount(t, DefaultConfig())

	require.True(t, effect.Mounted())
	require.Equal(t, gm.Vec{X: 100, Y: 40}, surface.Size())
	require.Equal(t, 1, surface.fills)
	require.Equal(t, 20, surface.texts)
	require.Empty(t, surface.images)

	require.Equal(t, 1, window.ListenerCount())
	require.Equal(t, 1, frames.Active())

	window.DispatchResize(gm.Vec{X: 200, Y: 40})
	require.Equal(t, 20, effect.Grid().Cols())
	require.Equal(t, 2, surface.fills)
}

func TestEffectWithoutSurface(t *testing.T) {
	window := &ttt.Window{}
	frames := &ttt.Frames{}

	effect := New(DefaultConfig())
	effect.Mount(Host{Frames: frames, Viewport: window})

	require.False(t, effect.Mounted())
	require.Equal(t, 0, window.ListenerCount())
	require.Equal(t, 0, frames.Active())
}

func TestEffectTick(t *testing.T) {
	t.Run("updates after the configured interval", func(t *testing.T) {
		config := DefaultConfig()
		config.Smooth = false

		_, surface, _, frames := mount(t, config)
		fills := surface.fills

		frames.Step(ttt.FrameTime{Frame: 1, Delta: 20 * time.Millisecond})
		require.Equal(t, fills, surface.fills)

		frames.Step(ttt.FrameTime{Frame: 2, Delta: 20 * time.Millisecond})
		require.Equal(t, fills+1, surface.fills)
	})

	t.Run("smooth transitions redraw every frame", func(t *testing.T) {
		effect, surface, _, frames := mount(t, DefaultConfig())

		frames.Step(ttt.FrameTime{Frame: 1, Delta: 30 * time.Millisecond})
		fills := surface.fills

		frames.Step(ttt.FrameTime{Frame: 2, Delta: time.Millisecond})
		require.Equal(t, fills+1, surface.fills)

		var running bool
		for _, letter := range effect.Grid().Letters() {
			running = running || letter.Progress < 1
		}

		require.True(t, running)
	})
}

func TestEffectVignettes(t *testing.T) {
	config := DefaultConfig()
	config.OuterVignette = true
	config.CenterVignette = true

	_, surface, _, _ := mount(t, config)

	require.Equal(t, []image.Image{OuterVignette(), CenterVignette()}, surface.images)
}

func TestEffectUnmount(t *testing.T) {
	effect, surface, window, frames := mount(t, DefaultConfig())

	effect.Unmount()
	effect.Unmount()

	require.False(t, effect.Mounted())
	require.Equal(t, 0, window.ListenerCount())
	require.Equal(t, 0, frames.Active())

	fills := surface.fills
	window.DispatchResize(gm.Vec{X: 10, Y: 10})
	frames.Step(ttt.FrameTime{Frame: 1, Delta: time.Second})

	require.Equal(t, fills, surface.fills)
}

func TestVignettes(t *testing.T) {
	alphaAt := func(img image.Image, x, y int) uint32 {
		_, _, _, a := img.At(x, y).RGBA()
		return a >> 8
	}

	outer := OuterVignette()
	require.Equal(t, uint32(0), alphaAt(outer, vignetteSize/2, vignetteSize/2))
	require.Greater(t, alphaAt(outer, 0, 0), uint32(250))

	center := CenterVignette()
	require.InDelta(t, 204, alphaAt(center, vignetteSize/2, vignetteSize/2), 2)
	require.Equal(t, uint32(0), alphaAt(center, 0, 0))
}

func TestConfig(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	config := DefaultConfig()
	config.Colors = nil
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)

	config = DefaultConfig()
	config.Speed = 0
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)

	colors, err := ParseColors([]string{"#8b5cf6", "#fff"})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().Colors[0], colors[0])
	require.Equal(t, color.White, colors[1])

	_, err = ParseColors([]string{"purple"})
	require.ErrorIs(t, err, color.ErrInvalidHex)
}
