package splash

import (
	"testing"
	"time"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	window  *ttt.Window
	frames  *ttt.Frames
	surface *recordingSurface
	effect  *Effect
	frame   uint64
}

func newFixture(config Config) *fixture {
	f := &fixture{
		window:  &ttt.Window{},
		frames:  &ttt.Frames{},
		surface: &recordingSurface{},
		effect:  New(config, WithSource(gm.NewSource(42))),
	}

	f.window.DispatchResize(gm.Vec{X: 800, Y: 600})

	return f
}

func (f *fixture) host() Host {
	return Host{Surface: f.surface, Frames: f.frames, Viewport: f.window}
}

func (f *fixture) step() {
	f.frame += 1
	f.frames.Step(ttt.FrameTime{Frame: f.frame, Delta: 16 * time.Millisecond})
}

func TestEffectMount(t *testing.T) {
	t.Run("surface is sized to the viewport", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		require.True(t, f.effect.Mounted())
		require.Equal(t, gm.Vec{X: 800, Y: 600}, f.surface.Size())
		require.Equal(t, 3, f.window.ListenerCount())
		require.Equal(t, 1, f.frames.Active())
	})

	t.Run("without a surface nothing happens", func(t *testing.T) {
		f := newFixture(DefaultConfig())

		host := f.host()
		host.Surface = nil

		require.NotPanics(t, func() { f.effect.Mount(host) })

		require.False(t, f.effect.Mounted())
		require.Equal(t, 0, f.window.ListenerCount())
		require.Equal(t, 0, f.frames.Active())

		f.window.DispatchPointerMove(gm.Vec{X: 10, Y: 10})
		require.Empty(t, f.effect.Particles())

		// unmount of an inactive effect is fine too
		require.NotPanics(t, f.effect.Unmount)
	})

	t.Run("mounting twice is a no-op", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())
		f.effect.Mount(f.host())

		require.Equal(t, 3, f.window.ListenerCount())
		require.Equal(t, 1, f.frames.Active())
	})

	t.Run("resize follows the viewport", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		f.window.DispatchResize(gm.Vec{X: 1024, Y: 768})
		require.Equal(t, gm.Vec{X: 1024, Y: 768}, f.surface.Size())
	})
}

func TestEffectInput(t *testing.T) {
	t.Run("pointer move spawns three particles around the pointer", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		f.window.DispatchPointerMove(gm.Vec{X: 100, Y: 100})

		particles := f.effect.Particles()
		require.Len(t, particles, 3)

		for _, p := range particles {
			require.InDelta(t, 100, p.Position.X, 10)
			require.InDelta(t, 100, p.Position.Y, 10)
			require.Equal(t, 1.0, p.Life)
		}
	})

	t.Run("every touch point spawns three particles", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		prevented := f.window.DispatchTouchMove([]ttt.Touch{
			{Id: 1, Position: gm.Vec{X: 10, Y: 10}},
			{Id: 2, Position: gm.Vec{X: 200, Y: 200}},
		})

		require.True(t, prevented)
		require.Len(t, f.effect.Particles(), 6)

		var near200 int
		for _, p := range f.effect.Particles() {
			if p.Position.DistanceTo(gm.Vec{X: 200, Y: 200}) < 20 {
				near200 += 1
			}
		}

		require.Equal(t, 3, near200)
	})

	t.Run("touch without touch points still prevents the default", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		require.True(t, f.window.DispatchTouchMove(nil))
		require.Empty(t, f.effect.Particles())
	})
}

func TestEffectTick(t *testing.T) {
	t.Run("transparent clears and draws discs with alpha of life", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		f.window.DispatchPointerMove(gm.Vec{X: 100, Y: 100})

		clears := f.surface.clears
		f.step()

		require.Equal(t, clears+1, f.surface.clears)
		require.Empty(t, f.surface.fills)
		require.Len(t, f.surface.circles, 3)

		for idx, c := range f.surface.circles {
			p := f.effect.Particles()[idx]

			require.Equal(t, float64(Radius), c.Radius)
			require.Equal(t, p.Position, c.Center)
			require.InDelta(t, 0.99, c.Color.A, 1e-6)
		}
	})

	t.Run("opaque fills with the back color", func(t *testing.T) {
		config := DefaultConfig()
		config.Transparent = false
		config.BackColor = color.RGB(0.03, 0.05, 0.15)

		f := newFixture(config)
		f.effect.Mount(f.host())

		f.step()

		require.NotEmpty(t, f.surface.fills)
		require.Equal(t, config.BackColor, f.surface.fills[len(f.surface.fills)-1])
	})

	t.Run("particles fade out and are removed", func(t *testing.T) {
		f := newFixture(DefaultConfig())
		f.effect.Mount(f.host())

		f.window.DispatchPointerMove(gm.Vec{X: 100, Y: 100})

		for range 50 {
			f.step()
		}

		for _, p := range f.effect.Particles() {
			require.InDelta(t, 0.5, p.Life, 1e-9)
		}

		for range 50 {
			f.step()
		}

		require.Empty(t, f.effect.Particles())
		require.Empty(t, f.surface.circles)
	})
}

func TestEffectUnmount(t *testing.T) {
	f := newFixture(DefaultConfig())
	f.effect.Mount(f.host())

	f.window.DispatchPointerMove(gm.Vec{X: 100, Y: 100})
	f.step()

	f.effect.Unmount()

	require.False(t, f.effect.Mounted())
	require.Equal(t, 0, f.window.ListenerCount())
	require.Equal(t, 0, f.frames.Active())

	mutations := f.surface.mutation
	particles := len(f.effect.Particles())

	f.window.DispatchPointerMove(gm.Vec{X: 50, Y: 50})
	f.window.DispatchTouchMove([]ttt.Touch{{Id: 1, Position: gm.Vec{X: 1, Y: 1}}})
	f.window.DispatchResize(gm.Vec{X: 10, Y: 10})
	f.step()
	f.step()

	require.Equal(t, mutations, f.surface.mutation)
	require.Len(t, f.effect.Particles(), particles)

	// second unmount is a no-op
	require.NotPanics(t, f.effect.Unmount)
}

func TestEffectRemount(t *testing.T) {
	f := newFixture(DefaultConfig())
	f.effect.Mount(f.host())

	f.window.DispatchPointerMove(gm.Vec{X: 100, Y: 100})
	f.effect.Unmount()

	f.effect.Mount(f.host())
	require.Empty(t, f.effect.Particles())
	require.Equal(t, 3, f.window.ListenerCount())
	require.Equal(t, 1, f.frames.Active())
}

func TestPluginWithoutHost(t *testing.T) {
	var app ttt.App

	app.AddPlugin(Plugin(DefaultConfig()))
	app.RunWorld(func(world *ttt.World) error {
		world.RunSchedule(ttt.Main)
		return nil
	})

	require.NoError(t, app.Run())

	splash := ttt.MustResourceOf[Splash](app.World())
	require.False(t, splash.Effect.Mounted())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	config := DefaultConfig()
	config.Curl = -1
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)

	config = DefaultConfig()
	config.PressureIterations = -3
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)

	config = DefaultConfig()
	config.BackColor = color.RGB(1.5, 0, 0)
	require.ErrorIs(t, config.Validate(), ErrInvalidConfig)
}
