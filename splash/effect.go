package splash

import (
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
)

// Surface is the drawing target of the effect. It should cover the full viewport.
type Surface interface {
	Size() gm.Vec
	Resize(size gm.Vec)
	Clear()
	Fill(c color.Color)
	FillCircle(center gm.Vec, radius float64, c color.Color)
}

// Host provides everything the effect needs while it is mounted.
type Host struct {
	// Surface is nil if the host can not provide a drawing surface.
	Surface  Surface
	Frames   ttt.FrameTicker
	Viewport ttt.Viewport
}

// Effect renders particles that trail the pointer and fade out over time.
//
// An Effect does nothing until it is mounted. All methods must be called
// from the goroutine that drives the frames.
type Effect struct {
	config Config
	logger *slog.Logger
	source gm.Source

	particles Particles

	surface   Surface
	frame     *ttt.FrameHandle
	listeners []*ttt.Listener
}

type Option func(e *Effect)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Effect) {
		e.logger = logger
	}
}

// WithSource sets the random source used for spawning particles.
func WithSource(source gm.Source) Option {
	return func(e *Effect) {
		e.source = source
	}
}

func New(config Config, opts ...Option) *Effect {
	e := &Effect{
		config: config,
		logger: slog.Default(),
		source: gm.DefaultSource,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With(slog.String("component", "splash"))

	return e
}

// Mount starts the effect. Without a surface the effect stays inactive and
// Mount returns silently. Mounting an already mounted effect is a no-op.
func (e *Effect) Mount(host Host) {
	if e.Mounted() {
		return
	}

	if host.Surface == nil {
		e.logger.Debug("No drawing surface available, effect stays inactive")
		return
	}

	e.logger.Debug("Mount effect",
		slog.Bool("transparent", e.config.Transparent),
		slog.String("backColor", e.config.BackColor.String()),
		slog.Group("reserved",
			slog.Int("simResolution", e.config.SimResolution),
			slog.Int("dyeResolution", e.config.DyeResolution),
			slog.Float64("curl", e.config.Curl),
			slog.Float64("splatForce", e.config.SplatForce),
		),
	)

	e.surface = host.Surface
	e.particles.Clear()

	e.surface.Resize(host.Viewport.Size())
	e.render()

	e.frame = host.Frames.RequestFrames(e.tick)

	e.listeners = append(e.listeners,
		host.Viewport.OnResize(e.onResize),
		host.Viewport.OnPointerMove(e.onPointerMove),
		host.Viewport.OnTouchMove(e.onTouchMove),
	)
}

// Unmount stops the effect: the pending frame request is cancelled and all
// listeners are removed. Calling Unmount on an inactive effect is a no-op.
func (e *Effect) Unmount() {
	if !e.Mounted() {
		return
	}

	e.frame.Cancel()
	e.frame = nil

	for _, listener := range e.listeners {
		listener.Remove()
	}

	e.listeners = nil
	e.surface = nil

	e.logger.Debug("Unmount effect")
}

func (e *Effect) Mounted() bool {
	return e.surface != nil
}

// Particles returns the live particles. The slice must not be retained.
func (e *Effect) Particles() []Particle {
	return e.particles.All()
}

func (e *Effect) tick(ttt.FrameTime) {
	e.particles.Advance()
	e.render()
}

func (e *Effect) render() {
	if e.config.Transparent {
		e.surface.Clear()
	} else {
		e.surface.Fill(e.config.BackColor)
	}

	for _, p := range e.particles.All() {
		e.surface.FillCircle(p.Position, Radius, p.Color.WithAlpha(float32(p.Life)))
	}
}

func (e *Effect) onResize(ev ttt.ResizeEvent) {
	e.surface.Resize(ev.Size)
}

func (e *Effect) onPointerMove(ev ttt.PointerMoveEvent) {
	e.particles.Spawn(e.source, ev.Position)
}

func (e *Effect) onTouchMove(ev *ttt.TouchMoveEvent) {
	ev.PreventDefault()

	for _, touch := range ev.Touches {
		e.particles.Spawn(e.source, touch.Position)
	}
}
