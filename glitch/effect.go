package glitch

import (
	"image"
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
)

var background = color.Black

type Surface interface {
	Size() gm.Vec
	Resize(size gm.Vec)
	Fill(c color.Color)
	DrawText(value string, center gm.Vec, size float64, c color.Color)
	DrawImage(img image.Image, dst gm.Rect)
}

type Host struct {
	// Surface is nil if the host can not provide a drawing surface.
	Surface  Surface
	Frames   ttt.FrameTicker
	Viewport ttt.Viewport
}

// Effect fills the viewport with randomly changing letters.
type Effect struct {
	config Config
	logger *slog.Logger
	source gm.Source

	grid  *Grid
	timer ttt.Timer

	vignettes []image.Image

	surface  Surface
	frame    *ttt.FrameHandle
	listener *ttt.Listener
}

type Option func(e *Effect)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Effect) {
		e.logger = logger
	}
}

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

	e.logger = e.logger.With(slog.String("component", "glitch"))

	e.grid = NewGrid(config, e.source)
	e.timer = ttt.NewTimer(config.Speed, ttt.TimerModeRepeating)

	if config.OuterVignette {
		e.vignettes = append(e.vignettes, OuterVignette())
	}

	if config.CenterVignette {
		e.vignettes = append(e.vignettes, CenterVignette())
	}

	return e
}

// Mount starts the effect. Without a surface the effect stays inactive.
func (e *Effect) Mount(host Host) {
	if e.Mounted() {
		return
	}

	if host.Surface == nil {
		e.logger.Debug("No drawing surface available, effect stays inactive")
		return
	}

	e.surface = host.Surface
	e.timer.Reset()

	e.resize(host.Viewport.Size())

	e.frame = host.Frames.RequestFrames(e.tick)
	e.listener = host.Viewport.OnResize(func(ev ttt.ResizeEvent) {
		e.resize(ev.Size)
	})

	e.logger.Debug("Mount effect",
		slog.Int("cols", e.grid.Cols()),
		slog.Int("rows", e.grid.Rows()),
		slog.Duration("speed", e.config.Speed),
	)
}

func (e *Effect) Unmount() {
	if !e.Mounted() {
		return
	}

	e.frame.Cancel()
	e.frame = nil

	e.listener.Remove()
	e.listener = nil

	e.surface = nil

	e.logger.Debug("Unmount effect")
}

func (e *Effect) Mounted() bool {
	return e.surface != nil
}

func (e *Effect) Grid() *Grid {
	return e.grid
}

func (e *Effect) resize(size gm.Vec) {
	e.surface.Resize(size)
	e.grid.Resize(size)
	e.render()
}

func (e *Effect) tick(t ttt.FrameTime) {
	dirty := e.timer.Tick(t.Delta).JustFinished()
	if dirty {
		e.grid.Update()
	}

	if e.config.Smooth && e.grid.Step() {
		dirty = true
	}

	if dirty {
		e.render()
	}
}

func (e *Effect) render() {
	e.surface.Fill(background)

	for idx, letter := range e.grid.Letters() {
		e.surface.DrawText(string(letter.Char), e.grid.CellCenter(idx), FontSize, letter.Color())
	}

	bounds := gm.RectWithSize(e.surface.Size())
	for _, vignette := range e.vignettes {
		e.surface.DrawImage(vignette, bounds)
	}
}
