package glitch

import (
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/ebitenhost"
)

// LayerZ places the effect behind everything else.
const LayerZ = 0

func Plugin(config Config, opts ...Option) ttt.Plugin {
	return ttt.PluginFunc(func(app *ttt.App) {
		effect := New(config, opts...)

		app.InsertResource(Glitch{Effect: effect})

		var layer *ebitenhost.Layer

		app.AddSystems(ttt.Startup, func(world *ttt.World) {
			window, ok := ttt.ResourceOf[ttt.Window](world)
			if !ok {
				slog.Debug("No window available, glitch effect stays inactive")
				return
			}

			host := Host{
				Frames:   ttt.MustResourceOf[ttt.Frames](world),
				Viewport: window,
			}

			if acquired, ok := ebitenhost.AcquireLayer(world, LayerZ); ok {
				layer = acquired
				host.Surface = layer
			}

			effect.Mount(host)
		})

		app.AddSystems(ttt.Shutdown, func(world *ttt.World) {
			effect.Unmount()

			if layer != nil {
				ebitenhost.ReleaseLayer(world, layer)
				layer = nil
			}
		})
	})
}

type Glitch struct {
	Effect *Effect
}
