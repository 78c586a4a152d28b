package splash

import (
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/ebitenhost"
)

// LayerZ places the effect above the page content.
const LayerZ = 50

// Plugin mounts an Effect with the given config at Startup and
// unmounts it at Shutdown. Without an ebiten host, the effect stays inactive.
func Plugin(config Config, opts ...Option) ttt.Plugin {
	return ttt.PluginFunc(func(app *ttt.App) {
		effect := New(config, opts...)

		app.InsertResource(Splash{Effect: effect})

		var layer *ebitenhost.Layer

		app.AddSystems(ttt.Startup, func(world *ttt.World) {
			window, ok := ttt.ResourceOf[ttt.Window](world)
			if !ok {
				slog.Debug("No window available, splash effect stays inactive")
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

// Splash is the resource holding the Effect installed by Plugin.
type Splash struct {
	Effect *Effect
}
