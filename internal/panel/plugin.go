package panel

import (
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/ebitenhost"
	"github.com/haermaeus/ttt/gm"
)

// LayerZ places the panel between the background and the splash overlay.
const LayerZ = 10

// Resource wraps the Panel installed by the Plugin.
type Resource struct {
	Panel *Panel
}

func Plugin(logger *slog.Logger) ttt.Plugin {
	return ttt.PluginFunc(func(app *ttt.App) {
		panel := New(logger)

		app.InsertResource(Resource{Panel: panel})
		app.AddMessage(ttt.MessageType[Clicked]())

		clicks := ttt.MustResourceOf[ttt.Messages[Clicked]](app.World()).Reader()

		var layer *ebitenhost.Layer
		var listeners []*ttt.Listener

		app.AddSystems(ttt.Startup, func(world *ttt.World) {
			window, ok := ttt.ResourceOf[ttt.Window](world)
			if !ok {
				return
			}

			panel.Resize(window.Size())

			listeners = append(listeners,
				window.OnResize(func(ev ttt.ResizeEvent) {
					panel.Resize(ev.Size)
				}),

				window.OnPointerMove(func(ev ttt.PointerMoveEvent) {
					panel.PointerMoved(ev.Position)
				}),

				window.OnPointerDown(func(ev ttt.PointerDownEvent) {
					sendClick(world, panel, ev.Position)
				}),
			)

			layer, _ = ebitenhost.AcquireLayer(world, LayerZ)
		})

		app.AddSystems(ttt.Update, applyClicksSystem(panel, clicks))

		app.AddSystems(ttt.PreRender, func(world *ttt.World) {
			if layer == nil {
				return
			}

			if viewport := panel.Layout().Viewport; layer.Size() != viewport {
				layer.Resize(viewport)
				panel.dirty = true
			}

			if panel.Dirty() {
				panel.Render(layer)
			}
		})

		app.AddSystems(ttt.Shutdown, func(world *ttt.World) {
			for _, listener := range listeners {
				listener.Remove()
			}

			listeners = nil

			if layer != nil {
				ebitenhost.ReleaseLayer(world, layer)
				layer = nil
			}
		})
	})
}

func sendClick(world *ttt.World, panel *Panel, position gm.Vec) {
	target := panel.Layout().HitTest(position)
	if target.Kind == TargetNone {
		return
	}

	ttt.WriteMessage(world, Clicked{Target: target})
}

func applyClicksSystem(panel *Panel, clicks *ttt.MessageReader[Clicked]) ttt.System {
	return func(world *ttt.World) {
		for _, click := range clicks.Read() {
			panel.Click(click.Target)
		}
	}
}
