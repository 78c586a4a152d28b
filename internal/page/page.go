// Package page composes the game page: the glitching letters in the
// background, the game panel on top of it and the splash cursor overlay.
package page

import (
	"log/slog"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/ebitenhost"
	"github.com/haermaeus/ttt/glitch"
	"github.com/haermaeus/ttt/internal/panel"
	"github.com/haermaeus/ttt/splash"
)

type Options struct {
	Window ebitenhost.WindowConfig
	Splash splash.Config
	Glitch glitch.Config
	Logger *slog.Logger
}

func DefaultOptions() Options {
	splashConfig := splash.DefaultConfig()
	splashConfig.BackColor = color.RGB(0.03, 0.05, 0.15)
	splashConfig.Transparent = true

	return Options{
		Window: ebitenhost.WindowConfig{
			Title:  panel.Title,
			Width:  1024,
			Height: 768,
		},
		Splash: splashConfig,
		Glitch: glitch.DefaultConfig(),
		Logger: slog.Default(),
	}
}

// Plugin installs all components of the page without a host. Use
// HostedPlugin to run the page in an ebiten window.
func Plugin(opts Options) ttt.Plugin {
	return ttt.PluginFunc(func(app *ttt.App) {
		app.AddPlugin(glitch.Plugin(opts.Glitch, glitch.WithLogger(opts.Logger)))
		app.AddPlugin(panel.Plugin(opts.Logger))
		app.AddPlugin(splash.Plugin(opts.Splash, splash.WithLogger(opts.Logger)))
	})
}

// HostedPlugin installs the ebiten host and the page.
func HostedPlugin(opts Options) ttt.Plugin {
	return ttt.PluginFunc(func(app *ttt.App) {
		app.InsertResource(opts.Window)
		app.AddPlugin(ttt.PluginFunc(ebitenhost.GamePlugin))
		app.AddPlugin(Plugin(opts))
	})
}
