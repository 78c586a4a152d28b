// Package ebitenhost runs a ttt.App inside ebiten. It owns the window, turns
// ebiten input into dispatches on the ttt.Window resource and composites the
// drawing layers of all components onto the screen once per frame.
package ebitenhost

import (
	"errors"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/gm"
	"github.com/hajimehoshi/ebiten/v2"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

func GamePlugin(app *ttt.App) {
	if _, ok := ttt.ResourceOf[WindowConfig](app.World()); !ok {
		app.InsertResource(WindowConfig{
			Title:  "Ebitengine",
			Width:  800,
			Height: 600,
		})
	}

	app.InsertResource(ttt.Window{})
	app.InsertResource(Layers{})
	app.InsertResource(Fonts{})
	app.InsertResource(inputQueue{})
	app.InsertResource(screenRenderTarget{})

	app.AddSystems(ttt.First, dispatchInputSystem)

	app.AddSystems(ttt.Update, ttt.System(toggleRenderTimingsSystem).
		RunIf(keyJustPressed(ebiten.KeyD)))

	app.AddSystems(ttt.Render, compositeLayersSystem)

	app.AddSystems(ttt.PostRender, ttt.System(renderTimingsSystem).
		RunIf(ttt.ResourceExists[ttt.TimingStats]))

	// read AppExit messages last so the next update tick can already exit the app.
	exits := ttt.MustResourceOf[ttt.Messages[ttt.AppExit]](app.World()).Reader()
	app.AddSystems(ttt.Last, readAppExitMessagesSystem(exits))

	// start the game
	app.RunWorld(runWorld)
}

type screenRenderTarget struct {
	Image *ebiten.Image
}

func runWorld(world *ttt.World) error {
	theGame := &game{
		World:  world,
		window: ttt.MustResourceOf[ttt.Window](world),
		input:  ttt.MustResourceOf[inputQueue](world),
	}

	world.InsertResource(gameRef{game: theGame})

	win := ttt.MustResourceOf[WindowConfig](world)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(theGame, &options)
}

type gameRef struct {
	game *game
}

type game struct {
	World *ttt.World

	window *ttt.Window
	input  *inputQueue

	// set to a non nil value to exit the app
	appExit error
}

func (g *game) Update() error {
	if g.appExit != nil {
		if errors.Is(g.appExit, ttt.ErrExit) {
			return ebiten.Termination
		}

		return g.appExit
	}

	// input edges are only reliable within Update, collect them for the next frame
	g.input.collect()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.World.InsertResource(screenRenderTarget{Image: screen})

	// the viewport must be known before Startup mounts the components
	if size := imageSizeOf(screen); size != g.window.Size() {
		g.window.DispatchResize(size)
	}

	g.World.RunSchedule(ttt.Main)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func readAppExitMessagesSystem(exits *ttt.MessageReader[ttt.AppExit]) ttt.System {
	return func(world *ttt.World) {
		ref, ok := ttt.ResourceOf[gameRef](world)
		if !ok {
			return
		}

		for _, msg := range exits.Read() {
			ref.game.appExit = msg.Err()
		}
	}
}

func imageSizeOf(image *ebiten.Image) gm.Vec {
	b := image.Bounds()
	return gm.Vec{X: float64(b.Dx()), Y: float64(b.Dy())}
}
