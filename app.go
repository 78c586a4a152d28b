package ttt

import (
	"errors"
	"fmt"
)

type App struct {
	world *World
	run   RunWorld
}

func (a *App) World() *World {
	if a.world == nil {
		a.world = NewWorld()

		configureSchedules(a)
	}

	return a.world
}

func (a *App) AddPlugin(plugin Plugin) {
	plugin.ApplyTo(a)
}

func (a *App) AddSystems(scheduleId ScheduleId, system System, systems ...System) {
	if scheduleId == nil {
		panic(fmt.Sprintf("scheduleId must not be nil: %v", system))
	}

	a.World().AddSystems(scheduleId, system, systems...)
}

func (a *App) InsertResource(res any) {
	a.World().InsertResource(res)
}

func (a *App) AddMessage(newMessage AddMessageType) {
	newMessage.configureMessageIn(a)
}

// RunWorld replaces the function that drives the frames of the world.
// The ebitenhost plugin uses this to hand the world over to ebiten.
func (a *App) RunWorld(run RunWorld) {
	a.run = run
}

// Run drives the world until an AppExit message is written or the
// configured RunWorld returns. The Shutdown schedule runs exactly once afterward.
func (a *App) Run() error {
	if a.run == nil {
		a.run = runUntilExit
	}

	world := a.World()

	err := a.run(world)

	world.RunSchedule(Shutdown)

	if errors.Is(err, ErrExit) {
		return nil
	}

	return err
}

func runUntilExit(world *World) error {
	reader := MustResourceOf[Messages[AppExit]](world).Reader()

	for {
		world.RunSchedule(Main)

		if exits := reader.Read(); len(exits) > 0 {
			return exits[0].Err()
		}
	}
}

type Plugin interface {
	ApplyTo(app *App)
}

type PluginFunc func(app *App)

func (plugin PluginFunc) ApplyTo(app *App) {
	plugin(app)
}

type RunWorld func(world *World) error

// ErrExit is returned by a RunWorld when the app was asked to exit without error.
var ErrExit = errors.New("app exit")

// AppExit is a message that asks the app to stop after the current frame.
type AppExit struct {
	Error error
}

// Err returns the exit error, or ErrExit for a regular exit.
func (e AppExit) Err() error {
	if e.Error != nil {
		return e.Error
	}

	return ErrExit
}
