package ttt

import (
	"fmt"
)

// ScheduleId identifies a schedule. All implementing types must be comparable.
type ScheduleId interface {
	fmt.Stringer
	isSchedule()
}

type scheduleId struct {
	name string
}

func (*scheduleId) isSchedule() {}

func (s *scheduleId) String() string {
	return s.name
}

// MakeScheduleId creates a new unique ScheduleId.
// The name passed to the schedule is used for debugging
func MakeScheduleId(name string) ScheduleId {
	return &scheduleId{name: name}
}

var (
	// Main is the main schedule that executes all other per frame schedules in the correct order.
	Main = MakeScheduleId("Main")

	Startup    = MakeScheduleId("Startup")
	First      = MakeScheduleId("First")
	PreUpdate  = MakeScheduleId("PreUpdate")
	Update     = MakeScheduleId("Update")
	PostUpdate = MakeScheduleId("PostUpdate")
	PreRender  = MakeScheduleId("PreRender")
	Render     = MakeScheduleId("Render")
	PostRender = MakeScheduleId("PostRender")
	Last       = MakeScheduleId("Last")

	// Shutdown runs once after the app stopped producing frames.
	Shutdown = MakeScheduleId("Shutdown")
)

func configureSchedules(app *App) {
	app.InsertResource(VirtualTime{
		Scale: 1.0,
	})

	app.InsertResource(Frames{})

	app.AddMessage(MessageType[AppExit]())

	var clock virtualClock
	var initialized bool

	app.AddSystems(Main, clock.update, func(world *World) {
		if !initialized {
			initialized = true

			// initialize once
			world.RunSchedule(Startup)
		}

		runMainSchedule(world)
	})

	app.AddSystems(Update, runFramesSystem)
}

func runMainSchedule(world *World) {
	// start the new frame
	world.RunSchedule(First)

	// the update schedule
	world.RunSchedule(PreUpdate)
	world.RunSchedule(Update)
	world.RunSchedule(PostUpdate)

	world.RunSchedule(PreRender)
	world.RunSchedule(Render)
	world.RunSchedule(PostRender)

	// end the frame
	world.RunSchedule(Last)
}
