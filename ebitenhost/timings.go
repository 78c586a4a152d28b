package ebitenhost

import (
	"fmt"

	"github.com/haermaeus/ttt"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func toggleRenderTimingsSystem(world *ttt.World) {
	if ttt.ResourceExists[ttt.TimingStats](world) {
		ttt.RemoveResourceOf[ttt.TimingStats](world)
	} else {
		world.InsertResource(ttt.NewTimingStats())
	}
}

func renderTimingsSystem(world *ttt.World) {
	timings := ttt.MustResourceOf[ttt.TimingStats](world)

	screen := ttt.MustResourceOf[screenRenderTarget](world).Image
	if screen == nil {
		return
	}

	var maxNameLength int
	for _, scheduleId := range timings.ScheduleOrder {
		maxNameLength = max(maxNameLength, len(scheduleId.String()))
	}

	for row, scheduleId := range timings.ScheduleOrder {
		t := timings.BySchedule[scheduleId]

		text := fmt.Sprintf("%-[1]*s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
			maxNameLength,
			scheduleId,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		)

		ebitenutil.DebugPrintAt(screen, text, 16, 16+16*row)
	}
}
