package ttt

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats collects timings per schedule while it is present as a resource in the world.
type TimingStats struct {
	BySchedule    map[ScheduleId]Timings
	ScheduleOrder []ScheduleId
}

func NewTimingStats() TimingStats {
	return TimingStats{
		BySchedule: map[ScheduleId]Timings{},
	}
}

func (t *TimingStats) MeasureSchedule(scheduleId ScheduleId) TimingStopwatch {
	startTime := time.Now()

	if _, ok := t.BySchedule[scheduleId]; !ok {
		t.ScheduleOrder = append(t.ScheduleOrder, scheduleId)
		t.BySchedule[scheduleId] = Timings{}
	}

	return TimingStopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			t.BySchedule[scheduleId] = t.BySchedule[scheduleId].Add(duration)
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
