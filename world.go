package ttt

import (
	"fmt"
	"reflect"
)

type resourceValue struct {
	// Value is of kind Pointer and points to the value of the resource.
	Value reflect.Value
}

type AnyPtr = any

// World holds all resources and schedules.
// While an empty World can be created using NewWorld, it is normally created and configured
// by using the App api.
type World struct {
	resources map[reflect.Type]resourceValue
	schedules map[ScheduleId]*schedule
}

type schedule struct {
	systems []System
}

// NewWorld creates a new empty world.
// You probably want to use the App api instead.
func NewWorld() *World {
	return &World{
		resources: map[reflect.Type]resourceValue{},
		schedules: map[ScheduleId]*schedule{},
	}
}

// AddSystems adds systems to a schedule within the world. Systems of a schedule
// run in the order they were added.
func (w *World) AddSystems(scheduleId ScheduleId, firstSystem System, systems ...System) {
	schedule := w.scheduleOf(scheduleId)
	schedule.systems = append(schedule.systems, firstSystem)
	schedule.systems = append(schedule.systems, systems...)
}

// RunSystem runs a system within the world.
func (w *World) RunSystem(system System) {
	system(w)
}

func (w *World) scheduleOf(scheduleId ScheduleId) *schedule {
	schedule, ok := w.schedules[scheduleId]
	if !ok {
		schedule = &schedule{}
		w.schedules[scheduleId] = schedule
	}

	return schedule
}

// RunSchedule runs the schedule identified by the given ScheduleId.
// If no schedule with this id exists, no action is performed.
func (w *World) RunSchedule(scheduleId ScheduleId) {
	schedule, ok := w.schedules[scheduleId]
	if !ok {
		return
	}

	// remove the schedule while it is executed
	delete(w.schedules, scheduleId)

	// add the schedule back once it has finished executing
	defer func() {
		if _, exists := w.schedules[scheduleId]; exists {
			panic(fmt.Sprintf("The schedule %q was modified while it is being executed", scheduleId))
		}

		w.schedules[scheduleId] = schedule
	}()

	if timings, ok := ResourceOf[TimingStats](w); ok {
		defer timings.MeasureSchedule(scheduleId).Stop()
	}

	for _, system := range schedule.systems {
		system(w)
	}
}

// InsertResource inserts a new resource or replaces the value of an existing one.
// Pointers to an existing resource stay valid when the resource is replaced.
func (w *World) InsertResource(resource any) {
	resType := reflect.PointerTo(reflect.TypeOf(resource))

	if existing, ok := w.resources[resType]; ok {
		// update existing value in place
		existing.Value.Elem().Set(reflect.ValueOf(resource))
		return
	}

	// allocate the resource on the heap and copy the provided value to it
	ptr := reflect.New(resType.Elem())
	ptr.Elem().Set(reflect.ValueOf(resource))

	w.resources[ptr.Type()] = resourceValue{
		Value: ptr,
	}
}

func (w *World) RemoveResource(resourceType reflect.Type) {
	resType := reflect.PointerTo(resourceType)
	delete(w.resources, resType)
}

func (w *World) Resource(ty reflect.Type) (AnyPtr, bool) {
	resValue, ok := w.resources[reflect.PointerTo(ty)]
	if !ok {
		return nil, false
	}

	return resValue.Value.Interface(), true
}
