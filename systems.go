package ttt

// System is a function that runs against the World as part of a schedule.
type System func(world *World)

// Predicate decides whether a system should run.
type Predicate func(world *World) bool

// RunIf returns a system that only runs if the given predicate holds.
func (s System) RunIf(predicate Predicate) System {
	return func(world *World) {
		if predicate(world) {
			s(world)
		}
	}
}
