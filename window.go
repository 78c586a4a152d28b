package ttt

import (
	"slices"

	"github.com/haermaeus/ttt/gm"
)

type ResizeEvent struct {
	Size gm.Vec
}

type PointerMoveEvent struct {
	Position gm.Vec
}

type PointerDownEvent struct {
	Position gm.Vec
}

type Touch struct {
	Id       int
	Position gm.Vec
}

// TouchMoveEvent carries every touch point that is currently on the screen.
type TouchMoveEvent struct {
	Touches []Touch

	defaultPrevented bool
}

// PreventDefault asks the host to not apply its default handling, e.g. scrolling the page.
func (e *TouchMoveEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e *TouchMoveEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// EventTarget is the part of the Window components register their input listeners with.
type EventTarget interface {
	OnResize(fn func(ResizeEvent)) *Listener
	OnPointerMove(fn func(PointerMoveEvent)) *Listener
	OnPointerDown(fn func(PointerDownEvent)) *Listener
	OnTouchMove(fn func(*TouchMoveEvent)) *Listener
}

// Listener is the registration of a single listener function.
type Listener struct {
	remove func()
}

// Remove unregisters the listener. It will not be called again, even by a dispatch
// that is currently running. Calling Remove more than once is a no-op.
func (l *Listener) Remove() {
	if l == nil || l.remove == nil {
		return
	}

	l.remove()
	l.remove = nil
}

// Viewport is an EventTarget that also knows its current size.
type Viewport interface {
	EventTarget
	Size() gm.Vec
}

// Window is the host window as seen by the components: its current viewport size
// and the listeners registered for host input.
//
// The host feeds input into the window by calling the Dispatch methods.
type Window struct {
	_ noCopy

	size gm.Vec

	resize      listeners[ResizeEvent]
	pointerMove listeners[PointerMoveEvent]
	pointerDown listeners[PointerDownEvent]
	touchMove   listeners[*TouchMoveEvent]
}

var _ Viewport = (*Window)(nil)

func (w *Window) Size() gm.Vec {
	return w.size
}

func (w *Window) OnResize(fn func(ResizeEvent)) *Listener {
	return w.resize.add(fn)
}

func (w *Window) OnPointerMove(fn func(PointerMoveEvent)) *Listener {
	return w.pointerMove.add(fn)
}

func (w *Window) OnPointerDown(fn func(PointerDownEvent)) *Listener {
	return w.pointerDown.add(fn)
}

func (w *Window) OnTouchMove(fn func(*TouchMoveEvent)) *Listener {
	return w.touchMove.add(fn)
}

// DispatchResize updates the viewport size and notifies the resize listeners.
func (w *Window) DispatchResize(size gm.Vec) {
	w.size = size
	w.resize.dispatch(ResizeEvent{Size: size})
}

func (w *Window) DispatchPointerMove(position gm.Vec) {
	w.pointerMove.dispatch(PointerMoveEvent{Position: position})
}

func (w *Window) DispatchPointerDown(position gm.Vec) {
	w.pointerDown.dispatch(PointerDownEvent{Position: position})
}

// DispatchTouchMove notifies the touch listeners and returns true if one of them
// prevented the default handling.
func (w *Window) DispatchTouchMove(touches []Touch) bool {
	event := &TouchMoveEvent{Touches: touches}
	w.touchMove.dispatch(event)
	return event.DefaultPrevented()
}

// ListenerCount returns the number of listeners currently registered.
func (w *Window) ListenerCount() int {
	return len(w.resize.entries) +
		len(w.pointerMove.entries) +
		len(w.pointerDown.entries) +
		len(w.touchMove.entries)
}

type listeners[E any] struct {
	entries []*listenerEntry[E]
}

type listenerEntry[E any] struct {
	fn      func(E)
	removed bool
}

func (l *listeners[E]) add(fn func(E)) *Listener {
	entry := &listenerEntry[E]{fn: fn}
	l.entries = append(l.entries, entry)

	return &Listener{
		remove: func() {
			entry.removed = true

			// never modify the backing array in place, a dispatch might be iterating it
			l.entries = slices.DeleteFunc(slices.Clone(l.entries), func(e *listenerEntry[E]) bool {
				return e == entry
			})
		},
	}
}

func (l *listeners[E]) dispatch(event E) {
	for _, entry := range l.entries {
		if !entry.removed {
			entry.fn(event)
		}
	}
}
