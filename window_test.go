package ttt

import (
	"testing"

	"github.com/haermaeus/ttt/gm"
	"github.com/stretchr/testify/require"
)

func TestWindowListeners(t *testing.T) {
	t.Run("dispatch reaches registered listeners", func(t *testing.T) {
		var window Window
		var sizes []gm.Vec

		window.OnResize(func(ev ResizeEvent) { sizes = append(sizes, ev.Size) })
		window.DispatchResize(gm.Vec{X: 800, Y: 600})

		require.Equal(t, []gm.Vec{{X: 800, Y: 600}}, sizes)
		require.Equal(t, gm.Vec{X: 800, Y: 600}, window.Size())
	})

	t.Run("removed listener is not called", func(t *testing.T) {
		var window Window
		var count int

		listener := window.OnPointerMove(func(PointerMoveEvent) { count += 1 })
		window.DispatchPointerMove(gm.VecZero)

		listener.Remove()
		listener.Remove()

		window.DispatchPointerMove(gm.VecZero)

		require.Equal(t, 1, count)
		require.Equal(t, 0, window.ListenerCount())
	})

	t.Run("removal during dispatch", func(t *testing.T) {
		var window Window
		var second *Listener
		var secondCalls, thirdCalls int

		window.OnPointerDown(func(PointerDownEvent) { second.Remove() })
		second = window.OnPointerDown(func(PointerDownEvent) { secondCalls += 1 })
		window.OnPointerDown(func(PointerDownEvent) { thirdCalls += 1 })

		window.DispatchPointerDown(gm.VecZero)

		require.Equal(t, 0, secondCalls)
		require.Equal(t, 1, thirdCalls)
		require.Equal(t, 2, window.ListenerCount())
	})

	t.Run("touch listeners can prevent default", func(t *testing.T) {
		var window Window

		require.False(t, window.DispatchTouchMove([]Touch{{Id: 1}}))

		var touches int
		window.OnTouchMove(func(ev *TouchMoveEvent) {
			ev.PreventDefault()
			touches += len(ev.Touches)
		})

		require.True(t, window.DispatchTouchMove([]Touch{{Id: 1}, {Id: 2}}))
		require.Equal(t, 2, touches)
	})
}
