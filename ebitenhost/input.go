package ebitenhost

import (
	"slices"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/gm"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputQueue carries input edges from ebitens Update to the next frame.
type inputQueue struct {
	pendingDowns []gm.Vec
	pendingKeys  []ebiten.Key

	// keys that were pressed since the previous frame
	frameKeys []ebiten.Key

	cursor      gm.Vec
	cursorKnown bool

	touches []ttt.Touch
}

func (q *inputQueue) collect() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		q.pendingDowns = append(q.pendingDowns, cursorPosition())
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		q.pendingDowns = append(q.pendingDowns, gm.Vec{X: float64(x), Y: float64(y)})
	}

	q.pendingKeys = inpututil.AppendJustPressedKeys(q.pendingKeys)
}

func (q *inputQueue) keyJustPressed(key ebiten.Key) bool {
	return slices.Contains(q.frameKeys, key)
}

func keyJustPressed(key ebiten.Key) ttt.Predicate {
	return func(world *ttt.World) bool {
		return ttt.MustResourceOf[inputQueue](world).keyJustPressed(key)
	}
}

func dispatchInputSystem(world *ttt.World) {
	q := ttt.MustResourceOf[inputQueue](world)
	window := ttt.MustResourceOf[ttt.Window](world)

	q.frameKeys = append(q.frameKeys[:0], q.pendingKeys...)
	q.pendingKeys = q.pendingKeys[:0]

	cursor := cursorPosition()
	if q.cursorKnown && cursor != q.cursor {
		window.DispatchPointerMove(cursor)
	}

	q.cursor = cursor
	q.cursorKnown = true

	touches := currentTouches()
	if touchesMoved(q.touches, touches) {
		// the canvas of ebiten never scrolls, there is no default to suppress
		_ = window.DispatchTouchMove(touches)
	}

	q.touches = touches

	for _, position := range q.pendingDowns {
		window.DispatchPointerDown(position)
	}

	q.pendingDowns = q.pendingDowns[:0]
}

// touchesMoved returns true if any touch of curr was already present in prev
// at a different position.
func touchesMoved(prev, curr []ttt.Touch) bool {
	for _, touch := range curr {
		idx := slices.IndexFunc(prev, func(p ttt.Touch) bool { return p.Id == touch.Id })
		if idx >= 0 && prev[idx].Position != touch.Position {
			return true
		}
	}

	return false
}

func currentTouches() []ttt.Touch {
	var touches []ttt.Touch

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)

		touches = append(touches, ttt.Touch{
			Id:       int(id),
			Position: gm.Vec{X: float64(x), Y: float64(y)},
		})
	}

	return touches
}

func cursorPosition() gm.Vec {
	x, y := ebiten.CursorPosition()
	return gm.Vec{X: float64(x), Y: float64(y)}
}
