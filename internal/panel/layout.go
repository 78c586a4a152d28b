package panel

import (
	"github.com/haermaeus/ttt/gm"
)

const (
	CellSize = 80
	CellGap  = 8

	padding      = 24
	spacing      = 16
	titleHeight  = 32
	statusHeight = 24
	buttonWidth  = 140
	buttonHeight = 40

	gridSize = 3*CellSize + 2*CellGap
)

type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetReset
)

// Target is the button below a point.
type Target struct {
	Kind TargetKind

	// Index of the cell, if Kind is TargetCell
	Index int
}

// Layout holds the screen rects of all parts of the panel.
type Layout struct {
	Viewport gm.Vec

	Card   gm.Rect
	Title  gm.Rect
	Status gm.Rect
	Grid   gm.Rect
	Cells  [9]gm.Rect
	Reset  gm.Rect
}

// ComputeLayout centers the panel within a viewport of the given size.
func ComputeLayout(viewport gm.Vec) Layout {
	cardSize := gm.Vec{
		X: gridSize + 2*padding,
		Y: 2*padding + titleHeight + statusHeight + gridSize + buttonHeight + 3*spacing,
	}

	l := Layout{Viewport: viewport}

	l.Card = gm.RectWithCenterAndSize(viewport.Mul(0.5), cardSize)

	left := l.Card.Min.X + padding
	y := l.Card.Min.Y + padding

	l.Title = gm.RectWithOriginAndSize(gm.Vec{X: left, Y: y}, gm.Vec{X: gridSize, Y: titleHeight})
	y += titleHeight + spacing

	l.Status = gm.RectWithOriginAndSize(gm.Vec{X: left, Y: y}, gm.Vec{X: gridSize, Y: statusHeight})
	y += statusHeight + spacing

	l.Grid = gm.RectWithOriginAndSize(gm.Vec{X: left, Y: y}, gm.VecSplat(gridSize))

	for idx := range l.Cells {
		col, row := idx%3, idx/3

		origin := gm.Vec{
			X: left + float64(col)*(CellSize+CellGap),
			Y: y + float64(row)*(CellSize+CellGap),
		}

		l.Cells[idx] = gm.RectWithOriginAndSize(origin, gm.VecSplat(CellSize))
	}

	y += gridSize + spacing

	l.Reset = gm.RectWithOriginAndSize(
		gm.Vec{X: l.Card.Center().X - buttonWidth/2, Y: y},
		gm.Vec{X: buttonWidth, Y: buttonHeight},
	)

	return l
}

// HitTest returns the button at the given point. Gaps between cells hit nothing.
func (l Layout) HitTest(p gm.Vec) Target {
	if l.Reset.Contains(p) {
		return Target{Kind: TargetReset}
	}

	if !l.Grid.Contains(p) {
		return Target{}
	}

	for idx, cell := range l.Cells {
		if cell.Contains(p) {
			return Target{Kind: TargetCell, Index: idx}
		}
	}

	return Target{}
}
