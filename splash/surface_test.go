package splash

import (
	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
)

type circle struct {
	Center gm.Vec
	Radius float64
	Color  color.Color
}

// recordingSurface records every drawing operation.
type recordingSurface struct {
	size gm.Vec

	resizes  []gm.Vec
	clears   int
	fills    []color.Color
	circles  []circle
	mutation int
}

func (s *recordingSurface) Size() gm.Vec {
	return s.size
}

func (s *recordingSurface) Resize(size gm.Vec) {
	s.mutation += 1
	s.size = size
	s.resizes = append(s.resizes, size)
}

func (s *recordingSurface) Clear() {
	s.mutation += 1
	s.clears += 1
	s.circles = nil
}

func (s *recordingSurface) Fill(c color.Color) {
	s.mutation += 1
	s.fills = append(s.fills, c)
	s.circles = nil
}

func (s *recordingSurface) FillCircle(center gm.Vec, radius float64, c color.Color) {
	s.mutation += 1
	s.circles = append(s.circles, circle{Center: center, Radius: radius, Color: c})
}
