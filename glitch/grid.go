package glitch

import (
	"math"

	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
)

const CharWidth = 10
const CharHeight = 20
const FontSize = 16

// UpdateFraction is the share of letters that change in every Update.
const UpdateFraction = 0.05

// TransitionStep is the progress a smooth color transition makes per Step.
const TransitionStep = 0.05

type Letter struct {
	Char rune

	// From is the color the current transition started at.
	From   color.Color
	Target color.Color

	// Progress of the transition from From to Target, in [0, 1].
	Progress float64
}

// Color returns the color the letter currently shows.
func (l Letter) Color() color.Color {
	if l.Progress >= 1 {
		return l.Target
	}

	return l.From.Lerp(l.Target, float32(l.Progress))
}

// Grid is the screen filling grid of glitching letters.
type Grid struct {
	config Config
	source gm.Source
	chars  []rune

	cols, rows int
	letters    []Letter
}

func NewGrid(config Config, source gm.Source) *Grid {
	return &Grid{
		config: config,
		source: source,
		chars:  []rune(config.Characters),
	}
}

// Resize rebuilds the grid to cover the given size. All letters are re-rolled.
func (g *Grid) Resize(size gm.Vec) {
	g.cols = int(math.Ceil(size.X / CharWidth))
	g.rows = int(math.Ceil(size.Y / CharHeight))

	g.letters = make([]Letter, max(0, g.cols*g.rows))
	for idx := range g.letters {
		c := g.randomColor()

		g.letters[idx] = Letter{
			Char:     g.randomChar(),
			From:     c,
			Target:   c,
			Progress: 1,
		}
	}
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Rows() int {
	return g.rows
}

// Letters returns the letters in row major order. The slice must not be retained.
func (g *Grid) Letters() []Letter {
	return g.letters
}

// CellCenter returns the center of the cell holding the letter with the given index.
func (g *Grid) CellCenter(idx int) gm.Vec {
	col := idx % g.cols
	row := idx / g.cols

	return gm.Vec{
		X: float64(col)*CharWidth + CharWidth/2,
		Y: float64(row)*CharHeight + CharHeight/2,
	}
}

// UpdateCount returns the number of letters re-rolled by a call to Update.
func (g *Grid) UpdateCount() int {
	if len(g.letters) == 0 {
		return 0
	}

	return max(1, int(math.Floor(float64(len(g.letters))*UpdateFraction)))
}

// Update picks random letters and gives them a new character and target color.
// Letters may be picked more than once.
func (g *Grid) Update() {
	for range g.UpdateCount() {
		letter := &g.letters[g.source.IntN(len(g.letters))]

		letter.Char = g.randomChar()

		target := g.randomColor()
		if g.config.Smooth {
			letter.From = letter.Color()
			letter.Target = target
			letter.Progress = 0
		} else {
			letter.From = target
			letter.Target = target
			letter.Progress = 1
		}
	}
}

// Step advances all running color transitions. It returns true if
// any letter changed its color.
func (g *Grid) Step() bool {
	var changed bool

	for idx := range g.letters {
		letter := &g.letters[idx]
		if letter.Progress >= 1 {
			continue
		}

		letter.Progress += TransitionStep
		if letter.Progress > 1-1e-9 {
			// accumulated steps do not always sum up to exactly one
			letter.Progress = 1
		}

		changed = true
	}

	return changed
}

func (g *Grid) randomChar() rune {
	return gm.Pick(g.source, g.chars)
}

func (g *Grid) randomColor() color.Color {
	return gm.Pick(g.source, g.config.Colors)
}
