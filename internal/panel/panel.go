package panel

import (
	"log/slog"

	"github.com/haermaeus/ttt/color"
	"github.com/haermaeus/ttt/gm"
	"github.com/haermaeus/ttt/internal/game"
)

const Title = "TTT by haermaeus_mora"

var (
	cardColor        = color.RGBA(0.06, 0.06, 0.09, 0.92)
	borderColor      = color.RGB(0.2, 0.2, 0.26)
	mutedTextColor   = color.RGB(0.64, 0.64, 0.7)
	cellColor        = color.RGBA(0.16, 0.16, 0.2, 0.5)
	cellHoverColor   = color.RGB(0.16, 0.16, 0.2)
	primaryColor     = color.MustHex("#a855f7")
	accentColor      = color.MustHex("#e879f9")
	buttonColor      = color.RGB(0.15, 0.15, 0.18)
	buttonHoverColor = color.RGB(0.2, 0.2, 0.25)
)

type Surface interface {
	Size() gm.Vec
	Resize(size gm.Vec)
	Clear()
	FillRect(rect gm.Rect, c color.Color)
	StrokeRect(rect gm.Rect, width float64, c color.Color)
	DrawText(value string, center gm.Vec, size float64, c color.Color)
}

// Clicked is sent when a button of the panel was clicked or tapped.
type Clicked struct {
	Target Target
}

// Panel is the interactive game card: title, status line, the board and the reset button.
type Panel struct {
	Game *game.Game

	logger *slog.Logger
	layout Layout
	hover  Target
	dirty  bool
}

func New(logger *slog.Logger) *Panel {
	return &Panel{
		Game:   game.New(),
		logger: logger.With(slog.String("component", "panel")),
		dirty:  true,
	}
}

func (p *Panel) Layout() Layout {
	return p.layout
}

func (p *Panel) Hover() Target {
	return p.hover
}

// Dirty returns true if the panel needs to be rendered again.
func (p *Panel) Dirty() bool {
	return p.dirty
}

func (p *Panel) Resize(viewport gm.Vec) {
	p.layout = ComputeLayout(viewport)
	p.dirty = true
}

// PointerMoved updates the hovered button.
func (p *Panel) PointerMoved(position gm.Vec) {
	hover := p.layout.HitTest(position)
	if hover != p.hover {
		p.hover = hover
		p.dirty = true
	}
}

// Click applies a click on the given target to the game.
// Clicks on disabled cells are ignored.
func (p *Panel) Click(target Target) {
	switch target.Kind {
	case TargetCell:
		player := p.Game.CurrentPlayer

		if err := p.Game.Move(target.Index); err != nil {
			p.logger.Debug("Ignore move",
				slog.Int("cell", target.Index),
				slog.String("reason", err.Error()),
			)

			return
		}

		p.logger.Info("Move",
			slog.String("player", player.String()),
			slog.Int("cell", target.Index),
			slog.String("state", p.Game.State().String()),
		)

	case TargetReset:
		p.Game.Reset()
		p.logger.Info("New game")

	default:
		return
	}

	p.dirty = true
}

func (p *Panel) Render(surface Surface) {
	p.dirty = false

	l := p.layout

	surface.Clear()

	surface.FillRect(l.Card, cardColor)
	surface.StrokeRect(l.Card, 1, borderColor)

	surface.DrawText(Title, l.Title.Center(), 22, mutedTextColor)
	surface.DrawText(p.Game.StatusMessage(), l.Status.Center(), 16, mutedTextColor)

	for idx, rect := range l.Cells {
		p.renderCell(surface, idx, rect)
	}

	background := buttonColor
	if p.hover.Kind == TargetReset {
		background = buttonHoverColor
	}

	surface.FillRect(l.Reset, background)
	surface.DrawText("New Game", l.Reset.Center(), 16, mutedTextColor)
}

func (p *Panel) renderCell(surface Surface, idx int, rect gm.Rect) {
	enabled := p.Game.CanPlay(idx)
	hovered := enabled && p.hover == Target{Kind: TargetCell, Index: idx}

	background, border := cellColor, borderColor
	if hovered {
		background, border = cellHoverColor, primaryColor
	}

	if !enabled {
		// disabled buttons are drawn at half opacity
		background = background.WithAlpha(background.A * 0.5)
	}

	surface.FillRect(rect, background)
	surface.StrokeRect(rect.Inset(1), 2, border)

	switch cell := p.Game.Board[idx]; cell {
	case game.X:
		surface.DrawText(cell.String(), rect.Center(), 28, primaryColor)
	case game.O:
		surface.DrawText(cell.String(), rect.Center(), 28, accentColor)
	}
}
