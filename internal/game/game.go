package game

import "errors"

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player. The opponent of Empty is Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

type State uint8

const (
	InProgress State = iota
	Won
	Draw
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")

	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

type Board [9]Cell

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Winner returns the player owning a complete winning combination, or Empty.
func (b Board) Winner() Cell {
	for _, combo := range WinCombos {
		x, y, z := b[combo[0]], b[combo[1]], b[combo[2]]
		if x != Empty && x == y && y == z {
			return x
		}
	}

	return Empty
}

// Game is a local two player game. X always moves first.
type Game struct {
	Board         Board
	CurrentPlayer Cell
	Winner        Cell
	GameOver      bool
}

func New() *Game {
	return &Game{CurrentPlayer: X}
}

// Move places the mark of the current player into the cell with the given index.
// A rejected move returns an error and leaves the game untouched.
func (that *Game) Move(index int) error {
	if that.GameOver {
		return ErrGameFinished
	}

	if index < 0 || index >= len(that.Board) {
		return ErrInvalidCell
	}

	if that.Board[index] != Empty {
		return ErrCellOccupied
	}

	that.Board[index] = that.CurrentPlayer

	if winner := that.Board.Winner(); winner != Empty {
		that.Winner = winner
		that.GameOver = true
		return nil
	}

	if that.Board.Full() {
		that.GameOver = true
		return nil
	}

	that.CurrentPlayer = that.CurrentPlayer.Opponent()

	return nil
}

// Reset starts a new game, no matter the current state.
func (that *Game) Reset() {
	*that = Game{CurrentPlayer: X}
}

// CanPlay returns true if a move into the cell would be accepted.
func (that *Game) CanPlay(index int) bool {
	return !that.GameOver &&
		index >= 0 && index < len(that.Board) &&
		that.Board[index] == Empty
}

func (that *Game) State() State {
	switch {
	case that.Winner != Empty:
		return Won
	case that.GameOver:
		return Draw
	default:
		return InProgress
	}
}

func (that *Game) StatusMessage() string {
	switch that.State() {
	case Won:
		return "Player " + that.Winner.String() + " wins!"
	case Draw:
		return "It's a draw!"
	default:
		return "Player " + that.CurrentPlayer.String() + "'s turn"
	}
}
