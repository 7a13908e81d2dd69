package game

import "fmt"

// SmallBoard is a single 3x3 tic-tac-toe grid, cells stored row-major
// with NoMark for empty, plus its own derived game state. Once the
// state leaves Playing the board rejects all further mutation.
type SmallBoard struct {
	cells [9]Mark
	state GameState
}

func NewSmallBoard() *SmallBoard {
	return &SmallBoard{}
}

// Get the mark at (row, col), NoMark when empty
func (b *SmallBoard) Get(row, col int) Mark {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("game: cell (%d, %d) is out of bounds", row, col))
	}
	return b.cells[row*3+col]
}

// Set writes a cell directly, without legality or state checks. It
// exists for board setup (tests, position editing); regular play goes
// through MakeMove.
func (b *SmallBoard) Set(row, col int, mark Mark) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("game: cell (%d, %d) is out of bounds", row, col))
	}
	b.cells[row*3+col] = mark
}

func (b *SmallBoard) Playable(row, col int) bool {
	return b.Get(row, col) == NoMark
}

func (b *SmallBoard) State() GameState {
	return b.state
}

// MakeMove places mark at (row, col) and re-derives the board state.
// A move that both fills the board and completes a line registers as
// a win, not a draw.
//
// Panics if the board is already terminal or the cell is occupied;
// both are caller bugs, a well-behaved front end only offers legal
// moves.
func (b *SmallBoard) MakeMove(row, col int, mark Mark) {
	if b.state != Playing {
		panic("game: tried making a move on a completed board")
	}
	if b.Get(row, col) != NoMark {
		panic(fmt.Sprintf("game: tried making a move on occupied cell (%d, %d)", row, col))
	}
	b.Set(row, col, mark)
	if b.complete() {
		b.state = Draw
	}
	if winner := checkWin(b); winner != NoMark {
		b.state = Won(winner)
	}
}

// All nine cells filled
func (b *SmallBoard) complete() bool {
	for _, cell := range b.cells {
		if cell == NoMark {
			return false
		}
	}
	return true
}

func (b *SmallBoard) Play(mv Move, mark Mark) {
	row, col := mv.Base()
	b.MakeMove(row, col, mark)
}

// PossibleMoves lists every empty cell in row-major order, or nothing
// at all once the board is terminal.
func (b *SmallBoard) PossibleMoves() []Move {
	if b.state != Playing {
		return nil
	}
	moves := make([]Move, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if b.Playable(row, col) {
				moves = append(moves, BaseMove(row, col))
			}
		}
	}
	return moves
}

func (b *SmallBoard) Score(mark Mark) int {
	if winner, ok := b.state.Winner(); ok {
		if winner == mark {
			return 1
		}
		return -1
	}
	return 0
}

func (b *SmallBoard) Clone() *SmallBoard {
	clone := *b
	return &clone
}

func (b *SmallBoard) Equal(other *SmallBoard) bool {
	return *b == *other
}
