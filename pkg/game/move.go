package game

import "fmt"

type moveKind uint8

const (
	baseKind moveKind = iota + 1
	ultimateKind
)

// Move addresses a single placement. It is either a base move (row,
// col on a small board) or an ultimate move (sub-board plus cell
// inside it). Moves are plain comparable values, produced by move
// enumeration or by an agent, never mutated.
type Move struct {
	kind               moveKind
	boardRow, boardCol int8
	cellRow, cellCol   int8
}

// Make a small board move
func BaseMove(row, col int) Move {
	return Move{kind: baseKind, cellRow: int8(row), cellCol: int8(col)}
}

// Make an ultimate move targeting cell (cellRow, cellCol) of
// sub-board (boardRow, boardCol)
func UltimateMove(boardRow, boardCol, cellRow, cellCol int) Move {
	return Move{
		kind:     ultimateKind,
		boardRow: int8(boardRow), boardCol: int8(boardCol),
		cellRow: int8(cellRow), cellCol: int8(cellCol),
	}
}

func (m Move) IsBase() bool { return m.kind == baseKind }

// Destructure a base move. Panics on an ultimate move, mixing the
// two shapes is a caller bug.
func (m Move) Base() (row, col int) {
	if m.kind != baseKind {
		panic("game: expected a base move, got an ultimate move")
	}
	return int(m.cellRow), int(m.cellCol)
}

// Destructure an ultimate move. Panics on a base move.
func (m Move) Ultimate() (boardRow, boardCol, cellRow, cellCol int) {
	if m.kind != ultimateKind {
		panic("game: expected an ultimate move, got a base move")
	}
	return int(m.boardRow), int(m.boardCol), int(m.cellRow), int(m.cellCol)
}

func (m Move) String() string {
	switch m.kind {
	case baseKind:
		return fmt.Sprintf("(%d,%d)", m.cellRow, m.cellCol)
	case ultimateKind:
		return fmt.Sprintf("(%d,%d)(%d,%d)", m.boardRow, m.boardCol, m.cellRow, m.cellCol)
	}
	return "(none)"
}
