package game

import "fmt"

// BigBoard is the ultimate tic-tac-toe position: a 3x3 grid of
// SmallBoards, row-major, plus the derived meta state and the active
// sub-board constraint. active is the index of the only sub-board the
// next move may target, or noActive when the player is free to pick
// any board that is still playing.
type BigBoard struct {
	boards [9]SmallBoard
	state  GameState
	active int8
}

const noActive int8 = -1

func NewBigBoard() *BigBoard {
	return &BigBoard{active: noActive}
}

// Get the sub-board at (boardRow, boardCol)
func (b *BigBoard) BoardAt(boardRow, boardCol int) *SmallBoard {
	if boardRow < 0 || boardRow > 2 || boardCol < 0 || boardCol > 2 {
		panic(fmt.Sprintf("game: sub-board (%d, %d) is out of bounds", boardRow, boardCol))
	}
	return &b.boards[boardRow*3+boardCol]
}

// ActiveBoard reports the sub-board the next move is constrained to.
// ok is false when any playing sub-board may be chosen.
func (b *BigBoard) ActiveBoard() (boardRow, boardCol int, ok bool) {
	if b.active == noActive {
		return 0, 0, false
	}
	return int(b.active) / 3, int(b.active) % 3, true
}

// Get treats each sub-board as a single cell of the meta game: it
// returns the sub-board's winner, or NoMark while the sub-board is
// still playing or ended drawn. A drawn sub-board therefore counts as
// empty for the meta win check, never as contested.
func (b *BigBoard) Get(boardRow, boardCol int) Mark {
	if winner, ok := b.BoardAt(boardRow, boardCol).State().Winner(); ok {
		return winner
	}
	return NoMark
}

func (b *BigBoard) Playable(boardRow, boardCol int) bool {
	return b.BoardAt(boardRow, boardCol).State() == Playing
}

func (b *BigBoard) State() GameState {
	return b.state
}

// All nine sub-boards terminal
func (b *BigBoard) complete() bool {
	for i := range b.boards {
		if b.boards[i].state == Playing {
			return false
		}
	}
	return true
}

// MakeMove places mark in cell (cellRow, cellCol) of sub-board
// (boardRow, boardCol), re-derives the meta state, and recomputes the
// active sub-board from the cell just played: the opponent must
// answer in sub-board (cellRow, cellCol), unless that board is
// already terminal, in which case the constraint is lifted.
//
// Panics when the meta game is over, when the targeted sub-board
// violates the active constraint, and on whatever the sub-board's own
// MakeMove rejects.
func (b *BigBoard) MakeMove(boardRow, boardCol, cellRow, cellCol int, mark Mark) {
	if b.state != Playing {
		panic("game: tried making a move on a completed big board")
	}
	if b.active != noActive && int8(boardRow*3+boardCol) != b.active {
		panic(fmt.Sprintf("game: tried making a move on sub-board (%d, %d) while (%d, %d) is active",
			boardRow, boardCol, b.active/3, b.active%3))
	}

	b.BoardAt(boardRow, boardCol).MakeMove(cellRow, cellCol, mark)
	if b.complete() {
		b.state = Draw
	}
	if winner := checkWin(b); winner != NoMark {
		b.state = Won(winner)
	}

	if b.BoardAt(cellRow, cellCol).State() == Playing {
		b.active = int8(cellRow*3 + cellCol)
	} else {
		b.active = noActive
	}
}

func (b *BigBoard) Play(mv Move, mark Mark) {
	boardRow, boardCol, cellRow, cellCol := mv.Ultimate()
	b.MakeMove(boardRow, boardCol, cellRow, cellCol, mark)
}

// PossibleMoves lists the empty cells of the active sub-board, or of
// every sub-board still playing when no constraint is set. Empty once
// the meta game is terminal.
func (b *BigBoard) PossibleMoves() []Move {
	if b.state != Playing {
		return nil
	}
	var moves []Move
	for boardRow := 0; boardRow < 3; boardRow++ {
		for boardCol := 0; boardCol < 3; boardCol++ {
			if b.active != noActive && int8(boardRow*3+boardCol) != b.active {
				continue
			}
			board := &b.boards[boardRow*3+boardCol]
			if board.state != Playing {
				continue
			}
			for cellRow := 0; cellRow < 3; cellRow++ {
				for cellCol := 0; cellCol < 3; cellCol++ {
					if board.Playable(cellRow, cellCol) {
						moves = append(moves, UltimateMove(boardRow, boardCol, cellRow, cellCol))
					}
				}
			}
		}
	}
	return moves
}

func (b *BigBoard) Score(mark Mark) int {
	if winner, ok := b.state.Winner(); ok {
		if winner == mark {
			return 1
		}
		return -1
	}
	return 0
}

func (b *BigBoard) Clone() *BigBoard {
	clone := *b
	return &clone
}

func (b *BigBoard) Equal(other *BigBoard) bool {
	return *b == *other
}
