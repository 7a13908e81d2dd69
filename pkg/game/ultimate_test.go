package game

import "testing"

// Test helper: win the i-th sub-board for mark without touching the
// meta-level bookkeeping.
func winSubBoard(b *BigBoard, i int, mark Mark) {
	other := mark.Other()
	b.boards[i].MakeMove(0, 0, mark)
	b.boards[i].MakeMove(1, 0, other)
	b.boards[i].MakeMove(0, 1, mark)
	b.boards[i].MakeMove(1, 1, other)
	b.boards[i].MakeMove(0, 2, mark)
}

// Test helper: draw the i-th sub-board.
func drawSubBoard(b *BigBoard, i int) {
	b.boards[i].MakeMove(0, 0, MarkX)
	b.boards[i].MakeMove(0, 1, MarkO)
	b.boards[i].MakeMove(0, 2, MarkX)
	b.boards[i].MakeMove(1, 0, MarkX)
	b.boards[i].MakeMove(1, 1, MarkO)
	b.boards[i].MakeMove(1, 2, MarkO)
	b.boards[i].MakeMove(2, 0, MarkO)
	b.boards[i].MakeMove(2, 1, MarkX)
	b.boards[i].MakeMove(2, 2, MarkX)
}

func TestBigBoardActiveBoardFollowsCell(t *testing.T) {
	board := NewBigBoard()

	if _, _, ok := board.ActiveBoard(); ok {
		t.Fatal("new board must not have an active sub-board")
	}

	board.MakeMove(0, 0, 0, 0, MarkX)
	row, col, ok := board.ActiveBoard()
	if !ok || row != 0 || col != 0 {
		t.Fatalf("active board = (%d, %d, %v), want (0, 0, true)", row, col, ok)
	}

	board.MakeMove(0, 0, 1, 0, MarkO)
	row, col, ok = board.ActiveBoard()
	if !ok || row != 1 || col != 0 {
		t.Fatalf("active board = (%d, %d, %v), want (1, 0, true)", row, col, ok)
	}
}

func TestBigBoardActiveBoardLiftedWhenTargetTerminal(t *testing.T) {
	board := NewBigBoard()
	winSubBoard(board, 0, MarkX)

	// Send the opponent towards the finished board (0, 0): the
	// constraint must be lifted instead.
	board.MakeMove(2, 2, 0, 0, MarkO)

	if _, _, ok := board.ActiveBoard(); ok {
		t.Fatal("active board must be unset when the target sub-board is terminal")
	}
}

func TestBigBoardPossibleMovesHonorActiveBoard(t *testing.T) {
	board := NewBigBoard()
	board.MakeMove(1, 1, 0, 2, MarkX)

	moves := board.PossibleMoves()
	if len(moves) != 9 {
		t.Fatalf("got %d possible moves, want the 9 cells of the active sub-board", len(moves))
	}
	for _, mv := range moves {
		boardRow, boardCol, _, _ := mv.Ultimate()
		if boardRow != 0 || boardCol != 2 {
			t.Fatalf("move %v targets sub-board (%d, %d), want (0, 2)", mv, boardRow, boardCol)
		}
	}
}

func TestBigBoardMetaWin(t *testing.T) {
	board := NewBigBoard()
	winSubBoard(board, 0, MarkX)
	winSubBoard(board, 1, MarkX)

	// Complete the meta top row through a regular move.
	board.boards[2].MakeMove(0, 0, MarkX)
	board.boards[2].MakeMove(1, 0, MarkO)
	board.boards[2].MakeMove(0, 1, MarkX)
	board.boards[2].MakeMove(1, 1, MarkO)
	board.MakeMove(0, 2, 0, 2, MarkX)

	if board.State() != WonX {
		t.Fatalf("state = %v, want won-x", board.State())
	}
	if got := len(board.PossibleMoves()); got != 0 {
		t.Fatalf("terminal meta game has %d possible moves, want 0", got)
	}
}

func TestBigBoardDrawnSubBoardCountsAsEmpty(t *testing.T) {
	board := NewBigBoard()
	winSubBoard(board, 0, MarkX)
	drawSubBoard(board, 1)
	winSubBoard(board, 2, MarkX)

	if winner := checkWin(board); winner != NoMark {
		t.Fatalf("meta winner = %v, a drawn sub-board must not complete a line", winner)
	}
	if board.Get(0, 1) != NoMark {
		t.Fatal("drawn sub-board must read as an empty meta cell")
	}
}

func TestBigBoardMetaDraw(t *testing.T) {
	board := NewBigBoard()
	for i := 0; i < 8; i++ {
		drawSubBoard(board, i)
	}
	board.boards[8].MakeMove(0, 0, MarkX)
	board.boards[8].MakeMove(0, 1, MarkO)
	board.boards[8].MakeMove(0, 2, MarkX)
	board.boards[8].MakeMove(1, 0, MarkX)
	board.boards[8].MakeMove(1, 1, MarkO)
	board.boards[8].MakeMove(1, 2, MarkO)
	board.boards[8].MakeMove(2, 0, MarkO)
	board.boards[8].MakeMove(2, 1, MarkX)
	board.MakeMove(2, 2, 2, 2, MarkX)

	if board.State() != Draw {
		t.Fatalf("state = %v, want draw", board.State())
	}
}

func TestBigBoardMoveOffActiveBoard(t *testing.T) {
	board := NewBigBoard()
	board.MakeMove(0, 0, 0, 0, MarkX) // active board is now (0, 0)

	expectPanic(t, func() { board.MakeMove(1, 1, 0, 0, MarkO) })
}

func TestBigBoardMoveOnOccupiedCell(t *testing.T) {
	board := NewBigBoard()
	board.MakeMove(0, 0, 0, 0, MarkX)

	expectPanic(t, func() { board.MakeMove(0, 0, 0, 0, MarkO) })
}

func TestBigBoardMoveOnCompletedGame(t *testing.T) {
	board := NewBigBoard()
	winSubBoard(board, 0, MarkX)
	winSubBoard(board, 1, MarkX)
	board.boards[2].MakeMove(0, 0, MarkX)
	board.boards[2].MakeMove(1, 0, MarkO)
	board.boards[2].MakeMove(0, 1, MarkX)
	board.boards[2].MakeMove(1, 1, MarkO)
	board.MakeMove(0, 2, 0, 2, MarkX)

	expectPanic(t, func() { board.MakeMove(2, 2, 2, 2, MarkO) })
}

func TestBigBoardCloneIsIndependent(t *testing.T) {
	board := NewBigBoard()
	board.MakeMove(1, 1, 1, 1, MarkX)

	clone := board.Clone()
	if !clone.Equal(board) {
		t.Fatal("clone must compare equal to its source")
	}

	clone.MakeMove(1, 1, 0, 0, MarkO)
	if board.Equal(clone) {
		t.Fatal("mutating the clone leaked into the source board")
	}
}
