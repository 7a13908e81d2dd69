package game

// Mark is a player's symbol on the board. The zero value NoMark is
// reserved for empty cells and never identifies a player.
type Mark uint8

const (
	NoMark Mark = iota
	MarkX
	MarkO
)

// Get the opposing player's mark
func (m Mark) Other() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	}
	return NoMark
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	}
	return " "
}

// GameState is the lifecycle of a single board. Transitions go only
// Playing -> {WonX, WonO, Draw}; terminal states are final.
type GameState uint8

const (
	Playing GameState = iota
	Draw
	WonX
	WonO
)

// Make the won-state for given mark
func Won(mark Mark) GameState {
	if mark == MarkO {
		return WonO
	}
	return WonX
}

// Get the winning mark, if any. The second value is false for
// Playing and Draw.
func (s GameState) Winner() (Mark, bool) {
	switch s {
	case WonX:
		return MarkX, true
	case WonO:
		return MarkO, true
	}
	return NoMark, false
}

func (s GameState) Terminal() bool {
	return s != Playing
}

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Draw:
		return "draw"
	case WonX:
		return "won-x"
	case WonO:
		return "won-o"
	}
	return "unknown"
}

// Board is the cell-level view shared by both board kinds. For
// BigBoard a "cell" is a whole sub-board: Get reports its winner
// (NoMark while playing or drawn) and Playable whether it still
// accepts moves.
type Board interface {
	Get(row, col int) Mark
	Playable(row, col int) bool
}

// Check the 2 diagonals, 3 rows and 3 columns for three of the same
// mark, in that order. Returns NoMark when no line is complete.
func checkWin(b Board) Mark {
	if m := b.Get(0, 0); m != NoMark && m == b.Get(1, 1) && m == b.Get(2, 2) {
		return m
	}
	if m := b.Get(0, 2); m != NoMark && m == b.Get(1, 1) && m == b.Get(2, 0) {
		return m
	}
	for row := 0; row < 3; row++ {
		if m := b.Get(row, 0); m != NoMark && m == b.Get(row, 1) && m == b.Get(row, 2) {
			return m
		}
	}
	for col := 0; col < 3; col++ {
		if m := b.Get(0, col); m != NoMark && m == b.Get(1, col) && m == b.Get(2, col) {
			return m
		}
	}
	return NoMark
}
