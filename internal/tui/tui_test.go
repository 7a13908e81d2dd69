package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
	"github.com/Cr3sp1/TicTacFoe/pkg/mcts"
)

func TestMain(m *testing.M) {
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	os.Exit(m.Run())
}

// run feeds the app one command per line and captures the transcript.
func run(t *testing.T, lines ...string) string {
	t.Helper()
	var out strings.Builder
	app := New(strings.NewReader(strings.Join(lines, "\n")), &out, termenv.Ascii, 150)
	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestQuitFromMainMenu(t *testing.T) {
	transcript := run(t, "q")
	if !strings.Contains(transcript, "Select game:") {
		t.Fatalf("main menu missing from transcript:\n%s", transcript)
	}
}

func TestQuitOnClosedInput(t *testing.T) {
	// Input ends without an explicit quit; the app must stop cleanly.
	transcript := run(t)
	if !strings.Contains(transcript, "Select game:") {
		t.Fatalf("main menu missing from transcript:\n%s", transcript)
	}
}

func TestMenuRejectsUnknownOption(t *testing.T) {
	transcript := run(t, "7", "q")
	if !strings.Contains(transcript, "Please choose 1, 2 or q.") {
		t.Fatalf("bad option not reported:\n%s", transcript)
	}
}

func TestClassicPvPGame(t *testing.T) {
	// X: 0 4 8 wins on the diagonal; O: 1 2.
	transcript := run(t, "1", "1", "0", "1", "4", "2", "8", "q")
	if !strings.Contains(transcript, "Player X WINS!") {
		t.Fatalf("X's diagonal win not announced:\n%s", transcript)
	}
}

func TestClassicRejectsOccupiedCell(t *testing.T) {
	transcript := run(t, "1", "1", "4", "4", "q")
	if !strings.Contains(transcript, "Position 4 is already occupied!") {
		t.Fatalf("occupied cell not reported:\n%s", transcript)
	}
}

func TestClassicRejectsGibberish(t *testing.T) {
	transcript := run(t, "1", "1", "nine", "q")
	if !strings.Contains(transcript, "Please enter a number between 0 and 8!") {
		t.Fatalf("gibberish not reported:\n%s", transcript)
	}
}

func TestClassicVersusAIReplies(t *testing.T) {
	transcript := run(t, "1", "2", "2", "4", "q")
	// The human placed one X; the agent must have answered with an O.
	if !strings.Contains(transcript, " O ") {
		t.Fatalf("no agent reply rendered:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Current player: X") {
		t.Fatalf("turn must come back to the human:\n%s", transcript)
	}
}

func TestClassicPlaySecond(t *testing.T) {
	transcript := run(t, "1", "2", "3", "s", "q")
	// The agent opened, so exactly one O is on the board before the
	// human has played anything.
	if !strings.Contains(transcript, " O ") {
		t.Fatalf("agent did not open the game:\n%s", transcript)
	}
}

func TestClassicReset(t *testing.T) {
	transcript := run(t, "1", "1", "4", "r", "4", "q")
	// After the reset the center must be free again.
	if strings.Contains(transcript, "Position 4 is already occupied!") {
		t.Fatalf("reset did not clear the board:\n%s", transcript)
	}
}

func TestUltimateActiveBoardConstraint(t *testing.T) {
	// X plays board 4 cell 2, so O must play on board 2.
	transcript := run(t, "2", "1", "4 2", "0 0", "2 0", "q")
	if !strings.Contains(transcript, "You must play on board 2.") {
		t.Fatalf("active board not announced:\n%s", transcript)
	}
	if !strings.Contains(transcript, "That move is not available!") {
		t.Fatalf("off-board move not rejected:\n%s", transcript)
	}
}

func TestUltimateRejectsMalformedInput(t *testing.T) {
	transcript := run(t, "2", "1", "42", "q")
	if !strings.Contains(transcript, "Please enter a board and a cell") {
		t.Fatalf("malformed move not reported:\n%s", transcript)
	}
}

func TestUltimateVersusAIReplies(t *testing.T) {
	transcript := run(t, "2", "2", "2", "4 4", "q")
	if !strings.Contains(transcript, "Current player: X") {
		t.Fatalf("turn must come back to the human:\n%s", transcript)
	}
}

func TestBackFromModeMenu(t *testing.T) {
	transcript := run(t, "1", "b", "q")
	if strings.Count(transcript, "Select game:") < 2 {
		t.Fatalf("back must return to the main menu:\n%s", transcript)
	}
}

func TestRenderSmallBoard(t *testing.T) {
	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	r := renderer{out: out}

	board := game.NewSmallBoard()
	board.MakeMove(0, 0, game.MarkX)
	board.MakeMove(1, 1, game.MarkO)

	got := r.smallBoard(board)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], " X ") {
		t.Fatalf("X missing from the top-left cell:\n%s", got)
	}
	if !strings.Contains(lines[2], "O") {
		t.Fatalf("O missing from the center:\n%s", got)
	}
}

func TestRenderBigBoardMarksActive(t *testing.T) {
	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	r := renderer{out: out}

	board := game.NewBigBoard()
	board.MakeMove(1, 1, 0, 2, game.MarkX)

	got := r.bigBoard(board)
	if !strings.Contains(got, "X") {
		t.Fatalf("X missing from the rendering:\n%s", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("rendered %d lines, want 11:\n%s", len(lines), got)
	}
}
