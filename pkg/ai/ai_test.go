package ai

import (
	"testing"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

func TestRandomChoosesLegalMove(t *testing.T) {
	board := game.NewSmallBoard()
	board.MakeMove(1, 1, game.MarkX)

	agent := NewRandom[*game.SmallBoard](game.MarkO)
	mv := agent.ChooseMove(board)

	row, col := mv.Base()
	if !board.Playable(row, col) {
		t.Fatalf("random agent chose occupied cell (%d, %d)", row, col)
	}
}

func TestRandomPanicsWithoutMoves(t *testing.T) {
	board := game.NewSmallBoard()
	board.Set(0, 0, game.MarkX)
	board.Set(0, 1, game.MarkX)
	board.MakeMove(0, 2, game.MarkX)

	agent := NewRandom[*game.SmallBoard](game.MarkO)
	expectPanic(t, func() { agent.ChooseMove(board) })
}

func TestParseStrength(t *testing.T) {
	for _, name := range []string{"weak", "medium", "strong"} {
		strength, err := ParseStrength(name)
		if err != nil {
			t.Fatalf("ParseStrength(%q): %v", name, err)
		}
		if strength.String() != name {
			t.Fatalf("ParseStrength(%q) round-tripped to %q", name, strength)
		}
	}
	if _, err := ParseStrength("grandmaster"); err == nil {
		t.Fatal("unknown strength must be rejected")
	}
}

func TestNewBuildsEachStrength(t *testing.T) {
	board := game.NewSmallBoard()

	for _, strength := range []Strength{Weak, Medium, Strong} {
		agent := New(strength, board, game.MarkO)
		if agent.Mark() != game.MarkO {
			t.Fatalf("%v agent mark = %v, want O", strength, agent.Mark())
		}
	}
}

func TestPlannerPlaysAFullClassicGame(t *testing.T) {
	board := game.NewSmallBoard()
	planner := NewPlanner(board, game.MarkX)
	planner.SetRounds(150)
	opponent := NewSimple[*game.SmallBoard](game.MarkO)

	for board.State() == game.Playing {
		board.Play(planner.ChooseMove(board), game.MarkX)
		if board.State() != game.Playing {
			break
		}
		board.Play(opponent.ChooseMove(board), game.MarkO)
	}

	if board.State() == game.Playing {
		t.Fatal("game did not finish")
	}
}

func TestPlannerAnswersAnOpening(t *testing.T) {
	board := game.NewSmallBoard()
	planner := NewPlanner(board, game.MarkO)

	// The human opened in the center; the planner must resynchronize
	// and answer with a legal move.
	board.MakeMove(1, 1, game.MarkX)
	mv := planner.ChooseMove(board)

	row, col := mv.Base()
	if !board.Playable(row, col) {
		t.Fatalf("planner chose occupied cell (%d, %d)", row, col)
	}
}

func TestPlannerOpensAfterSwitch(t *testing.T) {
	board := game.NewSmallBoard()
	planner := NewPlanner(board, game.MarkO)
	planner.SetRounds(150)

	// The planner's mark opens the game: the root must flip its
	// starting turn before the first decision.
	planner.SwitchStartingMark()
	mv := planner.ChooseMove(board)
	board.Play(mv, game.MarkO)

	if board.State() != game.Playing {
		t.Fatalf("state = %v after one move, want playing", board.State())
	}
}
