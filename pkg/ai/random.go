package ai

import (
	"math/rand"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
	"github.com/Cr3sp1/TicTacFoe/pkg/mcts"
)

// Random plays a uniformly random legal move.
type Random[G game.Game[G]] struct {
	mark game.Mark
	rng  *rand.Rand
}

func NewRandom[G game.Game[G]](mark game.Mark) *Random[G] {
	return &Random[G]{
		mark: mark,
		rng:  rand.New(rand.NewSource(mcts.SeedGeneratorFn())),
	}
}

// ChooseMove picks any legal move. Panics when the game is already
// over, asking then is a caller bug.
func (r *Random[G]) ChooseMove(board G) game.Move {
	moves := board.PossibleMoves()
	if len(moves) == 0 {
		panic("ai: no available moves for the random agent")
	}
	return moves[r.rng.Intn(len(moves))]
}

func (r *Random[G]) Mark() game.Mark { return r.mark }

func (r *Random[G]) Reset() {}

func (r *Random[G]) SwitchStartingMark() {}
