package ai

import (
	"math/rand"
	"slices"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
	"github.com/Cr3sp1/TicTacFoe/pkg/mcts"
)

// Simple is a one-ply heuristic agent: it takes an immediately
// winning move when one exists, discards every move that hands the
// opponent an immediate win, and otherwise picks randomly among the
// survivors.
type Simple[G game.Game[G]] struct {
	mark  game.Mark
	enemy game.Mark
	rng   *rand.Rand
}

func NewSimple[G game.Game[G]](mark game.Mark) *Simple[G] {
	return &Simple[G]{
		mark:  mark,
		enemy: mark.Other(),
		rng:   rand.New(rand.NewSource(mcts.SeedGeneratorFn())),
	}
}

// ChooseMove scans the legal moves from the back, pruning losers from
// a parallel survivor list so indices stay valid while iterating.
// Panics when the game is already over.
func (s *Simple[G]) ChooseMove(board G) game.Move {
	moves := board.PossibleMoves()
	if len(moves) == 0 {
		panic("ai: no available moves for the simple agent")
	}
	nonLosing := slices.Clone(moves)
	baseScore := board.Score(s.mark)

outer:
	for i := len(moves) - 1; i >= 0; i-- {
		mv := moves[i]
		next := board.Clone()
		next.Play(mv, s.mark)

		// A move that improves our score won a board, play it.
		if next.Score(s.mark) > baseScore {
			return mv
		}

		// Drop the move when any enemy reply makes things worse.
		for _, reply := range next.PossibleMoves() {
			after := next.Clone()
			after.Play(reply, s.enemy)
			if after.Score(s.mark) < baseScore {
				nonLosing = slices.Delete(nonLosing, i, i+1)
				continue outer
			}
		}
	}

	if len(nonLosing) > 0 {
		return nonLosing[s.rng.Intn(len(nonLosing))]
	}
	return moves[s.rng.Intn(len(moves))]
}

func (s *Simple[G]) Mark() game.Mark { return s.mark }

func (s *Simple[G]) Reset() {}

func (s *Simple[G]) SwitchStartingMark() {}
