// Package ai provides the opponents: a move-at-random agent, a
// one-ply heuristic agent and a Monte Carlo tree search agent. All
// three consume the game.Game contract, so each works unchanged for
// both the classic and the ultimate board.
package ai

import (
	"fmt"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// Agent is a move-choosing opponent. ChooseMove must be handed the
// authoritative board after all moves played since the previous call.
// Reset and SwitchStartingMark only matter for agents carrying state
// between turns; the stateless ones treat them as no-ops.
type Agent[G game.Game[G]] interface {
	ChooseMove(board G) game.Move
	Mark() game.Mark
	Reset()
	SwitchStartingMark()
}

// Strength selects which agent implementation plays.
type Strength uint8

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	}
	return "unknown"
}

func ParseStrength(s string) (Strength, error) {
	switch s {
	case "weak":
		return Weak, nil
	case "medium":
		return Medium, nil
	case "strong":
		return Strong, nil
	}
	return 0, fmt.Errorf("ai: unknown strength %q", s)
}

// New builds the agent for given strength, playing mark on games
// starting from board.
func New[G game.Game[G]](strength Strength, board G, mark game.Mark) Agent[G] {
	switch strength {
	case Weak:
		return NewRandom[G](mark)
	case Medium:
		return NewSimple[G](mark)
	default:
		return NewPlanner(board, mark)
	}
}
