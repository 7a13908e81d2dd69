package ai

import (
	"github.com/Cr3sp1/TicTacFoe/pkg/game"
	"github.com/Cr3sp1/TicTacFoe/pkg/mcts"
)

// Planner is the strong agent: it keeps a Monte Carlo search tree
// alive between turns, so statistics gathered while deciding one move
// keep informing the next.
type Planner[G game.Game[G]] struct {
	tree *mcts.Tree[G]
}

// Create a planner for mark, starting from the given board
func NewPlanner[G game.Game[G]](board G, mark game.Mark) *Planner[G] {
	return &Planner[G]{tree: mcts.NewTree(board, mark)}
}

// Set the number of search rounds spent per decision
func (p *Planner[G]) SetRounds(rounds int) {
	p.tree.SetRounds(rounds)
}

func (p *Planner[G]) ChooseMove(board G) game.Move {
	return p.tree.ChooseMove(board)
}

func (p *Planner[G]) Mark() game.Mark {
	return p.tree.Mark()
}

// Reset discards the tree for a new game
func (p *Planner[G]) Reset() {
	p.tree.Reset()
}

// SwitchStartingMark tells the tree the opponent opens; must be
// called before the first decision of a game.
func (p *Planner[G]) SwitchStartingMark() {
	p.tree.SwitchStartingMark()
}
