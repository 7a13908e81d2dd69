package mcts

import "github.com/Cr3sp1/TicTacFoe/pkg/game"

// Sentinel id for "no node", used for the root's parent slot.
const none = -1

// node is a single plan node. Nodes live only inside a Tree's arena
// and reference each other by integer id, never by pointer, so that
// rerooting is a cheap index swap and parent/child links cannot form
// ownership cycles.
//
// children is nil while the node is unexpanded and an empty non-nil
// slice when expansion found a terminal position. moves holds the
// shuffled legal moves, index-aligned with children once expanded.
type node[G game.Game[G]] struct {
	parent   int
	children []int
	board    G
	turn     game.Mark
	move     game.Move
	moves    []game.Move
	wins     float64
	plays    int
}

// winningChance estimates how good this node is for the AI: the win
// rate when the node's player to move is the AI itself, its
// complement otherwise. Unvisited nodes count as 0.
func (n *node[G]) winningChance(aiMark game.Mark) float64 {
	if n.plays == 0 {
		return 0
	}
	rate := n.wins / float64(n.plays)
	if n.turn == aiMark {
		return rate
	}
	return 1 - rate
}
