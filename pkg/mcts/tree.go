package mcts

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// Tree is a Monte Carlo search tree over any game implementing the
// game.Game contract. It owns its node arena exclusively; all
// interaction goes through ChooseMove, Reset and SwitchStartingMark.
//
// The tree is kept between decisions: after every ChooseMove the root
// advances to the chosen child, so statistics gathered for the
// surviving subtree are reused on the next turn. Subtrees abandoned
// by rerooting stay in the arena as unreachable garbage until Reset
// replaces the whole arena.
//
// A Tree is strictly sequential, a ChooseMove call runs its fixed
// round count to completion with no suspension point.
type Tree[G game.Game[G]] struct {
	nodes     []node[G]
	root      int
	aiMark    game.Mark
	enemyMark game.Mark
	initial   G
	rounds    int
}

// Create a new tree planning for aiMark on the given board. The root
// records X as the player to move, matching a fresh game; use
// SwitchStartingMark before exploring when O opens instead.
func NewTree[G game.Game[G]](board G, aiMark game.Mark) *Tree[G] {
	tree := &Tree[G]{
		root:      0,
		aiMark:    aiMark,
		enemyMark: aiMark.Other(),
		initial:   board.Clone(),
		rounds:    DefaultRounds,
	}
	tree.nodes = []node[G]{{parent: none, board: board.Clone(), turn: game.MarkX}}
	return tree
}

// Get the mark the tree plans for
func (t *Tree[G]) Mark() game.Mark {
	return t.aiMark
}

// Set the number of exploration rounds per decision
func (t *Tree[G]) SetRounds(rounds int) {
	t.rounds = max(1, rounds)
}

// Get the size of the arena, including nodes made unreachable by
// rerooting
func (t *Tree[G]) Size() int {
	return len(t.nodes)
}

// Reset collapses the tree back to a single unexpanded root holding
// the board the tree was created with, discarding every accumulated
// statistic. Used when starting a new game.
func (t *Tree[G]) Reset() {
	t.nodes = []node[G]{{parent: none, board: t.initial.Clone(), turn: game.MarkX}}
	t.root = 0
}

// SwitchStartingMark flips which mark moves first at the root. This
// bootstraps playing as O while the root still says "X moves first";
// it is only meaningful before any exploration, so it panics once the
// arena holds more than the root.
func (t *Tree[G]) SwitchStartingMark() {
	if len(t.nodes) != 1 {
		panic(fmt.Sprintf("mcts: switching the starting mark on a tree of %d nodes, only a fresh root may switch", len(t.nodes)))
	}
	t.nodes[t.root].turn = t.nodes[t.root].turn.Other()
}

// ChooseMove runs one full decision cycle: locate the current board
// inside the tree, explore for the configured number of rounds, pick
// the child with the best estimated winning chance, advance the root
// to it and return the corresponding move.
//
// The caller must pass the authoritative board after all moves played
// since the previous call. Panics when the board cannot be found
// among the root and its children (the game diverged from the tracked
// tree) or when the position has no legal moves.
func (t *Tree[G]) ChooseMove(current G) game.Move {
	rng := rand.New(rand.NewSource(SeedGeneratorFn()))

	t.reroot(t.findState(current, rng))
	if len(t.nodes[t.root].board.PossibleMoves()) == 0 {
		panic("mcts: choose-move called on a terminal position")
	}

	for round := 0; round < t.rounds; round++ {
		t.explore(rng)
	}

	best := t.bestChild()
	t.reroot(best)
	return t.nodes[best].move
}

// findState locates the given board among the current root and its
// direct children, expanding the root first when needed.
func (t *Tree[G]) findState(board G, rng *rand.Rand) int {
	if t.nodes[t.root].board.Equal(board) {
		return t.root
	}
	if t.nodes[t.root].children == nil {
		t.expand(t.root, rng)
	}
	for _, child := range t.nodes[t.root].children {
		if t.nodes[child].board.Equal(board) {
			return child
		}
	}
	panic("mcts: board not found in the tree, the game diverged from the tracked state")
}

// reroot detaches the node from its parent and makes it the new root.
// Statistics of the surviving subtree stay intact.
func (t *Tree[G]) reroot(id int) {
	t.nodes[id].parent = none
	t.root = id
}

// One exploration round: selection, simulation, backpropagation.
func (t *Tree[G]) explore(rng *rand.Rand) {
	id := t.selectNode(rng)
	result := t.simulate(id, rng)
	t.backPropagate(id, result)
}

// selectNode walks down from the root: an unvisited node is selected
// outright, otherwise the node is lazily expanded and the walk
// continues into the first unvisited child, or failing that into the
// child with the highest UCB1 potential. A node whose expansion
// yields no children is terminal and selected as is.
func (t *Tree[G]) selectNode(rng *rand.Rand) int {
	id := t.root
	for {
		if t.nodes[id].plays == 0 {
			return id
		}
		if t.nodes[id].children == nil {
			t.expand(id, rng)
		}
		children := t.nodes[id].children
		if len(children) == 0 {
			return id
		}

		next := none
		for _, child := range children {
			if t.nodes[child].plays == 0 {
				next = child
				break
			}
		}
		if next != none {
			return next
		}
		id = t.bestPotential(id)
	}
}

// expand materializes one child per legal move. The move list is
// shuffled once here so that the first-unvisited scan in selectNode
// amounts to an unbiased random visit order without re-randomizing on
// every pass.
func (t *Tree[G]) expand(id int, rng *rand.Rand) {
	moves := t.nodes[id].board.PossibleMoves()
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	turn := t.nodes[id].turn
	children := make([]int, 0, len(moves))
	for _, mv := range moves {
		board := t.nodes[id].board.Clone()
		board.Play(mv, turn)
		children = append(children, len(t.nodes))
		t.nodes = append(t.nodes, node[G]{
			parent: id,
			board:  board,
			turn:   turn.Other(),
			move:   mv,
		})
	}
	t.nodes[id].moves = moves
	t.nodes[id].children = children
}

// bestPotential returns the child of id maximizing the UCB1
// potential. All children must have been visited.
//
// The exploitation term is the child's loss count over the parent's
// prior visit count, not the textbook wins/plays; changing it changes
// playing strength.
func (t *Tree[G]) bestPotential(id int) int {
	parentPlays := float64(t.nodes[id].plays - 1)
	best := none
	bestValue := math.Inf(-1)
	for _, child := range t.nodes[id].children {
		plays := float64(t.nodes[child].plays)
		losses := plays - t.nodes[child].wins
		potential := losses/parentPlays +
			ExplorationParam*math.Sqrt(math.Log(parentPlays)/plays)
		if potential > bestValue {
			bestValue = potential
			best = child
		}
	}
	return best
}

// simulate plays uniformly random legal moves from the node's
// position, starting with the node's player to move, until the game
// ends, and returns the terminal state.
func (t *Tree[G]) simulate(id int, rng *rand.Rand) game.GameState {
	board := t.nodes[id].board.Clone()
	mark := t.nodes[id].turn
	for board.State() == game.Playing {
		moves := board.PossibleMoves()
		board.Play(moves[rng.Intn(len(moves))], mark)
		mark = mark.Other()
	}
	return board.State()
}

// backPropagate walks from the simulated node up to the root
// inclusive, counting the playout everywhere and crediting a full win
// to every node whose player to move won the playout, half a win to
// everyone on a draw.
func (t *Tree[G]) backPropagate(id int, result game.GameState) {
	winner, won := result.Winner()
	for id != none {
		t.nodes[id].plays++
		if won {
			if winner == t.nodes[id].turn {
				t.nodes[id].wins++
			}
		} else if result == game.Draw {
			t.nodes[id].wins += 0.5
		}
		id = t.nodes[id].parent
	}
}

// bestChild picks the root child with the highest winning chance for
// the AI mark, first encountered wins ties.
func (t *Tree[G]) bestChild() int {
	best := none
	bestChance := math.Inf(-1)
	for _, child := range t.nodes[t.root].children {
		if chance := t.nodes[child].winningChance(t.aiMark); chance > bestChance {
			bestChance = chance
			best = child
		}
	}
	if best == none {
		panic("mcts: no children to choose a move from")
	}
	return best
}
