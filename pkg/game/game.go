package game

// Game is the capability contract a plannable position must satisfy.
// It is the only surface the MCTS engine and the agents depend on,
// which is why one engine implementation serves both board kinds.
//
// Play assumes legality was checked upstream: feeding it an illegal
// move panics. PossibleMoves returns an empty slice exactly when the
// position is terminal. Score is +1 when mark has won, -1 when the
// opponent has, 0 for a draw or an unfinished game.
type Game[G any] interface {
	Play(mv Move, mark Mark)
	PossibleMoves() []Move
	Score(mark Mark) int
	State() GameState
	Clone() G
	Equal(G) bool
}
