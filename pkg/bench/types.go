package bench

import (
	"sync/atomic"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// Result of a single match from player 1's point of view.
type Result int

const (
	Player1Win Result = 1
	Player2Win Result = -1
	Draw       Result = 0
)

func (r Result) String() string {
	switch r {
	case Player1Win:
		return "player 1 wins"
	case Player2Win:
		return "player 2 wins"
	}
	return "draw"
}

// MatchRecord describes one finished game.
type MatchRecord struct {
	Game   int // 0-based match number
	Moves  int
	Result Result
	// Mark player 1 held during this match; marks alternate between
	// games so both players open equally often.
	Player1Mark game.Mark
}

// Stats counts outcomes across matches. Safe for concurrent use.
type Stats struct {
	p1Wins uint32
	p2Wins uint32
	draws  uint32
}

func (s *Stats) record(r Result) {
	switch r {
	case Player1Win:
		atomic.AddUint32(&s.p1Wins, 1)
	case Player2Win:
		atomic.AddUint32(&s.p2Wins, 1)
	default:
		atomic.AddUint32(&s.draws, 1)
	}
}

func (s *Stats) Player1Wins() int {
	return int(atomic.LoadUint32(&s.p1Wins))
}

func (s *Stats) Player2Wins() int {
	return int(atomic.LoadUint32(&s.p2Wins))
}

func (s *Stats) Draws() int {
	return int(atomic.LoadUint32(&s.draws))
}

func (s *Stats) Total() int {
	return s.Player1Wins() + s.Player2Wins() + s.Draws()
}
