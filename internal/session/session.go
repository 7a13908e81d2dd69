// Package session manages live games played against an agent. Each
// session pairs one board with one opponent; the service validates
// every incoming move at this boundary, so the panicking game core
// below it only ever sees legal moves.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cr3sp1/TicTacFoe/pkg/ai"
	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// Kind selects which of the two games a session plays.
type Kind string

const (
	Classic  Kind = "classic"
	Ultimate Kind = "ultimate"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Classic, Ultimate:
		return Kind(s), nil
	}
	return "", fmt.Errorf("session: unknown game kind %q", s)
}

// Errors exposed by the service.
var (
	ErrNotFound    = errors.New("session: game not found")
	ErrGameOver    = errors.New("session: the game is already over")
	ErrIllegalMove = errors.New("session: illegal move")
)

// Session is one running game against an agent. Exactly one of the
// two board fields is set, matching Kind.
type session struct {
	id        string
	kind      Kind
	small     *game.SmallBoard
	big       *game.BigBoard
	smallAI   ai.Agent[*game.SmallBoard]
	bigAI     ai.Agent[*game.BigBoard]
	humanMark game.Mark
	created   time.Time
	updated   time.Time
}

// BoardSnapshot is the plain-data copy of a single 3x3 grid.
type BoardSnapshot struct {
	Cells [9]game.Mark
	State game.GameState
}

// Snapshot is a copy of a session safe to hand out of the lock.
type Snapshot struct {
	ID        string
	Kind      Kind
	HumanMark game.Mark
	AIMark    game.Mark
	State     game.GameState
	Board     BoardSnapshot    // classic
	Boards    [9]BoardSnapshot // ultimate
	HasActive bool
	ActiveRow int
	ActiveCol int
	Legal     []game.Move
	AIMove    *game.Move
}

// Service holds the sessions behind a mutex.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	rounds   int
}

// Create a service; rounds tunes the strong agent's search effort,
// <= 0 keeps the engine default.
func NewService(rounds int) *Service {
	return &Service{
		sessions: make(map[string]*session),
		rounds:   rounds,
	}
}

// Create starts a game of the given kind against an agent of the
// given strength. The human plays X; with aiFirst the agent opens the
// game and its first move is included in the snapshot.
func (s *Service) Create(kind Kind, strength ai.Strength, aiFirst bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:        uuid.NewString(),
		kind:      kind,
		humanMark: game.MarkX,
		created:   time.Now(),
		updated:   time.Now(),
	}

	switch kind {
	case Classic:
		sess.small = game.NewSmallBoard()
		sess.smallAI = ai.New(strength, sess.small, game.MarkO)
		if s.rounds > 0 {
			if planner, ok := sess.smallAI.(*ai.Planner[*game.SmallBoard]); ok {
				planner.SetRounds(s.rounds)
			}
		}
	case Ultimate:
		sess.big = game.NewBigBoard()
		sess.bigAI = ai.New(strength, sess.big, game.MarkO)
		if s.rounds > 0 {
			if planner, ok := sess.bigAI.(*ai.Planner[*game.BigBoard]); ok {
				planner.SetRounds(s.rounds)
			}
		}
	default:
		return Snapshot{}, fmt.Errorf("session: unknown game kind %q", kind)
	}

	var aiMove *game.Move
	if aiFirst {
		// The agent opens, so its mark moves first.
		sess.switchStartingMark()
		aiMove = sess.playAI()
	}

	s.sessions[sess.id] = sess
	return sess.snapshot(aiMove), nil
}

// Get returns the current state of a session.
func (s *Service) Get(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return sess.snapshot(nil), nil
}

// Move applies the human move, then lets the agent reply when the
// game is still running. Illegal moves are reported as errors, never
// forwarded to the board.
func (s *Service) Move(id string, mv game.Move) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if sess.state().Terminal() {
		return Snapshot{}, ErrGameOver
	}
	if !sess.legal(mv) {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}

	sess.play(mv, sess.humanMark)
	sess.updated = time.Now()

	var aiMove *game.Move
	if !sess.state().Terminal() {
		aiMove = sess.playAI()
	}
	return sess.snapshot(aiMove), nil
}

// Reset starts the session's game over, keeping the same opponent.
// With aiFirst the agent opens the new game.
func (s *Service) Reset(id string, aiFirst bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	switch sess.kind {
	case Classic:
		sess.small = game.NewSmallBoard()
		sess.smallAI.Reset()
	case Ultimate:
		sess.big = game.NewBigBoard()
		sess.bigAI.Reset()
	}
	sess.updated = time.Now()

	var aiMove *game.Move
	if aiFirst {
		sess.switchStartingMark()
		aiMove = sess.playAI()
	}
	return sess.snapshot(aiMove), nil
}

func (sess *session) state() game.GameState {
	if sess.kind == Classic {
		return sess.small.State()
	}
	return sess.big.State()
}

func (sess *session) legal(mv game.Move) bool {
	var moves []game.Move
	if sess.kind == Classic {
		moves = sess.small.PossibleMoves()
	} else {
		moves = sess.big.PossibleMoves()
	}
	for _, candidate := range moves {
		if candidate == mv {
			return true
		}
	}
	return false
}

func (sess *session) play(mv game.Move, mark game.Mark) {
	if sess.kind == Classic {
		sess.small.Play(mv, mark)
	} else {
		sess.big.Play(mv, mark)
	}
}

func (sess *session) switchStartingMark() {
	if sess.kind == Classic {
		sess.smallAI.SwitchStartingMark()
	} else {
		sess.bigAI.SwitchStartingMark()
	}
}

func (sess *session) playAI() *game.Move {
	var mv game.Move
	if sess.kind == Classic {
		mv = sess.smallAI.ChooseMove(sess.small)
		sess.small.Play(mv, sess.smallAI.Mark())
	} else {
		mv = sess.bigAI.ChooseMove(sess.big)
		sess.big.Play(mv, sess.bigAI.Mark())
	}
	sess.updated = time.Now()
	return &mv
}

func (sess *session) snapshot(aiMove *game.Move) Snapshot {
	snap := Snapshot{
		ID:        sess.id,
		Kind:      sess.kind,
		HumanMark: sess.humanMark,
		AIMark:    sess.humanMark.Other(),
		State:     sess.state(),
		AIMove:    aiMove,
	}

	switch sess.kind {
	case Classic:
		snap.Board = snapshotBoard(sess.small)
		snap.Legal = sess.small.PossibleMoves()
	case Ultimate:
		for boardRow := 0; boardRow < 3; boardRow++ {
			for boardCol := 0; boardCol < 3; boardCol++ {
				snap.Boards[boardRow*3+boardCol] = snapshotBoard(sess.big.BoardAt(boardRow, boardCol))
			}
		}
		snap.ActiveRow, snap.ActiveCol, snap.HasActive = sess.big.ActiveBoard()
		if !snap.HasActive {
			snap.ActiveRow, snap.ActiveCol = -1, -1
		}
		snap.Legal = sess.big.PossibleMoves()
	}
	return snap
}

func snapshotBoard(b *game.SmallBoard) BoardSnapshot {
	var snap BoardSnapshot
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			snap.Cells[row*3+col] = b.Get(row, col)
		}
	}
	snap.State = b.State()
	return snap
}
