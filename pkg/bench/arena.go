// Package bench plays series of games between two agents, spreading
// the matches over worker goroutines and collecting win statistics.
// It is how agent configurations are compared against each other.
package bench

import (
	"context"
	"runtime"
	"sync"

	"github.com/Cr3sp1/TicTacFoe/pkg/ai"
	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// AgentFactory builds a fresh agent for one match. Agents keep state
// between moves, so every match gets its own instances.
type AgentFactory[G game.Game[G]] func(board G, mark game.Mark) ai.Agent[G]

// Arena pits two agent configurations against each other.
type Arena[G game.Game[G]] struct {
	Stats

	newBoard func() G
	player1  AgentFactory[G]
	player2  AgentFactory[G]
	games    int
	workers  int
	listener Listener
}

// Create an arena playing games on boards produced by newBoard.
// Defaults to 100 games on runtime.NumCPU() workers.
func NewArena[G game.Game[G]](newBoard func() G, player1, player2 AgentFactory[G]) *Arena[G] {
	return &Arena[G]{
		newBoard: newBoard,
		player1:  player1,
		player2:  player2,
		games:    100,
		workers:  runtime.NumCPU(),
		listener: NopListener{},
	}
}

// Setup overrides the number of games and workers; zero or negative
// values keep the current setting.
func (a *Arena[G]) Setup(games, workers int) *Arena[G] {
	if games > 0 {
		a.games = games
	}
	if workers > 0 {
		a.workers = workers
	}
	return a
}

// SetListener registers a progress listener.
func (a *Arena[G]) SetListener(l Listener) *Arena[G] {
	if l != nil {
		a.listener = l
	}
	return a
}

// Run plays all the matches and blocks until they finish or ctx is
// canceled. Matches already started always run to completion.
func (a *Arena[G]) Run(ctx context.Context) *Stats {
	matches := make(chan int)

	var wg sync.WaitGroup
	wg.Add(a.workers)
	for w := 0; w < a.workers; w++ {
		go func() {
			defer wg.Done()
			for match := range matches {
				a.playMatch(match)
			}
		}()
	}

feed:
	for match := 0; match < a.games; match++ {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		select {
		case matches <- match:
		case <-ctx.Done():
			break feed
		}
	}
	close(matches)
	wg.Wait()

	return &a.Stats
}

// playMatch plays one game to its end. Player 1 holds X in even
// matches and O in odd ones, so both configurations open equally.
func (a *Arena[G]) playMatch(match int) {
	board := a.newBoard()

	player1Mark := game.MarkX
	if match%2 == 1 {
		player1Mark = game.MarkO
	}
	first := a.player1(board, player1Mark)
	second := a.player2(board, player1Mark.Other())
	if player1Mark != game.MarkX {
		first, second = second, first
	}

	moves := 0
	current, waiting := first, second
	for board.State() == game.Playing {
		board.Play(current.ChooseMove(board), current.Mark())
		moves++
		current, waiting = waiting, current
	}

	result := Draw
	if winner, won := board.State().Winner(); won {
		if winner == player1Mark {
			result = Player1Win
		} else {
			result = Player2Win
		}
	}
	a.record(result)
	a.listener.GameFinished(MatchRecord{
		Game:        match,
		Moves:       moves,
		Result:      result,
		Player1Mark: player1Mark,
	})
}
