// Package tui is the line-oriented terminal front end: menus to pick
// a game and an opponent, colored board rendering, and a read-eval
// loop that validates every move before the board sees it.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/Cr3sp1/TicTacFoe/pkg/ai"
	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

type gameMode int

const (
	modePvP gameMode = iota
	modePvE
)

// App drives the interactive session. It reads one command per line,
// so it works in any terminal and is trivially scriptable in tests.
type App struct {
	in     *bufio.Scanner
	out    io.Writer
	render renderer
	rounds int
	quit   bool
}

// Create an app reading commands from in and writing to out. The
// profile controls coloring; rounds tunes the strong agent, <= 0
// keeps the engine default.
func New(in io.Reader, out io.Writer, profile termenv.Profile, rounds int) *App {
	return &App{
		in:     bufio.NewScanner(in),
		out:    out,
		render: renderer{out: termenv.NewOutput(out, termenv.WithProfile(profile))},
		rounds: rounds,
	}
}

// Run shows the main menu until the player quits or input ends.
func (a *App) Run() error {
	fmt.Fprintln(a.out, a.render.accent("TIC TAC FOE"))

	for !a.quit {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Select game:")
		fmt.Fprintln(a.out, "  1) Tic Tac Toe")
		fmt.Fprintln(a.out, "  2) Ultimate Tic Tac Toe")
		fmt.Fprintln(a.out, "  q) Quit")

		line, ok := a.prompt("> ")
		if !ok {
			return nil
		}
		switch line {
		case "1":
			a.gameMenu(false)
		case "2":
			a.gameMenu(true)
		case "q":
			a.quit = true
		default:
			fmt.Fprintln(a.out, "Please choose 1, 2 or q.")
		}
	}
	return nil
}

func (a *App) prompt(p string) (string, bool) {
	fmt.Fprint(a.out, p)
	if !a.in.Scan() {
		a.quit = true
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(a.in.Text())), true
}

// gameMenu picks the mode, and for games against the machine, the
// opponent's strength.
func (a *App) gameMenu(ultimate bool) {
	for !a.quit {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Select game mode:")
		fmt.Fprintln(a.out, "  1) Local PvP")
		fmt.Fprintln(a.out, "  2) Play vs AI")
		fmt.Fprintln(a.out, "  b) Back")

		line, ok := a.prompt("> ")
		if !ok {
			return
		}
		switch line {
		case "1":
			if ultimate {
				a.playUltimate(modePvP, ai.Weak)
			} else {
				a.playClassic(modePvP, ai.Weak)
			}
			return
		case "2":
			strength, ok := a.strengthMenu()
			if !ok {
				continue
			}
			if ultimate {
				a.playUltimate(modePvE, strength)
			} else {
				a.playClassic(modePvE, strength)
			}
			return
		case "b":
			return
		default:
			fmt.Fprintln(a.out, "Please choose 1, 2 or b.")
		}
	}
}

func (a *App) strengthMenu() (ai.Strength, bool) {
	for !a.quit {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Select AI strength:")
		fmt.Fprintln(a.out, "  1) Weak")
		fmt.Fprintln(a.out, "  2) Medium")
		fmt.Fprintln(a.out, "  3) Strong")

		line, ok := a.prompt("> ")
		if !ok {
			return ai.Weak, false
		}
		switch line {
		case "1":
			return ai.Weak, true
		case "2":
			return ai.Medium, true
		case "3":
			return ai.Strong, true
		default:
			fmt.Fprintln(a.out, "Please choose 1, 2 or 3.")
		}
	}
	return ai.Weak, false
}

func (a *App) printCommands(mode gameMode, turn int) {
	if mode == modePvE && turn == 0 {
		fmt.Fprintln(a.out, "s: play second | r: reset | m: menu | q: quit")
	} else {
		fmt.Fprintln(a.out, "r: reset | m: menu | q: quit")
	}
}

func (a *App) newClassicAgent(mode gameMode, strength ai.Strength, board *game.SmallBoard) ai.Agent[*game.SmallBoard] {
	if mode != modePvE {
		return nil
	}
	agent := ai.New(strength, board, game.MarkO)
	if a.rounds > 0 {
		if planner, ok := agent.(*ai.Planner[*game.SmallBoard]); ok {
			planner.SetRounds(a.rounds)
		}
	}
	return agent
}

func (a *App) playClassic(mode gameMode, strength ai.Strength) {
	board := game.NewSmallBoard()
	agent := a.newClassicAgent(mode, strength, board)
	current := game.MarkX
	turn := 0

	reset := func() {
		board = game.NewSmallBoard()
		if agent != nil {
			agent = a.newClassicAgent(mode, strength, board)
		}
		current = game.MarkX
		turn = 0
	}

	for !a.quit {
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, a.render.smallBoard(board))
		fmt.Fprintln(a.out, a.render.status(board.State(), current))
		a.printCommands(mode, turn)

		line, ok := a.prompt("Enter a position (0-8): ")
		if !ok {
			return
		}
		switch line {
		case "q":
			a.quit = true
			return
		case "m":
			return
		case "r":
			reset()
			continue
		case "s":
			if mode == modePvE && turn == 0 && board.State() == game.Playing {
				agent.SwitchStartingMark()
				board.Play(agent.ChooseMove(board), agent.Mark())
				turn++
				continue
			}
		}
		if board.State() != game.Playing {
			fmt.Fprintln(a.out, "The game is over. r starts a new one.")
			continue
		}

		pos, err := strconv.Atoi(line)
		if err != nil || pos < 0 || pos > 8 {
			fmt.Fprintln(a.out, "Invalid input! Please enter a number between 0 and 8!")
			continue
		}
		row, col := pos/3, pos%3
		if !board.Playable(row, col) {
			fmt.Fprintf(a.out, "Invalid input! Position %d is already occupied!\n", pos)
			continue
		}

		board.MakeMove(row, col, current)
		turn++
		if board.State() != game.Playing {
			continue
		}

		if mode == modePvE {
			board.Play(agent.ChooseMove(board), agent.Mark())
			turn++
		} else {
			current = current.Other()
		}
	}
}

func (a *App) newUltimateAgent(mode gameMode, strength ai.Strength, board *game.BigBoard) ai.Agent[*game.BigBoard] {
	if mode != modePvE {
		return nil
	}
	agent := ai.New(strength, board, game.MarkO)
	if a.rounds > 0 {
		if planner, ok := agent.(*ai.Planner[*game.BigBoard]); ok {
			planner.SetRounds(a.rounds)
		}
	}
	return agent
}

func (a *App) playUltimate(mode gameMode, strength ai.Strength) {
	board := game.NewBigBoard()
	agent := a.newUltimateAgent(mode, strength, board)
	current := game.MarkX
	turn := 0

	reset := func() {
		board = game.NewBigBoard()
		if agent != nil {
			agent = a.newUltimateAgent(mode, strength, board)
		}
		current = game.MarkX
		turn = 0
	}

	for !a.quit {
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, a.render.bigBoard(board))
		fmt.Fprintln(a.out, a.render.status(board.State(), current))
		if activeRow, activeCol, hasActive := board.ActiveBoard(); hasActive {
			fmt.Fprintf(a.out, "You must play on board %d.\n", activeRow*3+activeCol)
		}
		a.printCommands(mode, turn)

		line, ok := a.prompt("Enter board and cell (0-8 0-8): ")
		if !ok {
			return
		}
		switch line {
		case "q":
			a.quit = true
			return
		case "m":
			return
		case "r":
			reset()
			continue
		case "s":
			if mode == modePvE && turn == 0 && board.State() == game.Playing {
				agent.SwitchStartingMark()
				board.Play(agent.ChooseMove(board), agent.Mark())
				turn++
				continue
			}
		}
		if board.State() != game.Playing {
			fmt.Fprintln(a.out, "The game is over. r starts a new one.")
			continue
		}

		mv, err := parseUltimateMove(line)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if !legalMove(board, mv) {
			fmt.Fprintln(a.out, "Invalid input! That move is not available!")
			continue
		}

		board.Play(mv, current)
		turn++
		if board.State() != game.Playing {
			continue
		}

		if mode == modePvE {
			board.Play(agent.ChooseMove(board), agent.Mark())
			turn++
		} else {
			current = current.Other()
		}
	}
}

// parseUltimateMove reads "board cell", both 0-8 counted row-major.
func parseUltimateMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("Invalid input! Please enter a board and a cell, like: 4 2")
	}
	boardPos, err1 := strconv.Atoi(fields[0])
	cellPos, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || boardPos < 0 || boardPos > 8 || cellPos < 0 || cellPos > 8 {
		return game.Move{}, fmt.Errorf("Invalid input! Both numbers must be between 0 and 8!")
	}
	return game.UltimateMove(boardPos/3, boardPos%3, cellPos/3, cellPos%3), nil
}

func legalMove(board *game.BigBoard, mv game.Move) bool {
	for _, candidate := range board.PossibleMoves() {
		if candidate == mv {
			return true
		}
	}
	return false
}
