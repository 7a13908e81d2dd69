package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// ANSI palette indices, resolved against the output's color profile.
const (
	colorX      = "1" // red
	colorO      = "4" // blue
	colorActive = "2" // green
	colorAccent = "3" // yellow
	colorDraw   = "5" // magenta
)

type renderer struct {
	out *termenv.Output
}

func (r *renderer) mark(m game.Mark) string {
	switch m {
	case game.MarkX:
		return r.out.String("X").Foreground(r.out.Color(colorX)).Bold().String()
	case game.MarkO:
		return r.out.String("O").Foreground(r.out.Color(colorO)).Bold().String()
	}
	return " "
}

func (r *renderer) accent(s string) string {
	return r.out.String(s).Foreground(r.out.Color(colorAccent)).Bold().String()
}

func (r *renderer) status(state game.GameState, current game.Mark) string {
	switch state {
	case game.WonX:
		return r.out.String("Player X WINS!").Foreground(r.out.Color(colorX)).Bold().String()
	case game.WonO:
		return r.out.String("Player O WINS!").Foreground(r.out.Color(colorO)).Bold().String()
	case game.Draw:
		return r.out.String("DRAW!").Foreground(r.out.Color(colorDraw)).Bold().String()
	}
	return r.accent("Current player: " + current.String())
}

// smallBoard renders a classic grid. Empty cells show their position
// digit so the player knows what to type.
func (r *renderer) smallBoard(b *game.SmallBoard) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("───┼───┼───\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("│")
			}
			sb.WriteString(" ")
			if m := b.Get(row, col); m != game.NoMark {
				sb.WriteString(r.mark(m))
			} else {
				sb.WriteString(r.out.String(string(rune('0' + row*3 + col))).Faint().String())
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// bigBoard renders the nine sub-boards in a 3x3 layout. The active
// sub-board is framed in green; decided sub-boards collapse to their
// winner's color.
func (r *renderer) bigBoard(b *game.BigBoard) string {
	activeRow, activeCol, hasActive := b.ActiveBoard()

	var sb strings.Builder
	for boardRow := 0; boardRow < 3; boardRow++ {
		if boardRow > 0 {
			sb.WriteString(strings.Repeat("━", 6) + "╋" + strings.Repeat("━", 7) + "╋" + strings.Repeat("━", 6) + "\n")
		}
		for cellRow := 0; cellRow < 3; cellRow++ {
			for boardCol := 0; boardCol < 3; boardCol++ {
				if boardCol > 0 {
					sb.WriteString(" ┃ ")
				}
				sb.WriteString(r.subBoardRow(b, boardRow, boardCol, cellRow,
					hasActive && boardRow == activeRow && boardCol == activeCol))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (r *renderer) subBoardRow(b *game.BigBoard, boardRow, boardCol, cellRow int, active bool) string {
	sub := b.BoardAt(boardRow, boardCol)

	frame := func(s string) string { return s }
	switch sub.State() {
	case game.WonX:
		frame = func(s string) string {
			return r.out.String(s).Foreground(r.out.Color(colorX)).String()
		}
	case game.WonO:
		frame = func(s string) string {
			return r.out.String(s).Foreground(r.out.Color(colorO)).String()
		}
	case game.Draw:
		frame = func(s string) string {
			return r.out.String(s).Foreground(r.out.Color(colorDraw)).String()
		}
	default:
		if active {
			frame = func(s string) string {
				return r.out.String(s).Foreground(r.out.Color(colorActive)).String()
			}
		}
	}

	var sb strings.Builder
	for col := 0; col < 3; col++ {
		if col > 0 {
			sb.WriteString(frame("│"))
		}
		if m := sub.Get(cellRow, col); m != game.NoMark {
			sb.WriteString(r.mark(m))
		} else if active || sub.State() == game.Playing {
			sb.WriteString(r.out.String(string(rune('0' + cellRow*3 + col))).Faint().String())
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
