package httpserver

import (
	"fmt"

	"github.com/Cr3sp1/TicTacFoe/internal/session"
	"github.com/Cr3sp1/TicTacFoe/pkg/game"
)

// MoveDTO is the wire form of a move. Classic moves carry only Row and
// Col; ultimate moves add the sub-board coordinates.
type MoveDTO struct {
	BoardRow *int `json:"board_row,omitempty"`
	BoardCol *int `json:"board_col,omitempty"`
	Row      int  `json:"row"`
	Col      int  `json:"col"`
}

func moveToDTO(mv game.Move) MoveDTO {
	if mv.IsBase() {
		row, col := mv.Base()
		return MoveDTO{Row: row, Col: col}
	}
	boardRow, boardCol, row, col := mv.Ultimate()
	return MoveDTO{BoardRow: &boardRow, BoardCol: &boardCol, Row: row, Col: col}
}

func dtoToMove(kind session.Kind, dto MoveDTO) (game.Move, error) {
	inRange := func(v int) bool { return v >= 0 && v <= 2 }
	if !inRange(dto.Row) || !inRange(dto.Col) {
		return game.Move{}, fmt.Errorf("cell (%d, %d) out of range", dto.Row, dto.Col)
	}
	if kind == session.Classic {
		if dto.BoardRow != nil || dto.BoardCol != nil {
			return game.Move{}, fmt.Errorf("classic games take no sub-board coordinates")
		}
		return game.BaseMove(dto.Row, dto.Col), nil
	}
	if dto.BoardRow == nil || dto.BoardCol == nil {
		return game.Move{}, fmt.Errorf("ultimate games need sub-board coordinates")
	}
	if !inRange(*dto.BoardRow) || !inRange(*dto.BoardCol) {
		return game.Move{}, fmt.Errorf("sub-board (%d, %d) out of range", *dto.BoardRow, *dto.BoardCol)
	}
	return game.UltimateMove(*dto.BoardRow, *dto.BoardCol, dto.Row, dto.Col), nil
}

type CreateGameRequest struct {
	Kind     string `json:"kind"`
	Strength string `json:"strength"`
	AIStarts bool   `json:"ai_starts"`
}

type PlayMoveRequest struct {
	Move MoveDTO `json:"move"`
}

type ResetRequest struct {
	AIStarts bool `json:"ai_starts"`
}

// BoardDTO carries one 3x3 grid, row-major, cells as "X", "O" or "".
type BoardDTO struct {
	Cells [9]string `json:"cells"`
	State string    `json:"state"`
}

type GameResponse struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	HumanMark  string     `json:"human_mark"`
	AIMark     string     `json:"ai_mark"`
	State      string     `json:"state"`
	Board      *BoardDTO  `json:"board,omitempty"`
	Boards     []BoardDTO `json:"boards,omitempty"`
	ActiveRow  int        `json:"active_board_row"`
	ActiveCol  int        `json:"active_board_col"`
	LegalMoves []MoveDTO  `json:"legal_moves"`
	AIMove     *MoveDTO   `json:"ai_move,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func markToString(m game.Mark) string {
	switch m {
	case game.MarkX:
		return "X"
	case game.MarkO:
		return "O"
	}
	return ""
}

func stateToString(s game.GameState) string {
	switch s {
	case game.Playing:
		return "playing"
	case game.Draw:
		return "draw"
	case game.WonX:
		return "won_x"
	case game.WonO:
		return "won_o"
	}
	return "unknown"
}

func boardToDTO(b session.BoardSnapshot) BoardDTO {
	var dto BoardDTO
	for i, mark := range b.Cells {
		dto.Cells[i] = markToString(mark)
	}
	dto.State = stateToString(b.State)
	return dto
}

func snapshotToResponse(snap session.Snapshot) GameResponse {
	resp := GameResponse{
		ID:        snap.ID,
		Kind:      string(snap.Kind),
		HumanMark: markToString(snap.HumanMark),
		AIMark:    markToString(snap.AIMark),
		State:     stateToString(snap.State),
		ActiveRow: -1,
		ActiveCol: -1,
	}

	switch snap.Kind {
	case session.Classic:
		board := boardToDTO(snap.Board)
		resp.Board = &board
	case session.Ultimate:
		resp.Boards = make([]BoardDTO, 0, len(snap.Boards))
		for _, b := range snap.Boards {
			resp.Boards = append(resp.Boards, boardToDTO(b))
		}
		if snap.HasActive {
			resp.ActiveRow, resp.ActiveCol = snap.ActiveRow, snap.ActiveCol
		}
	}

	resp.LegalMoves = make([]MoveDTO, 0, len(snap.Legal))
	for _, mv := range snap.Legal {
		resp.LegalMoves = append(resp.LegalMoves, moveToDTO(mv))
	}
	if snap.AIMove != nil {
		dto := moveToDTO(*snap.AIMove)
		resp.AIMove = &dto
	}
	return resp
}
