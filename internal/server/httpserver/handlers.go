package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cr3sp1/TicTacFoe/internal/session"
	"github.com/Cr3sp1/TicTacFoe/pkg/ai"
)

type handlers struct {
	svc *session.Service
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("httpserver: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	kind, err := session.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	strength := ai.Strong
	if req.Strength != "" {
		strength, err = ai.ParseStrength(req.Strength)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	snap, err := h.svc.Create(kind, strength, req.AIStarts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create the game")
		return
	}
	writeJSON(w, http.StatusCreated, snapshotToResponse(snap))
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	writeJSON(w, http.StatusOK, snapshotToResponse(snap))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PlayMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	snap, err := h.svc.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	mv, err := dtoToMove(snap.Kind, req.Move)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err = h.svc.Move(id, mv)
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, session.ErrGameOver):
		writeError(w, http.StatusConflict, "the game is already over")
	case errors.Is(err, session.ErrIllegalMove):
		writeError(w, http.StatusUnprocessableEntity, "illegal move")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to play the move")
	default:
		writeJSON(w, http.StatusOK, snapshotToResponse(snap))
	}
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}

	snap, err := h.svc.Reset(chi.URLParam(r, "id"), req.AIStarts)
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	writeJSON(w, http.StatusOK, snapshotToResponse(snap))
}
