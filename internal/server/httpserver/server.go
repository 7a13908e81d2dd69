// Package httpserver exposes the session service as a small JSON API,
// one resource per running game.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Cr3sp1/TicTacFoe/internal/session"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(svc *session.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handlers{svc: svc}
	r.Post("/api/games", h.create)
	r.Route("/api/games/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/moves", h.play)
		r.Post("/reset", h.reset)
	})
	return r
}
