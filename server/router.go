package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP API for one editing session.
func NewRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/grid", handleGetGrid(svc))
		r.Put("/text", handleSetText(svc))
		r.Put("/annotations", handleSetAnnotation(svc))
		r.Post("/borders/toggle", handleToggleBorder(svc))
		r.Put("/fields", handleSetField(svc))
		r.Put("/viewport", handleSetViewport(svc))
		r.Post("/export", handleExport(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
