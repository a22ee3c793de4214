package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)

	// notes routes require the platform actor context
	router.Group(func(r chi.Router) {
		r.Use(h.actorContext)
		r.Post("/api/notes/add", h.add)
		r.Post("/api/notes/get", h.get)
		r.Post("/api/notes/edit", h.edit)
		r.Post("/api/notes/remove", h.remove)
		r.Post("/api/notes/import", h.importNotes)
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}
