package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/provision/application/{name}", h.provisionApplication)
		r.Post("/api/provision/device/{uuid}", h.provisionDevice)
		r.Get("/api/history/", h.listHistory)
		r.Get("/api/version/", h.getServerVersion)
	})

	return router
}
