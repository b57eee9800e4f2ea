package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// apiPrefix is the versioned mount point. Label routes are served both at
// the root and under it.
const apiPrefix = "/api/v4"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// must be set before subrouters are mounted so they inherit it
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Get("/version", h.getServerVersion)

	router.Group(h.labelRoutes)
	router.Route(apiPrefix, func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Group(h.labelRoutes)
	})

	return router
}

func (h *Handler) labelRoutes(r chi.Router) {
	r.Use(h.auth)

	r.Get("/projects/{id}/labels", h.listLabels)
	r.Post("/projects/{id}/labels", h.createLabel)
	r.Delete("/projects/{id}/labels", h.deleteLabel)
	r.Put("/projects/{id}/labels", h.updateLabel)
}
