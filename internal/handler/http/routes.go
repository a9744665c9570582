package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A zero requestTimeout disables the per-request
// deadline.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/version", h.getServerVersion)
			r.Get("/logo", h.logo)
			r.Post("/names/sanitize", h.sanitizeName)

			r.Post("/auth/login", h.login)
			r.Post("/auth/register", h.register)
			r.Post("/auth/demo", h.demo)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)

			r.Get("/dashboard/clients", h.clients)
			r.Get("/dashboard/summary", h.summary)
			r.Get("/dashboard/me", h.me)

			r.Post("/credentials", h.manageCredentials)
			r.Post("/avatars", h.createAvatar)
		})
	})

	return router
}
