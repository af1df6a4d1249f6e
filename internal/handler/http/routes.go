package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	landingPath = "/"
	journalPath = "/garden"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.sessionGate)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.signUp)
			r.Post("/auth/signin", h.signIn)
			r.Post("/auth/signout", h.signOut)
			r.Get("/version", h.getServerVersion)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/user", h.currentUser)

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", h.createNote)
				r.Get("/", h.listNotes)
				r.Get("/count", h.countNotes)
				r.Get("/{id}", h.getNote)
				r.Patch("/{id}", h.updateNote)
				r.Delete("/{id}", h.deleteNote)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.getProfile)
				r.Patch("/", h.updateProfile)
				r.Post("/avatar", h.uploadAvatar)
			})
		})
	})

	if h.pagesDir != "" {
		router.Get("/*", h.servePages().ServeHTTP)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) servePages() http.Handler {
	return http.FileServer(http.Dir(h.pagesDir))
}
