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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/token", h.token)
		r.Post("/users/", h.register)
		r.Get("/books/", h.listBooks)
		r.Get("/books/{bookID}", h.getBook)
		r.Delete("/books/{bookID}", h.deleteBook)
	})

	// routes guarded by the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/books/", h.createBook)
	})

	return router
}
