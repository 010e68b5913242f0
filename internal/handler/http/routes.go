// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(h.withRateLimit())
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	router.Route("/posts", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)
		r.Get("/{id}", h.getPost)
		r.Put("/{id}", h.updatePost)
		r.Delete("/{id}", h.deletePost)
	})

	router.MethodNotAllowed(methodNotAllowedAsNotFound)

	return router
}
