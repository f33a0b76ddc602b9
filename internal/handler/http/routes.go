// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withCORS, h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)

		r.Post("/users", h.registerOrLogin)
		r.Get("/courses", h.listCourses)
		r.Get("/course/{courseId}", h.getCourse)
		r.Post("/addReview", h.addReview)
		r.Get("/reviews", h.listReviews)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/getUser", h.getUser)
		r.Post("/makeAdmin", h.makeAdmin)
		r.Post("/enrollCourse", h.enrollCourse)
		r.Get("/enrolledCourses", h.enrolledCourses)
		r.Put("/changeEnrollStatus", h.changeEnrollStatus)

		r.With(h.courseAdminMiddlewares()...).Post("/addCourse", h.addCourse)
	})

	// course deletion is public unless admin rights are enforced
	router.Group(func(r chi.Router) {
		if h.enforceAdmin {
			r.Use(h.auth)
		}
		r.Use(h.courseAdminMiddlewares()...)

		r.Delete("/courses/{id}", h.deleteCourse)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// courseAdminMiddlewares returns the admin check for course management, or
// nothing when admin rights are not enforced.
func (h *Handler) courseAdminMiddlewares() chi.Middlewares {
	if !h.enforceAdmin {
		return nil
	}
	return chi.Middlewares{h.adminOnly}
}
