// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS answers preflight requests and sets the CORS response headers for
// the configured origins. With no origins configured every origin is allowed.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", accessTokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler(next)
}
