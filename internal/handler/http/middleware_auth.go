// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/service"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/models"
)

// accessTokenHeader carries the JWT issued by POST /users.
const accessTokenHeader = "x-access-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the raw token from the "x-access-token" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the uid carried by
// the token in the request context with [utils.WithUID].
//
// Requests are rejected with HTTP 401 and a {"message": ...} body when:
//   - the header is absent or empty ([MessageNoToken]);
//   - the token is expired, signed with another key or otherwise invalid
//     ([MessageTokenMismatch]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(accessTokenHeader)
		if tokenString == "" {
			log.Err(ErrNoAccessToken).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: MessageNoToken}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.MessageResponse{Message: MessageTokenMismatch}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUID(ctx, token.UID)))
	})
}

// adminOnly lets the request through only when the authenticated user is an
// admin. It must be chained after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		uid, ok := utils.GetUIDFromContext(r.Context())
		if !ok {
			log.Err(ErrNoAccessToken).Msg("admin check without authenticated uid")
			utils.WriteJSON(w, models.MessageResponse{Message: MessageNoToken}, http.StatusUnauthorized)
			return
		}

		err := h.services.UserService.RequireAdmin(r.Context(), uid)
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, service.ErrAdminRightsRequired):
			log.Warn().Str("uid", uid).Msg("admin rights required")
			utils.WriteJSON(w, models.MessageResponse{Message: MessageAdminRequired}, http.StatusForbidden)
		case errors.Is(err, store.ErrUserNotFound):
			log.Warn().Str("uid", uid).Msg("admin check for unknown user")
			utils.WriteJSON(w, models.MessageResponse{Message: MessageAdminRequired}, http.StatusForbidden)
		default:
			log.Err(err).Str("uid", uid).Msg("admin check failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}
