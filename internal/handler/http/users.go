// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/service"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/models"
)

// registerOrLogin creates the user on first sight and always answers with a
// fresh token.
func (h *Handler) registerOrLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.AuthResponse{Success: false}, http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.RegisterOrLogin(ctx, user)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("user registration or login failed")
		utils.WriteJSON(w, models.AuthResponse{Success: false}, status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.AuthResponse{Success: false}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Success: true, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uid, _ := utils.GetUIDFromContext(ctx)
	user, err := h.services.UserService.GetUser(ctx, uid)
	if err != nil {
		status := statusFromError(err)
		if status != http.StatusNotFound {
			log.Err(err).Str("uid", uid).Msg("error getting user")
		}
		utils.WriteJSON(w, models.CurrentUserResponse{Auth: false}, status)
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{Auth: true, User: &user}, http.StatusOK)
}

func (h *Handler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	failed := models.OperationResponse{Success: false, Message: MessagePromotionFailed}

	var request models.MakeAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, failed, http.StatusBadRequest)
		return
	}

	err := h.services.UserService.MakeAdmin(ctx, request)
	switch {
	case err == nil:
		utils.WriteJSON(w, models.OperationResponse{Success: true, Message: MessagePromotionSucceeded}, http.StatusOK)
	case errors.Is(err, store.ErrUserNotFound):
		utils.WriteJSON(w, failed, http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidDataProvided):
		utils.WriteJSON(w, failed, http.StatusBadRequest)
	default:
		log.Err(err).Msg("error promoting user to admin")
		utils.WriteJSON(w, failed, http.StatusInternalServerError)
	}
}
