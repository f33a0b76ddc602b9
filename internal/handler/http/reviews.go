// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/models"
)

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, false, http.StatusBadRequest)
		return
	}

	if _, err := h.services.ReviewService.AddReview(r.Context(), review); err != nil {
		log.Err(err).Msg("error adding review")
		utils.WriteJSON(w, false, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, true, http.StatusCreated)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	reviews, err := h.services.ReviewService.ListReviews(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing reviews")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
