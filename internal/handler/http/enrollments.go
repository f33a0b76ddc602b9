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

func (h *Handler) enrollCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var enrollment models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, false, http.StatusBadRequest)
		return
	}

	uid, _ := utils.GetUIDFromContext(ctx)
	if _, err := h.services.EnrollmentService.Enroll(ctx, uid, enrollment); err != nil {
		utils.WriteJSON(w, false, statusFromError(err))
		return
	}

	utils.WriteJSON(w, true, http.StatusCreated)
}

// enrolledCourses lists the caller's enrollments. Admins get all of them.
func (h *Handler) enrolledCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uid, _ := utils.GetUIDFromContext(ctx)
	enrollments, err := h.services.EnrollmentService.EnrolledCourses(ctx, uid)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			utils.WriteJSON(w, models.CurrentUserResponse{Auth: false}, status)
			return
		}
		log.Err(err).Str("uid", uid).Msg("error listing enrolled courses")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, enrollments, http.StatusOK)
}

func (h *Handler) changeEnrollStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ChangeEnrollStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, false, http.StatusBadRequest)
		return
	}

	if err := h.services.EnrollmentService.ChangeStatus(r.Context(), request); err != nil {
		utils.WriteJSON(w, false, statusFromError(err))
		return
	}

	utils.WriteJSON(w, true, http.StatusOK)
}
