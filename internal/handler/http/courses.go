// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, false, http.StatusBadRequest)
		return
	}

	if _, err := h.services.CourseService.AddCourse(r.Context(), course); err != nil {
		log.Err(err).Msg("error adding course")
		utils.WriteJSON(w, false, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, true, http.StatusCreated)
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing courses")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// getCourse answers 404 with an empty body for unknown and malformed ids.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	courseID := chi.URLParam(r, "courseId")

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		status := statusFromError(err)
		if status != http.StatusNotFound {
			log.Err(err).Str("course_id", courseID).Msg("error getting course")
		}
		w.WriteHeader(status)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	courseID := chi.URLParam(r, "id")

	_, err := h.services.CourseService.DeleteCourse(r.Context(), courseID)
	switch {
	case err == nil:
		log.Info().Str("course_id", courseID).Msg("course deleted")
		utils.WriteJSON(w, models.DeleteResponse{
			Deleted: true,
			Message: fmt.Sprintf(MessageCourseDeleted, courseID),
		}, http.StatusOK)
	case errors.Is(err, store.ErrCourseNotFound):
		utils.WriteJSON(w, models.DeleteResponse{Deleted: false, Message: MessageCourseNotFound}, http.StatusNotFound)
	default:
		log.Err(err).Str("course_id", courseID).Msg("error deleting course")
		utils.WriteJSON(w, models.DeleteResponse{
			Deleted: false,
			Message: fmt.Sprintf(MessageCourseDeleteFailed, err),
		}, http.StatusInternalServerError)
	}
}
