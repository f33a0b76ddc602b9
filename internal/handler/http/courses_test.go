// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddCourse(t *testing.T) {
	course := map[string]any{"title": "Go", "price": 10.5}

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.expectToken("u1")
		m.course.EXPECT().AddCourse(gomock.Any(), models.Course(course)).Return(models.Course{"_id": "c1"}, nil)

		rr := doRequest(t, router, http.MethodPost, "/addCourse", course, testToken)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "true", rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.expectToken("u1")
		m.course.EXPECT().AddCourse(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

		rr := doRequest(t, router, http.MethodPost, "/addCourse", course, testToken)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "false", rr.Body.String())
	})
}

func TestListCourses(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.course.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{}, nil)

		rr := doRequest(t, router, http.MethodGet, "/courses", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("documents", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.course.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{
			{"_id": "c1", "title": "Go"},
			{"_id": "c2", "title": "SQL"},
		}, nil)

		rr := doRequest(t, router, http.MethodGet, "/courses", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"_id":"c1","title":"Go"},{"_id":"c2","title":"SQL"}]`, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.course.EXPECT().ListCourses(gomock.Any()).Return(nil, errors.New("down"))

		rr := doRequest(t, router, http.MethodGet, "/courses", nil, "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetCourse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.course.EXPECT().GetCourse(gomock.Any(), "c1").Return(models.Course{"_id": "c1", "title": "Go"}, nil)

		rr := doRequest(t, router, http.MethodGet, "/course/c1", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"_id":"c1","title":"Go"}`, rr.Body.String())
	})

	t.Run("not found has empty body", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.course.EXPECT().GetCourse(gomock.Any(), "nope").
			Return(nil, fmt.Errorf("get course: %w", store.ErrCourseNotFound))

		rr := doRequest(t, router, http.MethodGet, "/course/nope", nil, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestDeleteCourse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted",
			wantStatus: http.StatusOK,
			wantBody:   `{"deleted":true,"message":"Successfully deleted course: c1."}`,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("delete: %w", store.ErrCourseNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"deleted":false,"message":"No course matches the provided id."}`,
		},
		{
			name:       "store failure",
			err:        errors.New("timeout"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"deleted":false,"message":"Failed to find and delete course: timeout"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, false)
			m.course.EXPECT().DeleteCourse(gomock.Any(), "c1").Return(models.Course{"_id": "c1"}, tt.err)

			rr := doRequest(t, router, http.MethodDelete, "/courses/c1", nil, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
