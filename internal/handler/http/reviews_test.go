// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/course-hub/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddReview(t *testing.T) {
	review := map[string]any{"name": "Ann", "rating": 5.0, "text": "great"}

	t.Run("created without a token", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.review.EXPECT().AddReview(gomock.Any(), models.Review(review)).Return(models.Review{"_id": "r1"}, nil)

		rr := doRequest(t, router, http.MethodPost, "/addReview", review, "")

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "true", rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router, m := newTestRouter(t, false)
		m.review.EXPECT().AddReview(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		rr := doRequest(t, router, http.MethodPost, "/addReview", review, "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "false", rr.Body.String())
	})
}

func TestListReviews(t *testing.T) {
	router, m := newTestRouter(t, false)
	m.review.EXPECT().ListReviews(gomock.Any()).Return([]models.Review{
		{"_id": "r1", "text": "great"},
		{"_id": "r2", "text": "ok"},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/reviews", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"_id":"r1","text":"great"},{"_id":"r2","text":"ok"}]`, rr.Body.String())
}
