// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-hub/internal/service"
	"github.com/MKhiriev/course-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAdminRightsRequired:     http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCourseNotFound:     http.StatusNotFound,
	store.ErrEnrollmentNotFound: http.StatusNotFound,
	store.ErrUIDAlreadyExists:   http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingDocument:     http.StatusInternalServerError,
}

// statusFromError maps err to the status code of the first sentinel it wraps.
// Unknown errors are internal.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
