// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUIDRequired      = errors.New("uid is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrEnrollIDRequired = errors.New("enrollId is required")
	ErrCourseRequired   = errors.New("course object is required")
	ErrInvalidField     = errors.New("invalid field value")
)
