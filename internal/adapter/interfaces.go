// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a REST client for the course-hub API.
//
// [CourseAPI] hides the HTTP details from callers: it keeps the access token
// obtained on login, sends it in the x-access-token header and maps non-2xx
// answers to the sentinel errors of this package, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/course-hub/models"
)

// CourseAPI mirrors the routes of the course-hub server.
type CourseAPI interface {
	// SetToken stores the token attached to all authenticated requests.
	SetToken(token string)
	Token() string

	// Login registers the user on first sight and stores the returned token.
	Login(ctx context.Context, user models.User) (string, error)
	CurrentUser(ctx context.Context) (models.User, error)
	MakeAdmin(ctx context.Context, request models.MakeAdminRequest) error

	AddCourse(ctx context.Context, course models.Course) error
	Courses(ctx context.Context) ([]models.Course, error)
	Course(ctx context.Context, id string) (models.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	Enroll(ctx context.Context, enrollment models.Enrollment) error
	EnrolledCourses(ctx context.Context) ([]models.Enrollment, error)
	ChangeEnrollStatus(ctx context.Context, request models.ChangeEnrollStatusRequest) error

	AddReview(ctx context.Context, review models.Review) error
	Reviews(ctx context.Context) ([]models.Review, error)

	Version(ctx context.Context) (string, error)
}
