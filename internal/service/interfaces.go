// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/course-hub/models"
)

type AuthService interface {
	// RegisterOrLogin returns the user with the given uid, creating it on
	// first sight with an empty enrolledCourses list and isAdmin=false.
	RegisterOrLogin(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, uid string) (models.User, error)
	MakeAdmin(ctx context.Context, request models.MakeAdminRequest) error

	// RequireAdmin returns ErrAdminRightsRequired unless uid belongs to an admin.
	RequireAdmin(ctx context.Context, uid string) error
}

type CourseService interface {
	AddCourse(ctx context.Context, course models.Course) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	DeleteCourse(ctx context.Context, id string) (models.Course, error)
}

type EnrollmentService interface {
	// Enroll marks the course as Ongoing, stamps currentUser.uid with uid and
	// stores the enrollment.
	Enroll(ctx context.Context, uid string, enrollment models.Enrollment) (models.Enrollment, error)

	// EnrolledCourses returns the caller's enrollments, or all of them for admins.
	EnrolledCourses(ctx context.Context, uid string) ([]models.Enrollment, error)

	ChangeStatus(ctx context.Context, request models.ChangeEnrollStatusRequest) error
}

type ReviewService interface {
	AddReview(ctx context.Context, review models.Review) (models.Review, error)

	// ListReviews returns the first [ReviewsLimit] reviews.
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
