// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/course-hub/models"
)

// UserRepository persists user accounts. A uid identifies at most one user.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the store-assigned ID.
	// Returns [ErrUIDAlreadyExists] when the uid is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUID returns the user with the given uid or [ErrUserNotFound].
	FindUserByUID(ctx context.Context, uid string) (models.User, error)

	// PromoteToAdmin sets isAdmin and addedBy on the first user whose email
	// matches. Returns [ErrUserNotFound] when no user matches.
	PromoteToAdmin(ctx context.Context, email, addedBy string) error
}

// CourseRepository persists free-form course documents.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns [ErrCourseNotFound] for unknown or malformed ids.
	GetCourse(ctx context.Context, id string) (models.Course, error)

	// DeleteCourse removes the course and returns the deleted document.
	// Returns [ErrCourseNotFound] for unknown or malformed ids.
	DeleteCourse(ctx context.Context, id string) (models.Course, error)
}

// EnrollmentRepository persists enrollments and keeps the owner's
// enrolledCourses list in step with them.
type EnrollmentRepository interface {
	// Enroll appends courseID to the enrolledCourses of the user identified
	// by uid and inserts the enrollment document.
	Enroll(ctx context.Context, uid, courseID string, enrollment models.Enrollment) (models.Enrollment, error)

	// GetEnrollments returns the enrollments whose currentUser.uid equals
	// ownerUID, or every enrollment when ownerUID is empty.
	GetEnrollments(ctx context.Context, ownerUID string) ([]models.Enrollment, error)

	// UpdateEnrollmentStatus sets course.status on the enrollment.
	// Returns [ErrEnrollmentNotFound] when nothing matched.
	UpdateEnrollmentStatus(ctx context.Context, enrollID, status string) error
}

// ReviewRepository persists free-form review documents.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)

	// GetReviews returns at most limit reviews in insertion order.
	GetReviews(ctx context.Context, limit int64) ([]models.Review, error)
}
