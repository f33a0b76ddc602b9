// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/validators"
	"github.com/MKhiriev/course-hub/models"
)

var errCourseIDMissing = errors.New("course._id is required")

type enrollmentService struct {
	enrollmentRepository store.EnrollmentRepository
	userRepository       store.UserRepository
	validator            validators.Validator
	logger               *logger.Logger
}

func NewEnrollmentService(
	enrollmentRepository store.EnrollmentRepository,
	userRepository store.UserRepository,
	validator validators.Validator,
	logger *logger.Logger,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepository: enrollmentRepository,
		userRepository:       userRepository,
		validator:            validator,
		logger:               logger,
	}
}

// Enroll stores the enrollment on behalf of uid. The caller's document is
// not modified: course and currentUser are copied before being stamped.
func (s *enrollmentService) Enroll(ctx context.Context, uid string, enrollment models.Enrollment) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, enrollment); err != nil {
		log.Error().Err(err).Msg("invalid enrollment provided")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	source, _ := models.EnrollmentCourse(enrollment)
	course := source.Clone()
	courseID := course.ID()
	if courseID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, errCourseIDMissing)
	}
	course[models.CourseStatusKey] = models.EnrollmentStatusOngoing

	currentUser := models.Document{}
	if provided, ok := enrollment.Object(models.EnrollmentCurrentUserKey); ok {
		currentUser = provided.Clone()
	}
	currentUser[models.CurrentUserUIDKey] = uid

	stamped := enrollment.Clone()
	stamped[models.EnrollmentCourseKey] = course
	stamped[models.EnrollmentCurrentUserKey] = currentUser

	created, err := s.enrollmentRepository.Enroll(ctx, uid, courseID, stamped)
	if err != nil {
		log.Err(err).Str("uid", uid).Str("course_id", courseID).Msg("error enrolling user")
		return nil, fmt.Errorf("error enrolling user: %w", err)
	}

	log.Info().Str("uid", uid).Str("course_id", courseID).Msg("user enrolled")
	return created, nil
}

// EnrolledCourses reads the requester first: admins see every enrollment,
// everyone else only their own. An unknown uid yields store.ErrUserNotFound.
func (s *enrollmentService) EnrolledCourses(ctx context.Context, uid string) ([]models.Enrollment, error) {
	user, err := s.userRepository.FindUserByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("error getting requester: %w", err)
	}

	owner := user.UID
	if user.IsAdmin {
		owner = ""
	}

	enrollments, err := s.enrollmentRepository.GetEnrollments(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}

	return enrollments, nil
}

func (s *enrollmentService) ChangeStatus(ctx context.Context, request models.ChangeEnrollStatusRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid status change request")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.enrollmentRepository.UpdateEnrollmentStatus(ctx, request.EnrollID, request.Status); err != nil {
		log.Err(err).Str("enroll_id", request.EnrollID).Msg("error changing enrollment status")
		return fmt.Errorf("error changing enrollment status: %w", err)
	}

	return nil
}
