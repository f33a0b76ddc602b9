// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/models"
)

// courseService passes course documents through to the repository
// untouched; courses have no server-side schema.
type courseService struct {
	courseRepository store.CourseRepository
	logger           *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (s *courseService) AddCourse(ctx context.Context, course models.Course) (models.Course, error) {
	if course == nil {
		course = models.Course{}
	}

	created, err := s.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error adding course: %w", err)
	}

	return created, nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	course, err := s.courseRepository.GetCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course %q: %w", id, err)
	}

	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id string) (models.Course, error) {
	deleted, err := s.courseRepository.DeleteCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting course %q: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("course_id", id).Msg("course deleted")
	return deleted, nil
}
