// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
)

// courseRepository is the PostgreSQL-backed [CourseRepository]. Courses are
// kept as JSONB documents in the "courses" table.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

func NewCourseRepository(db *DB, ids IDGenerator, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	created, err := insertDocument(ctx, r.db, r.ids, coursesTable, course)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		return nil, err
	}

	return created, nil
}

func (r *courseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsQuery(coursesTable)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.queryWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error selecting courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	courses, err := scanDocuments(rows)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetAllCourses").Msg("error scanning courses")
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) GetCourse(ctx context.Context, id string) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentByIDQuery(coursesTable, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.GetCourse").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.GetCourse").Msg("error selecting course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id string) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(coursesTable, id)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error deleting course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}
