// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
)

// enrollmentRepository is the PostgreSQL-backed [EnrollmentRepository].
// Enroll updates "users" and inserts into "enrolls" in one transaction.
type enrollmentRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

func NewEnrollmentRepository(db *DB, ids IDGenerator, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// Enroll appends courseID to the user's enrolledCourses and stores the
// enrollment. Both writes commit together or not at all. An unknown uid
// yields [ErrUserNotFound].
func (r *enrollmentRepository) Enroll(ctx context.Context, uid, courseID string, enrollment models.Enrollment) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendEnrolledCourseQuery(uid, courseID)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error appending enrolled course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error reading affected rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	created, err := insertDocument(ctx, tx, r.ids, enrollsTable, enrollment)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error inserting enrollment")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

func (r *enrollmentRepository) GetEnrollments(ctx context.Context, ownerUID string) ([]models.Enrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEnrollmentsQuery(ownerUID)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.GetEnrollments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.queryWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.GetEnrollments").Msg("error selecting enrollments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	enrollments, err := scanDocuments(rows)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.GetEnrollments").Msg("error scanning enrollments")
		return nil, err
	}

	return enrollments, nil
}

func (r *enrollmentRepository) UpdateEnrollmentStatus(ctx context.Context, enrollID, status string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEnrollmentStatusQuery(enrollID, status)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.UpdateEnrollmentStatus").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.UpdateEnrollmentStatus").Msg("error updating enrollment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}
