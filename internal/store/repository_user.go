// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and admin promotion against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new user with an empty enrolledCourses list and
// isAdmin=false, and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUIDAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	enrolled, err := json.Marshal(nonNilStrings(user.EnrolledCourses))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildCreateUserQuery(r.ids.Generate(), user.UID, user.Email, user.DisplayName, user.PhotoURL, enrolled)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUIDAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByUID retrieves the user whose uid matches.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUID(ctx context.Context, uid string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUIDQuery(uid)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUID").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// PromoteToAdmin marks the first user with the given email as admin.
// Zero affected rows → [ErrUserNotFound].
func (r *userRepository) PromoteToAdmin(ctx context.Context, email, addedBy string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPromoteToAdminQuery(email, addedBy)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PromoteToAdmin").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PromoteToAdmin").Msg("error promoting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PromoteToAdmin").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user     models.User
		enrolled []byte
		addedBy  sql.NullString
	)

	if err := row.Scan(&user.ID, &user.UID, &user.Email, &user.DisplayName, &user.PhotoURL, &enrolled, &user.IsAdmin, &addedBy); err != nil {
		return models.User{}, err
	}

	user.EnrolledCourses = []string{}
	if len(enrolled) > 0 {
		if err := json.Unmarshal(enrolled, &user.EnrolledCourses); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	user.AddedBy = addedBy.String

	return user, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
