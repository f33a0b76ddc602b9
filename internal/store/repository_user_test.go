// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := &userRepository{
		db:     db,
		ids:    fixedIDs("user-1"),
		logger: logger.Nop(),
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "uid", "email", "display_name", "photo_url", "enrolled_courses", "is_admin", "added_by"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{UID: "u1", Email: "a@b.c", DisplayName: "Alice"}

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("user-1", "u1", "a@b.c", "Alice", "", []byte(`[]`), false, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user-1", "u1", "a@b.c", "Alice", "", "[]", false).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, "user-1", created.ID)
	assert.Equal(t, "u1", created.UID)
	assert.Equal(t, []string{}, created.EnrolledCourses)
	assert.False(t, created.IsAdmin)
	assert.Empty(t, created.AddedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UIDAlreadyExists(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{UID: "u1"})
	assert.ErrorIs(t, err, ErrUIDAlreadyExists)
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CreateUser(context.Background(), models.User{UID: "u1"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByUID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("user-1", "u1", "a@b.c", "Alice", "http://p", []byte(`["c1","c2"]`), true, "root@b.c")

	mock.ExpectQuery("SELECT (.+) FROM users WHERE uid = \\$1").
		WithArgs("u1").
		WillReturnRows(rows)

	found, err := repo.FindUserByUID(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.User{
		ID:              "user-1",
		UID:             "u1",
		Email:           "a@b.c",
		DisplayName:     "Alice",
		PhotoURL:        "http://p",
		EnrolledCourses: []string{"c1", "c2"},
		IsAdmin:         true,
		AddedBy:         "root@b.c",
	}, found)
}

func TestFindUserByUID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByUID(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestFindUserByUID_BadEnrolledCourses(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("user-1", "u1", "", "", "", []byte(`{"not":"a list"}`), false, nil)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	_, err := repo.FindUserByUID(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestPromoteToAdmin(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "matched", result: sqlmock.NewResult(0, 1)},
		{name: "no user with email", result: sqlmock.NewResult(0, 0), wantErr: ErrUserNotFound},
		{name: "db failure", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec("UPDATE users SET is_admin = \\$1, added_by = \\$2 WHERE id = \\(SELECT id FROM users WHERE email = \\$3").
				WithArgs(true, "root@b.c", "a@b.c")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.PromoteToAdmin(context.Background(), "a@b.c", "root@b.c")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
