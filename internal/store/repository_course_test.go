// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourseRepo(t *testing.T) (*courseRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &courseRepository{db: db, ids: fixedIDs("course-1"), logger: logger.Nop()}, mock
}

func TestCreateCourse_ReplacesClientID(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("INSERT INTO courses \\(id,document\\)").
		WithArgs("course-1", `{"title":"Go"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateCourse(context.Background(), models.Course{"_id": "client", "title": "Go"})
	require.NoError(t, err)

	assert.Equal(t, models.Course{"_id": "course-1", "title": "Go"}, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCourse_Error(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectExec("INSERT INTO courses").WillReturnError(errors.New("disk full"))

	_, err := repo.CreateCourse(context.Background(), models.Course{"title": "Go"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllCourses(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	rows := sqlmock.NewRows([]string{"id", "document"}).
		AddRow("c1", []byte(`{"title":"Go"}`)).
		AddRow("c2", []byte(`{"title":"SQL","price":10}`))

	mock.ExpectQuery("SELECT id, document FROM courses ORDER BY seq").WillReturnRows(rows)

	courses, err := repo.GetAllCourses(context.Background())
	require.NoError(t, err)

	require.Len(t, courses, 2)
	assert.Equal(t, "c1", courses[0].ID())
	assert.Equal(t, "SQL", courses[1]["title"])
	assert.Equal(t, float64(10), courses[1]["price"])
}

func TestGetAllCourses_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT id, document FROM courses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "document"}))

	courses, err := repo.GetAllCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestGetAllCourses_RetriesTransientErrors(t *testing.T) {
	prev := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = prev })

	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT id, document FROM courses").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT id, document FROM courses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "document"}).AddRow("c1", []byte(`{}`)))

	courses, err := repo.GetAllCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCourses_NonRetryableErrorFailsFast(t *testing.T) {
	repo, mock := newTestCourseRepo(t)

	mock.ExpectQuery("SELECT id, document FROM courses").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetAllCourses(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("SELECT id, document FROM courses WHERE id = \\$1").
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "document"}).AddRow("c1", []byte(`{"title":"Go"}`)))

		course, err := repo.GetCourse(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, models.Course{"_id": "c1", "title": "Go"}, course)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("SELECT id, document FROM courses").
			WillReturnRows(sqlmock.NewRows([]string{"id", "document"}))

		_, err := repo.GetCourse(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("corrupt document", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("SELECT id, document FROM courses").
			WillReturnRows(sqlmock.NewRows([]string{"id", "document"}).AddRow("c1", []byte(`{`)))

		_, err := repo.GetCourse(context.Background(), "c1")
		assert.ErrorIs(t, err, ErrEncodingDocument)
	})
}

func TestDeleteCourse(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("DELETE FROM courses WHERE id = \\$1 RETURNING id, document").
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "document"}).AddRow("c1", []byte(`{"title":"Go"}`)))

		deleted, err := repo.DeleteCourse(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", deleted.ID())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("DELETE FROM courses").
			WillReturnRows(sqlmock.NewRows([]string{"id", "document"}))

		_, err := repo.DeleteCourse(context.Background(), "c1")
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("failure", func(t *testing.T) {
		repo, mock := newTestCourseRepo(t)

		mock.ExpectQuery("DELETE FROM courses").WillReturnError(errors.New("locked"))

		_, err := repo.DeleteCourse(context.Background(), "c1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
