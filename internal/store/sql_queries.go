// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable   = "users"
	coursesTable = "courses"
	enrollsTable = "enrolls"
	reviewsTable = "reviews"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"uid",
	"email",
	"display_name",
	"photo_url",
	"enrolled_courses",
	"is_admin",
	"added_by",
}

var documentColumns = []string{"id", "document"}

func buildCreateUserQuery(id string, uid, email, displayName, photoURL string, enrolledCourses []byte) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("id", "uid", "email", "display_name", "photo_url", "enrolled_courses", "is_admin").
		Values(id, uid, email, displayName, photoURL, string(enrolledCourses), false).
		Suffix("RETURNING id, uid, email, display_name, photo_url, enrolled_courses, is_admin, added_by").
		ToSql()
}

func buildFindUserByUIDQuery(uid string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"uid": uid}).
		Limit(1).
		ToSql()
}

// buildPromoteToAdminQuery touches a single row even when several users
// share the email.
func buildPromoteToAdminQuery(email, addedBy string) (string, []any, error) {
	return psql.
		Update(usersTable).
		Set("is_admin", true).
		Set("added_by", addedBy).
		Where("id = (SELECT id FROM users WHERE email = ? ORDER BY seq LIMIT 1)", email).
		ToSql()
}

func buildAppendEnrolledCourseQuery(uid, courseID string) (string, []any, error) {
	return psql.
		Update(usersTable).
		Set("enrolled_courses", sq.Expr("enrolled_courses || jsonb_build_array(?::text)", courseID)).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildInsertDocumentQuery(table, id string, document []byte) (string, []any, error) {
	return psql.
		Insert(table).
		Columns(documentColumns...).
		Values(id, string(document)).
		ToSql()
}

func buildSelectDocumentsQuery(table string) (string, []any, error) {
	return psql.
		Select(documentColumns...).
		From(table).
		OrderBy("seq").
		ToSql()
}

func buildSelectDocumentByIDQuery(table, id string) (string, []any, error) {
	return psql.
		Select(documentColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteDocumentQuery(table, id string) (string, []any, error) {
	return psql.
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, document").
		ToSql()
}

// buildSelectEnrollmentsQuery filters by currentUser.uid unless ownerUID is empty.
func buildSelectEnrollmentsQuery(ownerUID string) (string, []any, error) {
	query := psql.
		Select(documentColumns...).
		From(enrollsTable)

	if ownerUID != "" {
		query = query.Where("document -> 'currentUser' ->> 'uid' = ?", ownerUID)
	}

	return query.OrderBy("seq").ToSql()
}

func buildUpdateEnrollmentStatusQuery(enrollID, status string) (string, []any, error) {
	return psql.
		Update(enrollsTable).
		Set("document", sq.Expr("jsonb_set(document, '{course,status}', to_jsonb(?::text), true)", status)).
		Where(sq.Eq{"id": enrollID}).
		ToSql()
}

func buildSelectReviewsQuery(limit int64) (string, []any, error) {
	query := psql.
		Select(documentColumns...).
		From(reviewsTable).
		OrderBy("seq")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}
