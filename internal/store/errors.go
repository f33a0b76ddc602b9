// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUIDAlreadyExists is returned when a user with the same uid is
	// already stored.
	ErrUIDAlreadyExists = errors.New("uid already exists")

	// ErrUserNotFound is returned when no user matches a uid or an email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCourseNotFound is returned when no course matches the given id.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrEnrollmentNotFound is returned when no enrollment matches the given id.
	ErrEnrollmentNotFound = errors.New("enrollment was not found")

	// ErrUnknownStorageDriver is returned by [NewStorages] for a driver it
	// cannot construct.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or a command
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a document cannot be converted to
	// or from its stored representation.
	ErrEncodingDocument = errors.New("failed to encode document")
)
