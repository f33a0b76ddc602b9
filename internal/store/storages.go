// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/utils"
)

// Storages groups the repositories of one backend.
type Storages struct {
	UserRepository       UserRepository
	CourseRepository     CourseRepository
	EnrollmentRepository EnrollmentRepository
	ReviewRepository     ReviewRepository

	closeFn func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.Driver, prepares its
// schema (goose migrations or Mongo indexes) and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return newPostgresStorages(ctx, cfg.DB, log)
	case config.DriverMongo:
		return newMongoStorages(ctx, cfg.Mongo, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}

func newPostgresStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Msg("applying migrations failed")
		_ = db.Close()
		return nil, err
	}

	return NewPostgresStorages(db, utils.NewUUIDGenerator(), log), nil
}

// NewPostgresStorages builds the PostgreSQL repositories over an open DB.
func NewPostgresStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, ids, log),
		CourseRepository:     NewCourseRepository(db, ids, log),
		EnrollmentRepository: NewEnrollmentRepository(db, ids, log),
		ReviewRepository:     NewReviewRepository(db, ids, log),
		closeFn: func(context.Context) error {
			return db.Close()
		},
	}
}

func newMongoStorages(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Storages, error) {
	mdb, err := NewConnectMongo(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = mdb.EnsureIndexes(ctx); err != nil {
		_ = mdb.Close(ctx)
		return nil, err
	}

	return NewMongoStorages(mdb, log), nil
}

// NewMongoStorages builds the MongoDB repositories over a connected client.
func NewMongoStorages(mdb *MongoDB, log *logger.Logger) *Storages {
	users := mdb.Collection(usersTable)

	return &Storages{
		UserRepository:       NewMongoUserRepository(users, log),
		CourseRepository:     NewMongoCourseRepository(mdb.Collection(coursesTable), log),
		EnrollmentRepository: NewMongoEnrollmentRepository(users, mdb.Collection(enrollsTable), log),
		ReviewRepository:     NewMongoReviewRepository(mdb.Collection(reviewsTable), log),
		closeFn:              mdb.Close,
	}
}

// Close releases the backend connection. It is safe on a nil receiver.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
